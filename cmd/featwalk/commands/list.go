package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/featwalk/featwalk/pkg/catalog"
	"github.com/featwalk/featwalk/pkg/naming"
)

func newListCmd(a *app) *cobra.Command {
	var (
		output      string
		occurrences bool
	)

	cmd := &cobra.Command{
		Use:   "list [group...]",
		Short: "Walk groups and print their identifiers",
		Long: `Walk the node map of each group and print one identifier per feature
occurrence. With --output the identifiers are also written as a catalog
(.txt, .yaml or .cbor).`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := a.open(cmd)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, s.close()) }()

			listings, err := s.auditor.List(cmd.Context(), args...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			var all []naming.Identifier
			for _, l := range listings {
				if occurrences {
					for _, o := range l.Occurrences {
						fmt.Fprintf(w, "%s::%s\n", l.Group, o)
					}
				} else {
					for _, id := range l.Identifiers {
						fmt.Fprintln(w, id)
					}
				}
				all = append(all, l.Identifiers...)
			}

			if output == "" {
				return nil
			}
			c := catalog.New("", all)
			if len(listings) == 1 {
				c = listings[0].Catalog()
			}
			if err := catalog.Save(output, c); err != nil {
				return err
			}
			s.logger.Info("catalog written", "path", output, "identifiers", len(all))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the identifiers as a catalog file")
	cmd.Flags().BoolVar(&occurrences, "occurrences", false, "print occurrences with their selector assignments")
	return cmd
}
