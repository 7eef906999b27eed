package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/featwalk/featwalk/pkg/drift"
)

func newDriftCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "drift [group...]",
		Short: "Compare walks with the published catalogs",
		Long: `Walk each group and compare its identifiers with the group's published
catalog. Exits with status 1 when a device feature is missing from a
catalog.`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := a.open(cmd)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, s.close()) }()

			r, err := s.auditor.Drift(cmd.Context(), args...)
			if err != nil {
				return err
			}

			if asJSON {
				err = drift.WriteJSON(cmd.OutOrStdout(), r)
			} else {
				err = drift.WriteText(cmd.OutOrStdout(), r)
			}
			if err != nil {
				return err
			}

			if r.HasDrift() {
				return ErrDrift
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}
