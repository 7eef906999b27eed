package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newCaptureCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "capture <group> <file>",
		Short: "Snapshot a group's node map",
		Long: `Copy the part of a group's node map reachable from its root into a file.
A .yaml file gets a plain node map definition, anything else a CBOR
snapshot (conventionally .fsnap). Both load back as node maps.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := a.open(cmd)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, s.close()) }()

			g, err := s.auditor.Group(args[0])
			if err != nil {
				return err
			}
			snap, err := s.auditor.Capture(cmd.Context(), g, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "captured %d nodes of %s to %s\n",
				len(snap.Definition.Nodes), g.Name, args[1])
			return nil
		},
	}
}
