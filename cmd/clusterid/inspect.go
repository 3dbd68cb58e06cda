package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	pkglog "github.com/tinychameleon/clusterid/pkg/log"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Decode the fields of a cluster identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.gen.Parse(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate ID",
		Short: "Check that an identifier decodes with the configured code tables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			valid, reason := a.gen.Validate(args[0])
			if !valid {
				logger := pkglog.Ctx(cmd.Context())
				logger.Warn().
					Str(pkglog.FieldID, args[0]).
					Str(pkglog.FieldReason, reason).
					Msg("invalid cluster id")
				return fmt.Errorf("invalid cluster id: %s", reason)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}
