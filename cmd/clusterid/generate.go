package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinychameleon/clusterid/internal/generator"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		req   generator.Request
		count int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate cluster identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := a.gen.GenerateBatch(cmd.Context(), req, count)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, id := range ids {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&req.DataCentre, "data-centre", "", "Data centre name (default from config)")
	cmd.Flags().StringVar(&req.Environment, "environment", "", "Environment name (default from config)")
	cmd.Flags().StringVar(&req.Type, "type", "", "Entity type name (default from config)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of identifiers to generate")
	cmd.Flags().String("format", "", "Output format: base58|hex (default from config)")
	return cmd
}
