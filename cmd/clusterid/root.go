package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinychameleon/clusterid/internal/config"
	"github.com/tinychameleon/clusterid/internal/generator"
	pkgconfig "github.com/tinychameleon/clusterid/pkg/config"
	pkglog "github.com/tinychameleon/clusterid/pkg/log"
)

const serviceName = "clusterid"

// app carries state shared by every subcommand once setup has run.
type app struct {
	configDir string
	gen       generator.Generator
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "clusterid",
		Short:         "Generate and inspect cluster identifiers",
		Long:          "clusterid mints 128-bit, time-ordered identifiers carrying a data centre, environment and entity type, and decodes existing ones.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configDir, "config", pkgconfig.GetEnv("CLUSTERID_CONFIG_DIR", "./config"), "Directory containing config.yaml")

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newInspectCmd(a))
	root.AddCommand(newValidateCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		cfg.Generator.Format = f.Value.String()
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: serviceName,
	})
	logger := pkglog.L()

	gen, err := generator.NewClusterIDGenerator(cfg.Generator)
	if err != nil {
		return fmt.Errorf("failed to create cluster id generator: %w", err)
	}
	logger.Debug().
		Str(pkglog.FieldDataCentre, cfg.Generator.DataCentre).
		Str(pkglog.FieldEnvironment, cfg.Generator.Environment).
		Str(pkglog.FieldTypeID, cfg.Generator.Type).
		Str(pkglog.FieldFormat, cfg.Generator.Format).
		Msg("cluster id generator initialized")

	ctx := pkglog.WithLogger(cmd.Context(), logger)
	cmd.SetContext(pkglog.WithStr(ctx, pkglog.FieldCommand, cmd.Name()))

	a.gen = gen
	return nil
}
