package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-solarform/internal/config"
	"github.com/goliatone/go-solarform/internal/logging"
)

type app struct {
	configPath string
	envFiles   []string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "solarform",
		Short: "Capture, validate and export solar installation records",
		Long: `solarform records a solar panel installation (client, system size, panel
serials, inverter and date), checks the required fields and exports a
printable installation record as PDF.

Run "solarform fill" for the interactive form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	flags.StringSliceVar(&a.envFiles, "env-file", []string{".env"}, ".env files with SOLARFORM_* overrides")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newFillCmd(a),
		newExportCmd(a),
		newValidateCmd(a),
		newPreviewCmd(a),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath, config.WithEnvFiles(a.envFiles...))
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{
		Verbose: a.verbose,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}
