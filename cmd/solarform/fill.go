package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-solarform/pkg/form"
	"github.com/goliatone/go-solarform/pkg/orchestrator"
	"github.com/goliatone/go-solarform/pkg/record"
	"github.com/goliatone/go-solarform/pkg/renderers/terminal"
)

func newFillCmd(a *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill in an installation record interactively",
		Long: `Prompts for every field of the installation record, then offers an action
menu to edit fields, add panel serial rows, save or export the PDF.

A new record starts dated today with blank panel serial rows
(form.initial_panel_rows, default 6). Use --from to start from a record file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store := record.NewStore(record.WithPanelRows(a.cfg.Form.InitialPanelRows))
			if from != "" {
				rec, err := a.loadRecord(ctx, from)
				if err != nil {
					return err
				}
				store = record.NewStoreFrom(rec)
			}

			orch, err := a.orchestrator()
			if err != nil {
				return err
			}

			session := form.NewSession(store,
				form.WithPromptDriver(form.NewSurveyDriver(cmd.OutOrStdout())),
				form.WithActions(orch),
				form.WithPreview(func(ctx context.Context, rec record.InstallationRecord) (string, error) {
					out, err := orch.Generate(ctx, orchestrator.Request{Record: rec, Renderer: terminal.Name})
					return string(out), err
				}),
			)
			return session.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start from a record file (YAML or JSON, - for stdin)")
	return cmd
}
