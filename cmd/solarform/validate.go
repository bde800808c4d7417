package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-solarform/pkg/validation"
)

func newValidateCmd(a *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a record file for missing required fields",
		Long: `Reports the first missing required field, in form order: client name,
mobile number, address, installed kW, inverter company, inverter kW and
inverter serial. Exits non-zero when a field is missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.loadRecord(cmd.Context(), path)
			if err != nil {
				return err
			}
			if err := validation.Validate(rec); err != nil {
				if fieldErr, ok := validation.FieldFromError(err); ok {
					return fmt.Errorf("%s: %s", fieldErr.Field, fieldErr.Message)
				}
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return err
		},
	}

	cmd.Flags().StringVarP(&path, "record", "r", "", "record file (YAML or JSON, - for stdin)")
	_ = cmd.MarkFlagRequired("record")
	return cmd
}
