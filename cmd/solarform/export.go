package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-solarform/pkg/orchestrator"
)

var formatExtensions = map[string]string{
	"html":     ".html",
	"markdown": ".md",
	"xlsx":     ".xlsx",
}

func newExportCmd(a *app) *cobra.Command {
	var (
		path    string
		formats []string
		outDir  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a record file as PDF and other formats",
		Long: `Builds the installation document from a record file and writes it in each
requested format. "pdf" is printed through headless Chrome and then shared
according to share.mode; html, markdown and xlsx are written to --out.

The record is not validated; run "solarform validate" first if needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rec, err := a.loadRecord(ctx, path)
			if err != nil {
				return err
			}
			orch, err := a.orchestrator()
			if err != nil {
				return err
			}

			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			if path == "-" || base == "" {
				base = "installation"
			}
			if outDir == "" {
				outDir = a.cfg.Output.Dir
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			results := make([]string, len(formats))
			g, gctx := errgroup.WithContext(ctx)
			for i, format := range formats {
				i, format := i, strings.ToLower(strings.TrimSpace(format))
				g.Go(func() error {
					if format == formatPDF {
						result, err := orch.Export(gctx, rec)
						if err != nil {
							return err
						}
						results[i] = result.Message
						if result.Shared {
							results[i] = "PDF shared: " + result.Location.Path
						}
						return nil
					}

					ext, ok := formatExtensions[format]
					if !ok {
						return fmt.Errorf("unknown format %q", format)
					}
					out, err := orch.Generate(gctx, orchestrator.Request{Record: rec, Renderer: format})
					if err != nil {
						return err
					}
					target := filepath.Join(outDir, base+ext)
					if err := os.WriteFile(target, out, 0o644); err != nil {
						return fmt.Errorf("write %s: %w", target, err)
					}
					a.logger.Debug("export written", zap.String("format", format), zap.String("path", target))
					results[i] = fmt.Sprintf("%s written to %s", format, target)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for _, line := range results {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&path, "record", "r", "", "record file (YAML or JSON, - for stdin)")
	flags.StringSliceVarP(&formats, "format", "f", []string{formatPDF}, "formats: pdf, html, markdown, xlsx")
	flags.StringVarP(&outDir, "out", "o", "", "output directory for non-PDF formats (default output.dir)")
	_ = cmd.MarkFlagRequired("record")
	return cmd
}
