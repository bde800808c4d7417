package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-solarform/pkg/orchestrator"
	"github.com/goliatone/go-solarform/pkg/renderers/terminal"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		path  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the installation document in the terminal",
		Long: `Renders a record file as the document that Export prints. With --watch the
preview is redrawn whenever the file changes, until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			orch, err := a.orchestrator()
			if err != nil {
				return err
			}

			draw := func() error {
				return a.preview(ctx, orch, path, cmd.OutOrStdout())
			}
			if err := draw(); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return a.watch(ctx, path, draw)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&path, "record", "r", "", "record file (YAML or JSON)")
	flags.BoolVarP(&watch, "watch", "w", false, "redraw when the record file changes")
	_ = cmd.MarkFlagRequired("record")
	return cmd
}

func (a *app) preview(ctx context.Context, orch *orchestrator.Orchestrator, path string, w io.Writer) error {
	rec, err := a.loadRecord(ctx, path)
	if err != nil {
		return err
	}
	out, err := orch.Generate(ctx, orchestrator.Request{Record: rec, Renderer: terminal.Name})
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// watch observes the file's directory so editors that replace the file on
// save are still picked up.
func (a *app) watch(ctx context.Context, path string, draw func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			if err := draw(); err != nil {
				a.logger.Warn("preview failed", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("watch error", zap.Error(err))
		}
	}
}
