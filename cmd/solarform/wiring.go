package main

import (
	"context"
	"fmt"

	"github.com/goliatone/go-solarform/internal/config"
	"github.com/goliatone/go-solarform/internal/recordfile"
	"github.com/goliatone/go-solarform/pkg/orchestrator"
	"github.com/goliatone/go-solarform/pkg/printing"
	"github.com/goliatone/go-solarform/pkg/record"
	"github.com/goliatone/go-solarform/pkg/render"
	htmlrenderer "github.com/goliatone/go-solarform/pkg/renderers/html"
	"github.com/goliatone/go-solarform/pkg/renderers/markdown"
	"github.com/goliatone/go-solarform/pkg/renderers/terminal"
	"github.com/goliatone/go-solarform/pkg/renderers/xlsx"
	"github.com/goliatone/go-solarform/pkg/share"
)

// formatPDF is the export format handled by the printer rather than the registry.
const formatPDF = "pdf"

func (a *app) registry() (*render.Registry, error) {
	registry := render.NewRegistry()

	html, err := htmlrenderer.New(htmlrenderer.WithPageSize(a.cfg.Print.PageSize))
	if err != nil {
		return nil, err
	}
	md, err := markdown.New(html)
	if err != nil {
		return nil, err
	}
	term, err := terminal.New()
	if err != nil {
		return nil, err
	}

	for _, r := range []render.Renderer{html, md, term, xlsx.New()} {
		if err := registry.Register(r); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func (a *app) sharer() share.Sharer {
	switch a.cfg.Share.Mode {
	case config.ShareSystem:
		return share.NewSystem(a.logger)
	case config.ShareOutbox:
		return share.Outbox{Dir: a.cfg.Share.OutboxDir}
	default:
		return share.Unavailable{}
	}
}

func (a *app) printer() printing.Printer {
	return printing.NewChromePrinter(printing.ChromeConfig{
		Bin:             a.cfg.Chrome.Bin,
		ControlURL:      a.cfg.Chrome.ControlURL,
		OutputDir:       a.cfg.Output.Dir,
		Headless:        a.cfg.Chrome.Headless,
		PrintBackground: a.cfg.Chrome.PrintBackground,
	}, a.logger)
}

func (a *app) orchestrator() (*orchestrator.Orchestrator, error) {
	registry, err := a.registry()
	if err != nil {
		return nil, fmt.Errorf("configure renderers: %w", err)
	}
	return orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithPrinter(a.printer()),
		orchestrator.WithSharer(a.sharer()),
		orchestrator.WithLogger(a.logger),
		orchestrator.WithThemeSelector(htmlrenderer.DefaultSelector()),
		orchestrator.WithTheme(a.cfg.Theme.Name, a.cfg.Theme.Variant),
		orchestrator.WithRenderOptions(render.RenderOptions{Locale: a.cfg.Locale}),
	), nil
}

func (a *app) loadRecord(ctx context.Context, path string) (record.InstallationRecord, error) {
	return recordfile.New().Load(ctx, path)
}
