// Package solarform captures, validates and exports solar installation
// records. The root package re-exports the common entry points; the pkg/
// packages hold the building blocks.
package solarform

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-solarform/pkg/orchestrator"
	"github.com/goliatone/go-solarform/pkg/record"
	"github.com/goliatone/go-solarform/pkg/render"
)

// InstallationRecord aliases the record type for convenience.
type InstallationRecord = record.InstallationRecord

// RenderOptions describes per-request rendering overrides.
type RenderOptions = render.RenderOptions

// SaveResult and ExportResult report completed actions.
type (
	SaveResult   = orchestrator.SaveResult
	ExportResult = orchestrator.ExportResult
)

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewStore starts a new record dated today with the default blank panel rows.
func NewStore(options ...record.StoreOption) *record.Store {
	return record.NewStore(options...)
}

// GenerateHTML renders rec as the printable HTML page. It is the simplest
// entry point for callers that just want markup.
func GenerateHTML(ctx context.Context, rec InstallationRecord, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Record: rec})
}

// Save validates rec and hands the payload to the configured sink.
func Save(ctx context.Context, rec InstallationRecord, options ...orchestrator.Option) (SaveResult, error) {
	return orchestrator.New(options...).Save(ctx, rec)
}

// Export prints rec and shares or reports the generated file. A printer must
// be supplied with orchestrator.WithPrinter.
func Export(ctx context.Context, rec InstallationRecord, options ...orchestrator.Option) (ExportResult, error) {
	return orchestrator.New(options...).Export(ctx, rec)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}
