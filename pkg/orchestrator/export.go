package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-solarform/pkg/printing"
	"github.com/goliatone/go-solarform/pkg/record"
	"github.com/goliatone/go-solarform/pkg/share"
)

// ShareDialogTitle is the title offered to the sharing collaborator.
const ShareDialogTitle = "Share installation PDF"

// Export pipeline stages reported by ExportError.
const (
	StageRender = "render"
	StagePrint  = "print"
	StageShare  = "share"
)

// ExportError reports the stage at which Export failed.
type ExportError struct {
	Stage string
	Err   error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export failed at %s: %v", e.Stage, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// ExportResult reports a completed export. When Shared is false Message holds
// the fallback text naming the generated file.
type ExportResult struct {
	Location printing.Location
	Shared   bool
	Message  string
}

// CreatedMessage is the fallback message used when sharing is unavailable.
func CreatedMessage(loc printing.Location) string {
	return "PDF created: " + loc.URI()
}

// Export builds and prints the document for rec, then shares the generated
// file or reports its location. The record is not validated. Collaborator
// failures are returned as *ExportError.
func (o *Orchestrator) Export(ctx context.Context, rec record.InstallationRecord) (ExportResult, error) {
	if ctx == nil {
		return ExportResult{}, errors.New("orchestrator: context is required")
	}
	if o.printer == nil {
		return ExportResult{}, &ExportError{Stage: StagePrint, Err: printing.ErrPrinterUnavailable}
	}

	markup, err := o.Generate(ctx, Request{Record: rec, Renderer: o.printRenderer})
	if err != nil {
		return ExportResult{}, &ExportError{Stage: StageRender, Err: err}
	}

	loc, err := o.printer.Print(ctx, markup)
	if err != nil {
		o.logger.Warn("print failed", zap.Error(err))
		return ExportResult{}, &ExportError{Stage: StagePrint, Err: err}
	}
	if loc.MediaType == "" {
		loc.MediaType = printing.MediaTypePDF
	}

	if !o.sharer.Available(ctx) {
		return ExportResult{Location: loc, Message: CreatedMessage(loc)}, nil
	}

	opts := share.Options{MediaType: printing.MediaTypePDF, DialogTitle: ShareDialogTitle}
	if err := o.sharer.Share(ctx, loc, opts); err != nil {
		o.logger.Warn("share failed", zap.String("path", loc.Path), zap.Error(err))
		return ExportResult{Location: loc}, &ExportError{Stage: StageShare, Err: err}
	}
	return ExportResult{Location: loc, Shared: true}, nil
}
