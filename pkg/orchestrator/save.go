package orchestrator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-solarform/pkg/payload"
	"github.com/goliatone/go-solarform/pkg/record"
	"github.com/goliatone/go-solarform/pkg/validation"
)

// SavedMessage is reported after a successful save.
const SavedMessage = "Saved locally (console). Hook up backend to persist."

// PayloadSink receives validated save payloads.
type PayloadSink interface {
	Accept(ctx context.Context, p payload.Payload) error
}

// PayloadSinkFunc adapts plain functions to the PayloadSink interface.
type PayloadSinkFunc func(ctx context.Context, p payload.Payload) error

// Accept executes the wrapped function when non-nil.
func (fn PayloadSinkFunc) Accept(ctx context.Context, p payload.Payload) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, p)
}

// LogSink writes payloads to the logger at info level.
func LogSink(logger *zap.Logger) PayloadSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return PayloadSinkFunc(func(_ context.Context, p payload.Payload) error {
		logger.Info("installation saved",
			zap.String("client_name", p.ClientName),
			zap.String("client_number", p.ClientNumber),
			zap.String("client_address", p.ClientAddress),
			zap.String("installed_kw", p.InstalledKW),
			zap.Strings("panel_serials", p.PanelSerials),
			zap.String("inverter_company", p.Inverter.Company),
			zap.String("inverter_kw", p.Inverter.KW),
			zap.String("inverter_serial", p.Inverter.Serial),
			zap.String("install_date", p.InstallDate),
		)
		return nil
	})
}

// SaveResult reports a successful save.
type SaveResult struct {
	Payload payload.Payload
	Message string
}

// Save validates rec and hands the resulting payload to the sink. A missing
// required field returns the *validation.FieldError unchanged so callers can
// show its message; nothing reaches the sink in that case.
func (o *Orchestrator) Save(ctx context.Context, rec record.InstallationRecord) (SaveResult, error) {
	if err := ctx.Err(); err != nil {
		return SaveResult{}, err
	}
	if err := validation.Validate(rec); err != nil {
		o.logger.Debug("save rejected", zap.Error(err))
		return SaveResult{}, err
	}

	p := payload.FromRecord(rec)
	if err := payload.Check(ctx, p); err != nil {
		return SaveResult{}, fmt.Errorf("orchestrator: save: %w", err)
	}
	if err := o.sink.Accept(ctx, p); err != nil {
		return SaveResult{}, fmt.Errorf("orchestrator: save: %w", err)
	}
	return SaveResult{Payload: p, Message: SavedMessage}, nil
}
