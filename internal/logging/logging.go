// Package logging builds the zap logger shared by the CLI commands.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select the logger flavour.
type Options struct {
	// Verbose switches to a development console logger at debug level.
	Verbose bool
	// Level overrides the production level ("debug", "info", "warn", "error").
	Level string
	// Format is "json" (default) or "console".
	Format string
}

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	if opts.Verbose {
		cfg := zap.NewDevelopmentConfig()
		logger, err := cfg.Build()
		if err != nil {
			return nil, fmt.Errorf("logging: build development logger: %w", err)
		}
		return logger, nil
	}

	cfg := zap.NewProductionConfig()
	if opts.Level != "" {
		level, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	}
	switch strings.ToLower(opts.Format) {
	case "", "json":
	case "console":
		cfg.Encoding = "console"
	default:
		return nil, fmt.Errorf("logging: unknown format %q", opts.Format)
	}
	// The form prompts own stdout.
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger, nil
}
