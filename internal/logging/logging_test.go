package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	logger, err := New(Options{Level: "warn"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info must be disabled at warn level")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("warn must be enabled")
	}

	verbose, err := New(Options{Verbose: true})
	if err != nil {
		t.Fatalf("new verbose: %v", err)
	}
	if !verbose.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("verbose logger must enable debug")
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
