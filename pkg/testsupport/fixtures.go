package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-solarform/pkg/record"
)

// ScenarioRecord returns the reference record used across package tests: a
// complete record with one blank panel row between two serials.
func ScenarioRecord() record.InstallationRecord {
	return record.InstallationRecord{
		ClientName:    "Jane Doe",
		ClientNumber:  "555-1234",
		ClientAddress: "1 Main St",
		InstalledKW:   "5.5",
		PanelSerials: []record.PanelSerial{
			{ID: 1, Value: "P1"},
			{ID: 2, Value: ""},
			{ID: 3, Value: "P2"},
		},
		InverterCompany: record.SMA,
		InverterKW:      "5.0",
		InverterSerial:  "SN123",
		InstallDate:     civil.Date{Year: 2024, Month: time.May, Day: 1},
	}
}

// ScenarioStore seeds a Store with ScenarioRecord.
func ScenarioStore() *record.Store {
	return record.NewStoreFrom(ScenarioRecord())
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
