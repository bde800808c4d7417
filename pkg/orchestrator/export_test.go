package orchestrator

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-solarform/pkg/printing"
	"github.com/goliatone/go-solarform/pkg/record"
	"github.com/goliatone/go-solarform/pkg/share"
	"github.com/goliatone/go-solarform/pkg/testsupport"
)

func TestExport_SharesWhenAvailable(t *testing.T) {
	printer := &capturePrinter{loc: printing.Location{Path: "/tmp/out.pdf", MediaType: printing.MediaTypePDF}}
	sharer := &stubSharer{available: true}
	orch := New(WithPrinter(printer), WithSharer(sharer))

	result, err := orch.Export(testsupport.Context(), testsupport.ScenarioRecord())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !result.Shared || result.Message != "" {
		t.Fatalf("expected shared result, got %+v", result)
	}
	if len(sharer.shared) != 1 || sharer.shared[0].Path != "/tmp/out.pdf" {
		t.Fatalf("unexpected shared locations %+v", sharer.shared)
	}
	if sharer.opts[0] != (share.Options{MediaType: "application/pdf", DialogTitle: "Share installation PDF"}) {
		t.Fatalf("unexpected share options %+v", sharer.opts[0])
	}

	markup := string(printer.markup)
	for _, want := range []string{"Solar Installation Record", "Jane Doe", "P1", "P2", "2024-05-01"} {
		if !strings.Contains(markup, want) {
			t.Fatalf("printed markup missing %q", want)
		}
	}
}

func TestExport_FallbackMessageWithoutSharer(t *testing.T) {
	printer := &capturePrinter{loc: printing.Location{Path: "/tmp/out.pdf"}}
	orch := New(WithPrinter(printer))

	result, err := orch.Export(testsupport.Context(), testsupport.ScenarioRecord())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if result.Shared {
		t.Fatalf("expected unshared result")
	}
	if result.Location.MediaType != printing.MediaTypePDF {
		t.Fatalf("expected media type defaulted, got %q", result.Location.MediaType)
	}
	if result.Message != "PDF created: file:///tmp/out.pdf" {
		t.Fatalf("unexpected fallback message %q", result.Message)
	}
}

func TestExport_DoesNotValidate(t *testing.T) {
	printer := &capturePrinter{loc: printing.Location{Path: "/tmp/empty.pdf"}}
	orch := New(WithPrinter(printer))

	if _, err := orch.Export(testsupport.Context(), record.InstallationRecord{}); err != nil {
		t.Fatalf("export of empty record: %v", err)
	}
	if !strings.Contains(string(printer.markup), "No panel serials entered") {
		t.Fatalf("expected placeholder row in printed markup")
	}
}

func TestExport_Failures(t *testing.T) {
	printErr := errors.New("chrome crashed")
	shareErr := errors.New("user dismissed")

	cases := []struct {
		name    string
		printer printing.Printer
		sharer  share.Sharer
		stage   string
		cause   error
	}{
		{name: "NoPrinter", stage: StagePrint, cause: printing.ErrPrinterUnavailable},
		{name: "PrintFails", printer: &capturePrinter{err: printErr}, stage: StagePrint, cause: printErr},
		{
			name:    "ShareFails",
			printer: &capturePrinter{loc: printing.Location{Path: "/tmp/x.pdf"}},
			sharer:  &stubSharer{available: true, err: shareErr},
			stage:   StageShare,
			cause:   shareErr,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			opts := []Option{WithSharer(tc.sharer)}
			if tc.printer != nil {
				opts = append(opts, WithPrinter(tc.printer))
			}
			_, err := New(opts...).Export(testsupport.Context(), testsupport.ScenarioRecord())

			var exportErr *ExportError
			if !errors.As(err, &exportErr) {
				t.Fatalf("expected *ExportError, got %v", err)
			}
			if exportErr.Stage != tc.stage {
				t.Fatalf("expected stage %q, got %q", tc.stage, exportErr.Stage)
			}
			if !errors.Is(err, tc.cause) {
				t.Fatalf("expected cause %v, got %v", tc.cause, err)
			}
		})
	}
}

func TestExport_RenderFailure(t *testing.T) {
	registry, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	registry.MustRegister(failingRenderer{})

	printer := &capturePrinter{}
	orch := New(WithRegistry(registry), WithPrintRenderer("failing"), WithPrinter(printer))

	_, err = orch.Export(testsupport.Context(), testsupport.ScenarioRecord())
	var exportErr *ExportError
	if !errors.As(err, &exportErr) || exportErr.Stage != StageRender {
		t.Fatalf("expected render stage error, got %v", err)
	}
	if printer.calls != 0 {
		t.Fatalf("printer must not run after a render failure")
	}
}
