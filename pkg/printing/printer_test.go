package printing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocation_URI(t *testing.T) {
	loc := Location{Path: filepath.Join(os.TempDir(), "solarform", "a b.pdf")}
	uri := loc.URI()
	if !strings.HasPrefix(uri, "file://") {
		t.Fatalf("expected file URI, got %q", uri)
	}
	if !strings.HasSuffix(uri, "/a%20b.pdf") {
		t.Fatalf("expected escaped file name, got %q", uri)
	}
}

func TestPrinterFunc(t *testing.T) {
	var got string
	p := PrinterFunc(func(_ context.Context, markup []byte) (Location, error) {
		got = string(markup)
		return Location{Path: "x.pdf", MediaType: MediaTypePDF}, nil
	})
	loc, err := p.Print(context.Background(), []byte("<html></html>"))
	if err != nil {
		t.Fatalf("printing: %v", err)
	}
	if got != "<html></html>" || loc.Path != "x.pdf" {
		t.Fatalf("unexpected result %q %+v", got, loc)
	}
}

func TestChromePrinter_CanceledContext(t *testing.T) {
	p := NewChromePrinter(ChromeConfig{OutputDir: t.TempDir()}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Print(ctx, []byte("<p>x</p>")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestChromePrinter_MissingBinaryIsUnavailable(t *testing.T) {
	p := NewChromePrinter(ChromeConfig{
		Bin:       filepath.Join(t.TempDir(), "no-such-chrome"),
		OutputDir: t.TempDir(),
		Headless:  true,
	}, nil)
	_, err := p.Print(context.Background(), []byte("<p>x</p>"))
	if !errors.Is(err, ErrPrinterUnavailable) {
		t.Fatalf("expected ErrPrinterUnavailable, got %v", err)
	}
}
