// Package printing turns rendered markup into a paginated file and reports where
// the file was written.
package printing

import (
	"context"
	"errors"
	"net/url"
	"path/filepath"
)

// ErrPrinterUnavailable is returned when the print backend cannot be started.
var ErrPrinterUnavailable = errors.New("printing: printer unavailable")

// Location references a generated file.
type Location struct {
	Path      string `json:"path"`
	MediaType string `json:"mediaType"`
}

// URI returns the location as a file:// URI.
func (l Location) URI() string {
	abs, err := filepath.Abs(l.Path)
	if err != nil {
		abs = l.Path
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
}

// Printer accepts a markup document and returns the location of the generated
// paginated file.
type Printer interface {
	Print(ctx context.Context, markup []byte) (Location, error)
}

// PrinterFunc adapts a function to the Printer interface.
type PrinterFunc func(ctx context.Context, markup []byte) (Location, error)

// Print calls f.
func (f PrinterFunc) Print(ctx context.Context, markup []byte) (Location, error) {
	return f(ctx, markup)
}
