package orchestrator

import (
	"context"
	"errors"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-solarform/pkg/document"
	"github.com/goliatone/go-solarform/pkg/payload"
	"github.com/goliatone/go-solarform/pkg/printing"
	"github.com/goliatone/go-solarform/pkg/render"
	"github.com/goliatone/go-solarform/pkg/share"
)

type capturePrinter struct {
	markup []byte
	loc    printing.Location
	err    error
	calls  int
}

func (p *capturePrinter) Print(_ context.Context, markup []byte) (printing.Location, error) {
	p.calls++
	p.markup = append([]byte(nil), markup...)
	if p.err != nil {
		return printing.Location{}, p.err
	}
	return p.loc, nil
}

type stubSharer struct {
	available bool
	err       error
	shared    []printing.Location
	opts      []share.Options
}

func (s *stubSharer) Available(context.Context) bool { return s.available }

func (s *stubSharer) Share(_ context.Context, loc printing.Location, opts share.Options) error {
	s.shared = append(s.shared, loc)
	s.opts = append(s.opts, opts)
	return s.err
}

type captureSink struct {
	payloads []payload.Payload
	err      error
}

func (s *captureSink) Accept(_ context.Context, p payload.Payload) error {
	if s.err != nil {
		return s.err
	}
	s.payloads = append(s.payloads, p)
	return nil
}

type captureRenderer struct {
	name    string
	doc     document.Document
	options render.RenderOptions
}

func (r *captureRenderer) Name() string {
	if r.name == "" {
		return "capture"
	}
	return r.name
}

func (r *captureRenderer) ContentType() string { return "text/plain" }

func (r *captureRenderer) Render(_ context.Context, doc document.Document, opts render.RenderOptions) ([]byte, error) {
	r.doc = doc
	r.options = opts
	return []byte("rendered:" + doc.Title), nil
}

type failingRenderer struct{}

func (failingRenderer) Name() string        { return "failing" }
func (failingRenderer) ContentType() string { return "text/plain" }
func (failingRenderer) Render(context.Context, document.Document, render.RenderOptions) ([]byte, error) {
	return nil, errors.New("boom")
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	if s.err != nil {
		return nil, s.err
	}
	return s.selection, nil
}
