// Package terminal renders installation documents for on-screen preview in a
// terminal, styling the Markdown rendering with glamour.
package terminal

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/goliatone/go-solarform/pkg/document"
	"github.com/goliatone/go-solarform/pkg/render"
	"github.com/goliatone/go-solarform/pkg/renderers/markdown"
)

// Name is the registry name of the terminal renderer.
const Name = "terminal"

type Option func(*Renderer)

// WithStyle selects a glamour standard style ("dark", "light", "notty", ...).
func WithStyle(style string) Option {
	return func(r *Renderer) {
		if style != "" {
			r.style = style
		}
	}
}

// WithWordWrap sets the wrap width.
func WithWordWrap(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// Renderer produces ANSI-styled text.
type Renderer struct {
	source render.Renderer
	style  string
	width  int
}

var _ render.Renderer = (*Renderer)(nil)

// New builds a terminal renderer on top of the Markdown renderer.
func New(options ...Option) (*Renderer, error) {
	source, err := markdown.New(nil)
	if err != nil {
		return nil, err
	}
	r := &Renderer{source: source, style: "notty", width: 80}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, doc document.Document, opts render.RenderOptions) ([]byte, error) {
	source, err := r.source.Render(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	term, err := glamour.NewTermRenderer(
		glamour.WithStylePath(r.style),
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		return nil, fmt.Errorf("terminal renderer: %w", err)
	}
	out, err := term.RenderBytes(source)
	if err != nil {
		return nil, fmt.Errorf("terminal renderer: %w", err)
	}
	return out, nil
}
