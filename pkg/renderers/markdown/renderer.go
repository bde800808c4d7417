// Package markdown renders installation documents as GitHub-flavoured
// Markdown by converting the HTML renderer's output.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-solarform/pkg/document"
	"github.com/goliatone/go-solarform/pkg/render"
	htmlrenderer "github.com/goliatone/go-solarform/pkg/renderers/html"
)

// Name is the registry name of the Markdown renderer.
const Name = "markdown"

var excessiveLinesRe = regexp.MustCompile(`\n{3,}`)

// Renderer converts the HTML rendering of a document to Markdown.
type Renderer struct {
	markup    render.Renderer
	converter *md.Converter
}

var _ render.Renderer = (*Renderer)(nil)

// New builds a Markdown renderer on top of markup. A nil markup renderer gets
// the default HTML renderer.
func New(markup render.Renderer) (*Renderer, error) {
	if markup == nil {
		base, err := htmlrenderer.New()
		if err != nil {
			return nil, fmt.Errorf("markdown renderer: %w", err)
		}
		markup = base
	}

	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	return &Renderer{markup: markup, converter: converter}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, doc document.Document, opts render.RenderOptions) ([]byte, error) {
	markup, err := r.markup.Render(ctx, doc, opts)
	if err != nil {
		return nil, err
	}

	dom, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: parse html: %w", err)
	}

	out := r.converter.Convert(dom.Find("body"))
	out = excessiveLinesRe.ReplaceAllString(strings.TrimSpace(out), "\n\n")
	return []byte(out + "\n"), nil
}
