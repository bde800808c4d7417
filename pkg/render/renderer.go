package render

import (
	"context"

	"github.com/goliatone/go-solarform/pkg/document"
)

// Renderer converts a Document into a byte representation (HTML, Markdown,
// XLSX, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc document.Document, options RenderOptions) ([]byte, error)
}
