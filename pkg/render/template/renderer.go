package template

import (
	"io"
)

// TemplateRenderer is the contract markup renderers rely on to execute named
// templates from a bundle.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
