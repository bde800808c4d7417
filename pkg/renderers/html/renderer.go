package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-solarform/pkg/document"
	"github.com/goliatone/go-solarform/pkg/render"
	rendertemplate "github.com/goliatone/go-solarform/pkg/render/template"
	gotemplate "github.com/goliatone/go-solarform/pkg/render/template/gotemplate"
)

// Name is the registry name of the HTML renderer.
const Name = "html"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheet       string
	pageSize         string
	custom           bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must contain templates/record.tmpl. Output from custom templates is passed
// through the print policy before it is returned.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files == nil {
			return
		}
		cfg.templateFS = files
		cfg.custom = true
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
		cfg.custom = true
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
// Its output is passed through the print policy.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
			cfg.custom = true
		}
	}
}

// WithStylesheet replaces the inlined print stylesheet.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = css
	}
}

// WithPageSize sets the CSS @page size used by print backends that honour it
// (e.g. "A4", "Letter", "A4 landscape").
func WithPageSize(size string) Option {
	return func(cfg *config) {
		cfg.pageSize = strings.TrimSpace(size)
	}
}

// Renderer produces a standalone HTML page suitable for printing.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	policy    *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), stylesheet: defaultStylesheet()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	stylesheet := cfg.stylesheet
	if cfg.pageSize != "" {
		stylesheet = fmt.Sprintf("@page { size: %s; margin: 12mm; }\n", cfg.pageSize) + stylesheet
	}
	globals := map[string]any{"stylesheet": stylesheet}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithGlobalData(globals),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	} else if err := renderer.GlobalContext(globals); err != nil {
		return nil, fmt.Errorf("html renderer: set stylesheet: %w", err)
	}

	r := &Renderer{templates: renderer}
	if cfg.custom {
		r.policy = printPolicy()
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, doc document.Document, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	themeCfg := opts.Theme
	if themeCfg == nil {
		themeCfg = DefaultConfig("")
	}

	result, err := r.templates.RenderTemplate("templates/record.tmpl", map[string]any{
		"document": buildView(render.LocalizeDocument(doc, opts)),
		"theme": map[string]any{
			"name":     themeCfg.Theme,
			"variant":  themeCfg.Variant,
			"css_vars": cssVarsStyle(themeCfg.CSSVars),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	if r.policy != nil {
		result = sanitizePage(r.policy, result)
	}
	return []byte(result), nil
}

type sectionView struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Kind    string           `json:"kind"`
	Fields  []document.Field `json:"fields"`
	Columns []string         `json:"columns"`
	Rows    []document.Row   `json:"rows"`
}

type documentView struct {
	Title    string        `json:"title"`
	Sections []sectionView `json:"sections"`
}

// buildView flattens the document into the shape the template reads. Values
// stay as typed; the template engine escapes them on output.
func buildView(doc document.Document) documentView {
	view := documentView{Title: doc.Title, Sections: make([]sectionView, 0, len(doc.Sections))}
	for _, section := range doc.Sections {
		view.Sections = append(view.Sections, sectionView{
			ID:      section.ID,
			Title:   section.Title,
			Kind:    string(section.Kind),
			Fields:  section.Fields,
			Columns: section.Columns,
			Rows:    section.Rows,
		})
	}
	return view
}
