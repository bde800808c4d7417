package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-solarform/pkg/document"
	"github.com/goliatone/go-solarform/pkg/printing"
	"github.com/goliatone/go-solarform/pkg/record"
	"github.com/goliatone/go-solarform/pkg/render"
	htmlrenderer "github.com/goliatone/go-solarform/pkg/renderers/html"
	"github.com/goliatone/go-solarform/pkg/renderers/markdown"
	"github.com/goliatone/go-solarform/pkg/renderers/xlsx"
	"github.com/goliatone/go-solarform/pkg/share"
)

const defaultRendererName = htmlrenderer.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry. The registry must contain the
// markup renderer used by Export (see WithPrintRenderer).
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithPrintRenderer names the renderer whose output is handed to the printer.
func WithPrintRenderer(name string) Option {
	return func(o *Orchestrator) {
		if name != "" {
			o.printRenderer = name
		}
	}
}

// WithPrinter injects the printing collaborator.
func WithPrinter(printer printing.Printer) Option {
	return func(o *Orchestrator) {
		o.printer = printer
	}
}

// WithSharer injects the sharing collaborator. Without one, Export reports the
// generated file location instead of sharing it.
func WithSharer(sharer share.Sharer) Option {
	return func(o *Orchestrator) {
		o.sharer = sharer
	}
}

// WithPayloadSink replaces the destination of saved payloads.
func WithPayloadSink(sink PayloadSink) Option {
	return func(o *Orchestrator) {
		o.sink = sink
	}
}

// WithLogger sets the structured logger. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithTheme sets the default theme and variant used when a request does not
// name one.
func WithTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.themeName = name
		o.themeVariant = variant
	}
}

// WithRenderOptions sets render options applied to every request. Per-request
// options override the Locale, Translator and OnMissing fields when set.
func WithRenderOptions(opts render.RenderOptions) Option {
	return func(o *Orchestrator) {
		o.renderOptions = opts
	}
}

// Orchestrator coordinates Save and Export for an installation record. It
// applies sensible defaults (html/markdown/xlsx renderers, log sink, no
// sharing) while remaining open to dependency injection.
//
// An Orchestrator holds no per-record state and is safe for concurrent use
// when its collaborators are.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	printRenderer   string
	printer         printing.Printer
	sharer          share.Sharer
	sink            PayloadSink
	logger          *zap.Logger
	themeSelector   theme.ThemeSelector
	themeName       string
	themeVariant    string
	renderOptions   render.RenderOptions
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		printRenderer:   htmlrenderer.Name,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a single rendering of a record.
type Request struct {
	Record record.InstallationRecord

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant override the configured theme.
	ThemeName    string
	ThemeVariant string

	RenderOptions render.RenderOptions
}

// Generate builds the document for req.Record and renders it with the named
// renderer. No validation is applied.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}
	opts, err := o.optionsFor(req)
	if err != nil {
		return nil, err
	}

	doc := document.Build(req.Record)
	output, err := renderer.Render(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) optionsFor(req Request) (render.RenderOptions, error) {
	opts := o.renderOptions
	if req.RenderOptions.Locale != "" {
		opts.Locale = req.RenderOptions.Locale
	}
	if req.RenderOptions.Translator != nil {
		opts.Translator = req.RenderOptions.Translator
	}
	if req.RenderOptions.OnMissing != nil {
		opts.OnMissing = req.RenderOptions.OnMissing
	}

	if req.RenderOptions.Theme != nil {
		opts.Theme = req.RenderOptions.Theme
		return opts, nil
	}
	cfg, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return render.RenderOptions{}, err
	}
	if cfg != nil {
		opts.Theme = cfg
	}
	return opts, nil
}

func (o *Orchestrator) resolveTheme(name, variant string) (*theme.RendererConfig, error) {
	if name == "" {
		name = o.themeName
	}
	if variant == "" {
		variant = o.themeVariant
	}
	if o.themeSelector == nil {
		if name == "" || name == htmlrenderer.DefaultThemeName {
			return htmlrenderer.DefaultConfig(variant), nil
		}
		return nil, fmt.Errorf("orchestrator: theme %q requires a theme selector", name)
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	return htmlrenderer.ConfigFromSelection(selection), nil
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.sink == nil {
		o.sink = LogSink(o.logger)
	}
	if o.sharer == nil {
		o.sharer = share.Unavailable{}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.registry == nil {
		o.registry, o.initialiseErr = DefaultRegistry()
	}
}

// DefaultRegistry returns a registry holding the html, markdown and xlsx
// renderers.
func DefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	html, err := htmlrenderer.New()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: default renderer: %w", err)
	}
	md, err := markdown.New(html)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: default renderer: %w", err)
	}

	for _, r := range []render.Renderer{html, md, xlsx.New()} {
		if err := registry.Register(r); err != nil {
			return nil, fmt.Errorf("orchestrator: default renderer: %w", err)
		}
	}
	return registry, nil
}
