package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without changing the document itself.
type RenderOptions struct {
	// Theme carries resolved styling tokens. Renderers that do not style their
	// output ignore it.
	Theme *theme.RendererConfig
	// Locale selects the language handed to Translator.
	Locale string
	// Translator localizes titles and labels through LocalizeDocument. A nil
	// translator keeps the built-in English text.
	Translator Translator
	// OnMissing decides the text used when a translation is missing.
	OnMissing MissingTranslationHandler
}
