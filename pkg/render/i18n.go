package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-solarform/pkg/document"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when no
// translator is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler picks the text used when a key cannot be
// translated. fallback is the built-in English text.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

func missingTranslationDefault(_, key, fallback string, _ error) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

// Message keys follow "solarform.<section>.<label>"; label keys are the
// lower-cased label with spaces replaced by underscores.
const keyPrefix = "solarform."

// LocalizeDocument returns a copy of doc with titles, labels, column headers
// and placeholder text translated. Values entered by the user are never
// translated.
func LocalizeDocument(doc document.Document, opts RenderOptions) document.Document {
	if opts.Translator == nil && opts.OnMissing == nil {
		return doc
	}
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	tr := func(key, fallback string) string {
		return translate(opts.Locale, keyPrefix+key, fallback, opts.Translator, onMissing)
	}

	out := document.Document{
		Title:    tr("title", doc.Title),
		Sections: make([]document.Section, len(doc.Sections)),
	}
	for i, section := range doc.Sections {
		localized := section
		localized.Title = tr(section.ID+".title", section.Title)

		if len(section.Fields) > 0 {
			localized.Fields = make([]document.Field, len(section.Fields))
			for j, field := range section.Fields {
				field.Label = tr(section.ID+"."+labelKey(field.Label), field.Label)
				localized.Fields[j] = field
			}
		}
		if len(section.Columns) > 0 {
			localized.Columns = make([]string, len(section.Columns))
			for j, column := range section.Columns {
				localized.Columns[j] = tr(section.ID+".column."+labelKey(column), column)
			}
		}
		if len(section.Rows) > 0 {
			localized.Rows = make([]document.Row, len(section.Rows))
			for j, row := range section.Rows {
				row.Cells = append([]string(nil), row.Cells...)
				if row.Placeholder && len(row.Cells) > 0 {
					row.Cells[0] = tr(section.ID+".empty", row.Cells[0])
				}
				localized.Rows[j] = row
			}
		}
		out.Sections[i] = localized
	}
	return out
}

func labelKey(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	if key == "#" {
		return "index"
	}
	return strings.ReplaceAll(key, " ", "_")
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	if t == nil {
		return onMissing(locale, key, fallback, ErrMissingTranslator)
	}
	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, fallback, err)
}
