package html

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// DefaultThemeName names the built-in print theme.
const DefaultThemeName = "print"

// DefaultManifest describes the built-in print theme. The "compact" variant
// tightens the palette for monochrome printers.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"font-family": "Arial, Helvetica, sans-serif",
			"text":        "#222",
			"accent":      "#222",
			"border":      "#ddd",
			"muted":       "#777",
		},
		Variants: map[string]theme.Variant{
			"solar": {
				Tokens: map[string]string{
					"accent": "#f59e0b",
					"border": "#fcd34d",
				},
			},
			"compact": {
				Tokens: map[string]string{
					"border": "#000",
					"muted":  "#000",
				},
			},
		},
	}
}

// ConfigFromSelection flattens a theme selection into renderer config, merging
// variant tokens over the base manifest tokens.
func ConfigFromSelection(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	tokens := make(map[string]string)
	if manifest := selection.Manifest; manifest != nil {
		for key, value := range manifest.Tokens {
			tokens[key] = value
		}
		if variant, ok := manifest.Variants[selection.Variant]; ok {
			for key, value := range variant.Tokens {
				tokens[key] = value
			}
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+strings.TrimPrefix(key, "--")] = value
	}

	return &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  tokens,
		CSSVars: cssVars,
	}
}

// DefaultConfig resolves the built-in manifest for the given variant.
func DefaultConfig(variant string) *theme.RendererConfig {
	return ConfigFromSelection(&theme.Selection{
		Theme:    DefaultThemeName,
		Variant:  variant,
		Manifest: DefaultManifest(),
	})
}

// ErrUnknownTheme is returned by StaticSelector for unregistered themes or
// variants.
var ErrUnknownTheme = errors.New("html renderer: unknown theme")

// StaticSelector resolves themes from a fixed set of manifests keyed by name.
type StaticSelector map[string]*theme.Manifest

var _ theme.ThemeSelector = StaticSelector(nil)

// DefaultSelector holds the built-in print theme.
func DefaultSelector() StaticSelector {
	return StaticSelector{DefaultThemeName: DefaultManifest()}
}

// Select returns the named manifest. An empty name picks the print theme; an
// empty variant keeps the base tokens.
func (s StaticSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name == "" {
		name = DefaultThemeName
	}
	manifest, ok := s[name]
	if !ok || manifest == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q has no variant %q", ErrUnknownTheme, name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteByte(';')
	}
	return b.String()
}
