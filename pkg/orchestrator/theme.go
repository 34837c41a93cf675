package orchestrator

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-choices/pkg/render"
)

// ThemeSelector re-exports the go-theme selector contract so callers can wire
// theming without importing go-theme directly.
type ThemeSelector = theme.ThemeSelector

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeDefaults sets the theme and variant used when a request does not
// name one.
func WithThemeDefaults(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

func (o *Orchestrator) resolveTheme(req Request) (*render.ThemeConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}

	name := req.ThemeName
	if name == "" {
		name = o.defaultTheme
	}
	variant := req.ThemeVariant
	if variant == "" {
		variant = o.defaultVariant
	}
	if name == "" {
		return nil, nil
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, err
	}
	return themeConfigFromSelection(selection), nil
}

// themeConfigFromSelection resolves a go-theme selection into the config
// renderers consume: merged tokens, derived CSS custom properties, and an
// asset URL resolver. Variant values override the base manifest.
func themeConfigFromSelection(selection *theme.Selection) *render.ThemeConfig {
	if selection == nil {
		return nil
	}

	cfg := &render.ThemeConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}

	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}

	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}

	assets := manifest.Assets
	files := make(map[string]string, len(assets.Files))
	for key, value := range assets.Files {
		files[key] = value
	}

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
		for key, value := range variant.Assets.Files {
			files[key] = value
		}
		if variant.Assets.Prefix != "" {
			assets.Prefix = variant.Assets.Prefix
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	prefix := assets.Prefix
	cfg.Tokens = tokens
	cfg.CSSVars = cssVars
	cfg.AssetURL = func(name string) string {
		file, ok := files[name]
		if !ok {
			return ""
		}
		if prefix == "" {
			return file
		}
		return prefix + "/" + file
	}
	return cfg
}
