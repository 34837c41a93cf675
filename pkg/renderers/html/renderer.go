package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/goliatone/go-choices/pkg/enum"
	"github.com/goliatone/go-choices/pkg/render"
	rendertemplate "github.com/goliatone/go-choices/pkg/render/template"
	gotemplate "github.com/goliatone/go-choices/pkg/render/template/gotemplate"
)

// Option configures the HTML renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces HTML select or radio-group markup for an enumeration,
// nesting grouped members under optgroup/legend headings.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the control markup. The widget option picks between select
// (default) and radios.
func (r *Renderer) Render(ctx context.Context, choices *enum.Choices, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	if choices == nil {
		return nil, fmt.Errorf("html renderer: enumeration is required")
	}

	templateName := "templates/select.tmpl"
	switch options.Widget {
	case "", render.WidgetSelect:
	case render.WidgetRadios:
		templateName = "templates/radios.tmpl"
	default:
		return nil, fmt.Errorf("html renderer: unsupported widget %q", options.Widget)
	}

	result, err := r.templates.RenderTemplate(templateName, templateData(choices, options))
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func templateData(choices *enum.Choices, options render.Options) map[string]any {
	field := options.FieldName
	if field == "" {
		field = choices.Name()
	}

	entries := make([]map[string]any, 0, choices.Len()+1)
	for _, choice := range choices.Choices() {
		if choice.IsGroup() {
			nested := make([]map[string]any, 0, len(choice.Options))
			for _, pair := range choice.Options {
				nested = append(nested, pairData(pair, options.Selected))
			}
			entries = append(entries, map[string]any{
				"group":   sanitizeLabel(choice.Group),
				"options": nested,
			})
			continue
		}
		entries = append(entries, pairData(enum.Pair{Value: choice.Value, Label: choice.Label}, options.Selected))
	}

	return map[string]any{
		"field":     field,
		"required":  options.Required,
		"css_class": options.CSSClass,
		"style":     themeStyle(options.Theme),
		"entries":   entries,
	}
}

func pairData(pair enum.Pair, selected any) map[string]any {
	return map[string]any{
		"value":    valueString(pair.Value),
		"label":    sanitizeLabel(pair.Label),
		"selected": selected != nil && reflect.DeepEqual(pair.Value, selected),
	}
}

// valueString renders a member value into an attribute string. The empty
// sentinel (nil) becomes an empty value attribute.
func valueString(value any) string {
	if value == nil {
		return ""
	}
	if values, ok := value.([]any); ok {
		parts := make([]string, len(values))
		for idx, item := range values {
			parts[idx] = fmt.Sprintf("%v", item)
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprintf("%v", value)
}

// themeStyle flattens resolved theme CSS variables into an inline style
// attribute value, sorted for deterministic output.
func themeStyle(theme *render.ThemeConfig) string {
	if theme == nil || len(theme.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(theme.CSSVars))
	for key := range theme.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+theme.CSSVars[key])
	}
	return strings.Join(parts, "; ")
}
