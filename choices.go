package choices

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-choices/pkg/enum"
	pkgopenapi "github.com/goliatone/go-choices/pkg/openapi"
	"github.com/goliatone/go-choices/pkg/orchestrator"
	"github.com/goliatone/go-choices/pkg/renderers/html"
)

// Choices is a named enumeration with ordered members and derived listings.
type Choices = enum.Choices

// Member is one enumeration constant: name, value, label, optional group.
type Member = enum.Member

// Pair couples a value with its display label.
type Pair = enum.Pair

// Choice is one entry of a grouped listing.
type Choice = enum.Choice

// Entry is a declarative member or directive consumed by New.
type Entry = enum.Entry

// EmptyName is the reserved member name reported for the blank choice.
const EmptyName = enum.EmptyName

// Construction API re-exported so callers only need the root package for the
// common path.
var (
	New         = enum.New
	MustNew     = enum.MustNew
	Def         = enum.Def
	Group       = enum.Group
	Grouped     = enum.Grouped
	Empty       = enum.Empty
	WithLabeler = enum.WithLabeler

	ErrDuplicateValue = enum.ErrDuplicateValue
	ErrDuplicateName  = enum.ErrDuplicateName
)

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module so callers can wire catalogs, registries, and themes in one place.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewLoader constructs an OpenAPI document loader.
func NewLoader(options ...pkgopenapi.LoaderOption) *pkgopenapi.Loader {
	return pkgopenapi.NewLoader(options...)
}

// NewExtractor constructs an OpenAPI enumeration extractor.
func NewExtractor(options pkgopenapi.ExtractorOptions) *pkgopenapi.Extractor {
	return pkgopenapi.NewExtractor(options)
}

// RenderHTML loads the OpenAPI source, extracts the named enumeration, and
// renders it using the named renderer. It is the simplest entry point for
// callers that just want HTML output.
func RenderHTML(ctx context.Context, source pkgopenapi.Source, enumName, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Enum:     enumName,
		Renderer: rendererName,
	})
}

// RenderHTMLFromDocument renders an enumeration from a pre-loaded document,
// bypassing the loader stage while still delegating to the orchestrator.
func RenderHTMLFromDocument(ctx context.Context, doc pkgopenapi.Document, enumName, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Enum:     enumName,
		Renderer: rendererName,
	})
}

// RenderChoicesHTML renders a pre-built enumeration with the default html
// renderer, skipping loading and extraction entirely.
func RenderChoicesHTML(ctx context.Context, list *enum.Choices, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Choices: list})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// EmbeddedTemplates exposes the built-in html renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
