package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/goliatone/go-choices/pkg/catalog"
	"github.com/goliatone/go-choices/pkg/enum"
	pkgopenapi "github.com/goliatone/go-choices/pkg/openapi"
	"github.com/goliatone/go-choices/pkg/render"
	"github.com/goliatone/go-choices/pkg/renderers/html"
	"github.com/goliatone/go-choices/pkg/widgets"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
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

// WithCatalogFS supplies a filesystem holding enumeration catalog documents.
// The catalog is loaded lazily on first use and cached.
func WithCatalogFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.catalogFS = fsys
	}
}

// WithStore injects a pre-loaded enumeration store.
func WithStore(store *catalog.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithLoader injects a custom OpenAPI document loader.
func WithLoader(loader *pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithExtractor injects a custom OpenAPI enumeration extractor.
func WithExtractor(extractor *pkgopenapi.Extractor) Option {
	return func(o *Orchestrator) {
		o.extractor = extractor
	}
}

// WithWidgetRegistry overrides the registry used to pick a widget when a
// request omits one.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(o *Orchestrator) {
		o.widgets = registry
	}
}

// Request identifies the enumeration to render and where it comes from.
// Exactly one of Choices, Store (plus orchestrator-level catalog/store
// options), Document, or Source supplies the enumeration.
type Request struct {
	// Choices renders a pre-built enumeration directly.
	Choices *enum.Choices
	// Enum names the enumeration inside a catalog store or an OpenAPI
	// document's component schemas.
	Enum string
	// Document is a pre-loaded OpenAPI document to extract enums from.
	Document *pkgopenapi.Document
	// Source locates an OpenAPI document for loading.
	Source pkgopenapi.Source
	// Renderer picks the output renderer; the default applies when empty.
	Renderer string

	// Rendering details forwarded to the renderer.
	FieldName string
	Selected  any
	Required  bool
	Widget    string
	CSSClass  string

	// ThemeName/ThemeVariant override the orchestrator's theme defaults for
	// this request.
	ThemeName    string
	ThemeVariant string
}

// Orchestrator coordinates the pipeline from enumeration source to rendered
// output. It applies sensible defaults (html renderer, strict extractor)
// while remaining open to dependency injection.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	catalogFS       fs.FS
	store           *catalog.Store
	storeOnce       sync.Once
	storeErr        error
	loader          *pkgopenapi.Loader
	extractor       *pkgopenapi.Extractor
	widgets         *widgets.Registry
	themeSelector   ThemeSelector
	defaultTheme    string
	defaultVariant  string
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		o.registry = render.NewRegistry()
	}
	if len(o.registry.List()) == 0 {
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: initialise html renderer: %w", err)
			return
		}
		if err := o.registry.Register(renderer); err != nil {
			o.initialiseErr = err
			return
		}
	}
	if o.loader == nil {
		o.loader = pkgopenapi.NewLoader()
	}
	if o.extractor == nil {
		o.extractor = pkgopenapi.NewExtractor(pkgopenapi.ExtractorOptions{})
	}
	if o.widgets == nil {
		o.widgets = widgets.NewRegistry()
	}
}

// Generate resolves the requested enumeration and renders it with the
// selected renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if o.initialiseErr != nil {
		return nil, o.initialiseErr
	}

	choices, err := o.resolveEnum(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.lookupRenderer(req.Renderer)
	if err != nil {
		return nil, err
	}

	themeConfig, err := o.resolveTheme(req)
	if err != nil {
		return nil, err
	}

	widget, _ := o.widgets.Resolve(choices, req.Widget)

	return renderer.Render(ctx, choices, render.Options{
		FieldName: req.FieldName,
		Selected:  req.Selected,
		Required:  req.Required,
		Widget:    widget,
		CSSClass:  req.CSSClass,
		Theme:     themeConfig,
	})
}

// lookupRenderer resolves the renderer a request names, falling back to the
// orchestrator-level override and finally the registry default.
func (o *Orchestrator) lookupRenderer(name string) (render.Renderer, error) {
	if name == "" {
		name = o.defaultRenderer
	}
	if name == "" {
		return o.registry.Default()
	}
	return o.registry.Get(name)
}

// ResolveEnum resolves the enumeration a request identifies without
// rendering it. Interactive flows use this to feed prompts directly.
func (o *Orchestrator) ResolveEnum(ctx context.Context, req Request) (*enum.Choices, error) {
	if o.initialiseErr != nil {
		return nil, o.initialiseErr
	}
	return o.resolveEnum(ctx, req)
}

func (o *Orchestrator) resolveEnum(ctx context.Context, req Request) (*enum.Choices, error) {
	if req.Choices != nil {
		return req.Choices, nil
	}
	if req.Enum == "" {
		return nil, errors.New("orchestrator: enum name is required")
	}

	if store, err := o.resolveStore(); err != nil {
		return nil, err
	} else if store != nil {
		choices, ok := store.Enum(req.Enum)
		if !ok {
			return nil, fmt.Errorf("orchestrator: enumeration %q not found in catalog", req.Enum)
		}
		return choices, nil
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	enums, err := o.extractor.Extract(ctx, doc)
	if err != nil {
		return nil, err
	}
	choices, ok := enums[req.Enum]
	if !ok {
		return nil, fmt.Errorf("orchestrator: enumeration %q not found in document %s", req.Enum, doc.Location())
	}
	return choices, nil
}

// resolveStore returns the catalog store, loading it from the configured
// filesystem at most once. Orchestrators are shared across goroutines, so
// the lazy load is serialised.
func (o *Orchestrator) resolveStore() (*catalog.Store, error) {
	o.storeOnce.Do(func() {
		if o.store != nil || o.catalogFS == nil {
			return
		}
		o.store, o.storeErr = catalog.LoadFS(o.catalogFS)
	})
	return o.store, o.storeErr
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("orchestrator: catalog, document, or source is required")
	}
	return o.loader.Load(ctx, req.Source)
}
