package orchestrator

import (
	"context"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-choices/pkg/enum"
	pkgopenapi "github.com/goliatone/go-choices/pkg/openapi"
	"github.com/goliatone/go-choices/pkg/render"
)

type captureRenderer struct {
	choices *enum.Choices
	options render.Options
	output  []byte
}

func (c *captureRenderer) Name() string        { return "capture" }
func (c *captureRenderer) ContentType() string { return "text/plain" }
func (c *captureRenderer) Render(_ context.Context, choices *enum.Choices, options render.Options) ([]byte, error) {
	c.choices = choices
	c.options = options
	if c.output == nil {
		c.output = []byte("captured")
	}
	return c.output, nil
}

const catalogYAML = `
enums:
  status:
    members:
      - name: DRAFT
      - name: PUBLISHED
`

func TestGenerate_FromCatalog(t *testing.T) {
	fsys := fstest.MapFS{
		"status.yaml": &fstest.MapFile{Data: []byte(catalogYAML)},
	}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithCatalogFS(fsys),
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
	)

	out, err := orch.Generate(context.Background(), Request{
		Enum:     "status",
		Selected: "DRAFT",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(out) != "captured" {
		t.Fatalf("unexpected output %q", out)
	}
	if renderer.choices == nil || renderer.choices.Name() != "status" {
		t.Fatalf("renderer did not receive the catalog enumeration: %+v", renderer.choices)
	}
	if renderer.options.Selected != "DRAFT" {
		t.Fatalf("selected value not forwarded: %+v", renderer.options)
	}
}

func TestGenerate_FromOpenAPIDocument(t *testing.T) {
	payload := `
openapi: 3.0.0
info:
  title: Articles
  version: "1.0"
paths: {}
components:
  schemas:
    ArticleStatus:
      type: string
      enum: [draft, published]
`
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFS("spec.yaml"), []byte(payload))

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(WithRegistry(registry))

	out, err := orch.Generate(context.Background(), Request{
		Document: &doc,
		Enum:     "ArticleStatus",
		Renderer: renderer.Name(),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected output")
	}
	if renderer.choices.Len() != 2 {
		t.Fatalf("expected 2 members, got %d", renderer.choices.Len())
	}
}

func TestGenerate_PreBuiltEnumWithDefaultRenderer(t *testing.T) {
	choices, err := enum.New("suit", enum.Def("HEART", "heart"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	orch := New()
	out, err := orch.Generate(context.Background(), Request{Choices: choices})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), `<select name="suit"`) {
		t.Fatalf("expected html select output, got:\n%s", out)
	}
}

func TestGenerate_UsesRegistryDefault(t *testing.T) {
	choices, err := enum.New("suit", enum.Def("HEART", "heart"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(WithRegistry(registry))
	out, err := orch.Generate(context.Background(), Request{Choices: choices})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(out) != "captured" {
		t.Fatalf("expected the registry default renderer, got %q", out)
	}
}

func TestGenerate_ConcurrentCatalogAccess(t *testing.T) {
	fsys := fstest.MapFS{
		"status.yaml": &fstest.MapFile{Data: []byte(catalogYAML)},
	}
	orch := New(WithCatalogFS(fsys))

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := orch.Generate(context.Background(), Request{Enum: "status"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
	}
}

func TestGenerate_MissingEnumFails(t *testing.T) {
	fsys := fstest.MapFS{
		"status.yaml": &fstest.MapFile{Data: []byte(catalogYAML)},
	}
	orch := New(WithCatalogFS(fsys))

	if _, err := orch.Generate(context.Background(), Request{Enum: "missing"}); err == nil {
		t.Fatal("expected missing enumeration error")
	}
	if _, err := orch.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error when no enum is identified")
	}
}

func TestGenerate_UnknownRendererFails(t *testing.T) {
	choices, err := enum.New("suit", enum.Def("HEART", "heart"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	orch := New()
	if _, err := orch.Generate(context.Background(), Request{Choices: choices, Renderer: "nope"}); err == nil {
		t.Fatal("expected unknown renderer error")
	}
}
