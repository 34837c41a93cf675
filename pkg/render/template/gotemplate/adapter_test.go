package gotemplate_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-choices/pkg/render/template/gotemplate"
)

func TestEngine_RenderTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"greeting.tmpl": &fstest.MapFile{Data: []byte("Hello {{ name }}!")},
	}

	engine, err := gotemplate.New(gotemplate.WithFS(fsys))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got, err := engine.RenderTemplate("greeting", map[string]any{"name": "World"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello World!" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got, err := engine.Render("{% for item in items %}{{ item }},{% endfor %}", map[string]any{
		"items": []any{"a", "b"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "a,b," {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RequiresTemplateSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatal("expected error without base dir or fs.FS")
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	fsys := fstest.MapFS{
		"global.tmpl": &fstest.MapFile{Data: []byte("{{ project }}")},
	}

	engine, err := gotemplate.New(
		gotemplate.WithFS(fsys),
		gotemplate.WithGlobalData(map[string]any{"project": "go-choices"}),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got, err := engine.RenderTemplate("global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "go-choices") {
		t.Fatalf("global data missing from output %q", got)
	}
}
