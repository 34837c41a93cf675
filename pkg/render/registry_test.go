package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-choices/pkg/enum"
	"github.com/goliatone/go-choices/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, *enum.Choices, render.Options) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(stubRenderer{name: "html"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(stubRenderer{name: "html"}); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected nil renderer to fail")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("expected unnamed renderer to fail")
	}

	renderer, err := registry.Get("html")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}

	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("expected missing renderer error")
	}
}

func TestRegistry_List(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "tui"})
	registry.MustRegister(stubRenderer{name: "html"})

	want := []string{"html", "tui"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("tui") {
		t.Fatal("expected Has to report registered renderer")
	}
}

func TestRegistry_Default(t *testing.T) {
	registry := render.NewRegistry()

	if _, err := registry.Default(); err == nil {
		t.Fatal("expected error from empty registry")
	}

	registry.MustRegister(stubRenderer{name: "tui"})
	registry.MustRegister(stubRenderer{name: "html"})

	renderer, err := registry.Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if renderer.Name() != "tui" {
		t.Fatalf("expected first registration to be the default, got %q", renderer.Name())
	}

	if err := registry.SetDefault("missing"); err == nil {
		t.Fatal("expected SetDefault to reject unknown renderer")
	}
	if err := registry.SetDefault("html"); err != nil {
		t.Fatalf("set default: %v", err)
	}
	renderer, err = registry.Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("expected reassigned default, got %q", renderer.Name())
	}
}
