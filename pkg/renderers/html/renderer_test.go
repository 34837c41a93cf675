package html_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-choices/pkg/enum"
	"github.com/goliatone/go-choices/pkg/render"
	"github.com/goliatone/go-choices/pkg/renderers/html"
)

func mediaFixture(t *testing.T, extra ...enum.Entry) *enum.Choices {
	t.Helper()

	entries := append([]enum.Entry{
		enum.Group("Audio",
			enum.Def("VINYL", "vinyl"),
			enum.Def("CD", "cd", "Compact Disc"),
		),
		enum.Def("UNKNOWN", "unknown"),
	}, extra...)

	choices, err := enum.New("media_format", entries...)
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return choices
}

func TestRender_Select(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := renderer.Render(context.Background(), mediaFixture(t), render.Options{
		Selected: "cd",
		Required: true,
		CSSClass: "choices",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	markup := string(out)
	for _, want := range []string{
		`<select name="media_format" required class="choices">`,
		`<optgroup label="Audio">`,
		`<option value="vinyl">Vinyl</option>`,
		`<option value="cd" selected>Compact Disc</option>`,
		`<option value="unknown">Unknown</option>`,
		`</select>`,
	} {
		if !strings.Contains(markup, want) {
			t.Fatalf("missing %q in output:\n%s", want, markup)
		}
	}
}

func TestRender_EmptySentinelRendersBlankValue(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := renderer.Render(context.Background(), mediaFixture(t, enum.Empty("---------")), render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	markup := string(out)
	idx := strings.Index(markup, `<option value="">---------</option>`)
	if idx == -1 {
		t.Fatalf("missing empty sentinel option:\n%s", markup)
	}
	if first := strings.Index(markup, "<option"); first != idx {
		t.Fatalf("empty sentinel must be the first option:\n%s", markup)
	}
}

func TestRender_Radios(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := renderer.Render(context.Background(), mediaFixture(t), render.Options{
		Widget:   render.WidgetRadios,
		Selected: "vinyl",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	markup := string(out)
	for _, want := range []string{
		`<legend>Audio</legend>`,
		`<input type="radio" name="media_format" value="vinyl" checked>`,
		`<input type="radio" name="media_format" value="unknown">`,
	} {
		if !strings.Contains(markup, want) {
			t.Fatalf("missing %q in output:\n%s", want, markup)
		}
	}
}

func TestRender_SanitisesLabels(t *testing.T) {
	choices, err := enum.New("status",
		enum.Def("EVIL", "evil", `<script>alert(1)</script><em>Safe</em>`),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), choices, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	markup := string(out)
	if strings.Contains(markup, "<script>") {
		t.Fatalf("script tag survived sanitisation:\n%s", markup)
	}
	if !strings.Contains(markup, "<em>Safe</em>") {
		t.Fatalf("inline markup should survive sanitisation:\n%s", markup)
	}
}

func TestRender_ThemeStyle(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := renderer.Render(context.Background(), mediaFixture(t), render.Options{
		Theme: &render.ThemeConfig{
			CSSVars: map[string]string{"--brand": "#123456", "--accent": "#654321"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(string(out), `style="--accent: #654321; --brand: #123456"`) {
		t.Fatalf("missing deterministic theme style:\n%s", out)
	}
}

func TestRender_UnsupportedWidget(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := renderer.Render(context.Background(), mediaFixture(t), render.Options{Widget: "carousel"}); err == nil {
		t.Fatal("expected unsupported widget error")
	}
}

func TestRender_RequiresEnumeration(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := renderer.Render(context.Background(), nil, render.Options{}); err == nil {
		t.Fatal("expected error for nil enumeration")
	}
}
