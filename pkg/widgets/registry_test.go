package widgets

import (
	"testing"

	"github.com/goliatone/go-choices/pkg/enum"
)

func TestResolve_DefaultsToSelect(t *testing.T) {
	list, err := enum.New("answer",
		enum.Def("YES", true),
		enum.Def("NO", false),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	widget, ok := NewRegistry().Resolve(list, "")
	if !ok || widget != WidgetSelect {
		t.Fatalf("expected select, got %q (ok=%v)", widget, ok)
	}
}

func TestResolve_RadiosMatcher(t *testing.T) {
	small, err := enum.New("answer",
		enum.Def("YES", true),
		enum.Def("NO", false),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	grouped, err := enum.New("media",
		enum.Group("Audio", enum.Def("VINYL"), enum.Def("CD")),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	reg := NewRegistry()
	reg.Register(WidgetRadios, 80, RadiosMatcher(5))

	if widget, _ := reg.Resolve(small, ""); widget != WidgetRadios {
		t.Fatalf("expected radios for small flat enum, got %q", widget)
	}
	if widget, _ := reg.Resolve(grouped, ""); widget != WidgetSelect {
		t.Fatalf("expected select for grouped enum, got %q", widget)
	}
}

func TestResolve_ExplicitHintWins(t *testing.T) {
	list, err := enum.New("answer", enum.Def("YES", true))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	widget, ok := NewRegistry().Resolve(list, "custom")
	if !ok || widget != "custom" {
		t.Fatalf("expected explicit hint, got %q (ok=%v)", widget, ok)
	}
}

func TestResolve_CustomMatcherPriority(t *testing.T) {
	list, err := enum.New("answer", enum.Def("YES", true))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	reg := NewRegistry()
	reg.Register("toggle", 90, func(list *enum.Choices) bool {
		return list.Len() <= 2
	})

	widget, ok := reg.Resolve(list, "")
	if !ok || widget != "toggle" {
		t.Fatalf("expected custom matcher to win, got %q (ok=%v)", widget, ok)
	}
}

func TestResolve_EmptyRegistry(t *testing.T) {
	list, err := enum.New("answer", enum.Def("YES", true))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	reg := &Registry{}
	if widget, ok := reg.Resolve(list, ""); ok {
		t.Fatalf("expected no resolution, got %q", widget)
	}
}
