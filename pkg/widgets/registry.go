package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-choices/pkg/enum"
	"github.com/goliatone/go-choices/pkg/render"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetSelect = render.WidgetSelect
	WidgetRadios = render.WidgetRadios
)

// Matcher decides whether a widget should render the supplied enumeration.
type Matcher func(list *enum.Choices) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for enumerations based on explicit hints or
// registered matchers. Higher priority wins; ties fall back to registration
// order. An empty registry never resolves a widget.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in widget matchers
// registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence. Callers should avoid duplicate names; the
// latest registration wins during resolution.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for an enumeration. An explicit hint is
// honoured before matcher evaluation.
func (r *Registry) Resolve(list *enum.Choices, explicit string) (string, bool) {
	if widget := strings.TrimSpace(explicit); widget != "" {
		return widget, true
	}
	if r == nil || list == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(list) {
			return entry.name, true
		}
	}
	return "", false
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetSelect, 10, func(list *enum.Choices) bool {
		return true
	})
}

// RadiosMatcher returns a matcher for small, ungrouped enumerations. Register
// it above the built-in select matcher to prefer radio groups:
//
//	reg.Register(widgets.WidgetRadios, 80, widgets.RadiosMatcher(5))
func RadiosMatcher(limit int) Matcher {
	return func(list *enum.Choices) bool {
		if list == nil || list.Len() > limit {
			return false
		}
		for _, member := range list.Members() {
			if member.Group != "" {
				return false
			}
		}
		return true
	}
}
