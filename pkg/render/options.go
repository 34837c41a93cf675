package render

// Widget identifiers understood by the built-in renderers.
const (
	WidgetSelect = "select"
	WidgetRadios = "radios"
)

// Options describe per-request data renderers can use to customise their
// output without mutating the enumeration itself.
type Options struct {
	// FieldName becomes the control's name attribute. Defaults to the
	// enumeration name when empty.
	FieldName string
	// Selected marks the member whose value structurally equals it as the
	// currently chosen option.
	Selected any
	// Required toggles the control's required attribute.
	Required bool
	// Widget picks the markup shape (select/radios). Renderers fall back to
	// their default when empty.
	Widget string
	// CSSClass is applied to the control wrapper.
	CSSClass string
	// Theme carries resolved theme configuration when an orchestrator-level
	// theme selection is active.
	Theme *ThemeConfig
}

// ThemeConfig is the resolved theme selection handed to renderers: design
// tokens, derived CSS custom properties, and an asset URL resolver.
type ThemeConfig struct {
	Theme    string
	Variant  string
	Tokens   map[string]string
	CSSVars  map[string]string
	AssetURL func(name string) string
}
