package enum

import internalenum "github.com/goliatone/go-choices/internal/enum"

// EmptyName re-exports the sentinel name used by Names when the empty-label
// convention is configured.
const EmptyName = internalenum.EmptyName

// Core types re-exported from the internal implementation.
type (
	Member  = internalenum.Member
	Pair    = internalenum.Pair
	Choice  = internalenum.Choice
	Choices = internalenum.Choices
	Entry   = internalenum.Entry
)

// Construction failures callers may test for with errors.Is.
var (
	ErrDuplicateValue = internalenum.ErrDuplicateValue
	ErrDuplicateName  = internalenum.ErrDuplicateName
)

// New constructs an immutable enumeration from declarative entries.
func New(name string, entries ...Entry) (*Choices, error) {
	return internalenum.New(name, entries...)
}

// MustNew panics on construction failure. Useful for package-level wiring.
func MustNew(name string, entries ...Entry) *Choices {
	return internalenum.MustNew(name, entries...)
}

// Def declares a member; see internal/enum.Def for the element rules.
func Def(name string, elems ...any) Entry {
	return internalenum.Def(name, elems...)
}

// Group declares a named group whose members flatten into the parent.
func Group(label string, entries ...Entry) Entry {
	return internalenum.Group(label, entries...)
}

// Grouped flattens an existing enumeration into the parent as a named group.
func Grouped(src *Choices, label ...string) Entry {
	return internalenum.Grouped(src, label...)
}

// Empty configures the empty-label convention for the enumeration.
func Empty(label string) Entry {
	return internalenum.Empty(label)
}

// WithLabeler overrides the default label inference.
func WithLabeler(labeler func(string) string) Entry {
	return internalenum.WithLabeler(labeler)
}

// DefaultLabeler is the built-in label inference: underscores become spaces
// and each word is title-cased.
func DefaultLabeler(name string) string {
	return internalenum.DefaultLabeler(name)
}
