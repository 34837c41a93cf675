package enum

type entryKind int

const (
	entryMember entryKind = iota
	entryGroup
	entryEmpty
	entryLabeler
)

// Entry is a declarative construction element passed to New: a member
// definition, a named group of members, or a definition-time directive.
type Entry struct {
	kind     entryKind
	name     string
	elems    []any
	nested   []Entry
	resolved []Member
	labeler  func(string) string
}

// Def declares a single member. With no elements the member value is the
// symbolic name itself. With one element that element is the stored value and
// the label is inferred from the name. With two or more elements whose last
// element is a string, the last element is the explicit label and the
// remaining elements form the value (a composite value when more than one
// remains). Otherwise all elements form a composite value.
func Def(name string, elems ...any) Entry {
	return Entry{
		kind:  entryMember,
		name:  name,
		elems: append([]any(nil), elems...),
	}
}

// Group declares a named group. Its member entries are flattened into the
// parent enumeration in order, each tagged with the group label. Groups do
// not nest.
func Group(label string, entries ...Entry) Entry {
	return Entry{
		kind:   entryGroup,
		name:   label,
		nested: append([]Entry(nil), entries...),
	}
}

// Grouped flattens an existing enumeration into the parent as a named group.
// The group label defaults to the source enumeration's name; pass a label to
// override it.
func Grouped(src *Choices, label ...string) Entry {
	entry := Entry{kind: entryGroup}
	if src != nil {
		entry.name = src.name
		entry.resolved = src.Members()
	}
	if len(label) > 0 && label[0] != "" {
		entry.name = label[0]
	}
	return entry
}

// Empty configures the empty-label convention: choice listings gain a leading
// (nil, label) sentinel pair and Names gains the EmptyName sentinel.
func Empty(label string) Entry {
	return Entry{kind: entryEmpty, name: label}
}

// WithLabeler overrides the label inference applied to members declared
// without an explicit label. The directive applies to the whole enumeration
// regardless of its position in the entry list.
func WithLabeler(labeler func(string) string) Entry {
	return Entry{kind: entryLabeler, labeler: labeler}
}
