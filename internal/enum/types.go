package enum

// EmptyName is the sentinel symbolic name reported by Names when an
// enumeration configures an empty-label convention.
const EmptyName = "__empty__"

// Member is one named, valued element of an enumeration. After construction
// it also carries a display Label and an optional Group tag; Group == ""
// marks a top-level (ungrouped) member.
type Member struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
	Label string `json:"label"`
	Group string `json:"group,omitempty"`
}

// Pair is a flat (value, label) choice entry, the shape form widgets and
// column constraints consume.
type Pair struct {
	Value any    `json:"value"`
	Label string `json:"label"`
}

// Choice is a single entry in the grouped choice listing. Leaf entries carry
// Value and Label; group entries carry Group plus the nested Options run.
type Choice struct {
	Value   any    `json:"value,omitempty"`
	Label   string `json:"label,omitempty"`
	Group   string `json:"group,omitempty"`
	Options []Pair `json:"options,omitempty"`
}

// IsGroup reports whether the entry is a group heading rather than a leaf
// pair.
func (c Choice) IsGroup() bool {
	return c.Group != ""
}

// Choices is an immutable ordered enumeration of members. Everything is fixed
// at construction; accessors derive read-only views from the member sequence.
type Choices struct {
	name       string
	members    []Member
	byName     map[string]int
	emptyLabel string
	hasEmpty   bool
}

// Name returns the enumeration name supplied at construction.
func (c *Choices) Name() string {
	return c.name
}

// Len returns the number of members, excluding any empty sentinel.
func (c *Choices) Len() int {
	return len(c.members)
}

// EmptyLabel returns the configured empty-choice label, if any.
func (c *Choices) EmptyLabel() (string, bool) {
	return c.emptyLabel, c.hasEmpty
}
