package enum

// Members returns a copy of the ordered member table.
func (c *Choices) Members() []Member {
	return append([]Member(nil), c.members...)
}

// Member returns the member with the given symbolic name.
func (c *Choices) Member(name string) (Member, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return Member{}, false
	}
	return c.members[idx], true
}

// ByValue returns the first member whose value structurally equals the
// supplied raw value.
func (c *Choices) ByValue(value any) (Member, bool) {
	if member, ok := value.(Member); ok {
		value = member.Value
	}
	for _, member := range c.members {
		if valueEqual(member.Value, value) {
			return member, true
		}
	}
	return Member{}, false
}

// Contains reports whether a raw value belongs to the enumeration. Matching
// is value-based: any input structurally equal to some member's value
// matches, including a Member carrying that value.
func (c *Choices) Contains(value any) bool {
	_, ok := c.ByValue(value)
	return ok
}

// Names returns the ordered symbolic names, with the EmptyName sentinel
// prepended when the empty-label convention is configured.
func (c *Choices) Names() []string {
	names := make([]string, 0, len(c.members)+1)
	if c.hasEmpty {
		names = append(names, EmptyName)
	}
	for _, member := range c.members {
		names = append(names, member.Name)
	}
	return names
}

// FlatChoices returns the ordered (value, label) pairs. When the empty-label
// convention is configured a (nil, emptyLabel) sentinel pair comes first.
func (c *Choices) FlatChoices() []Pair {
	pairs := make([]Pair, 0, len(c.members)+1)
	if c.hasEmpty {
		pairs = append(pairs, Pair{Value: nil, Label: c.emptyLabel})
	}
	for _, member := range c.members {
		pairs = append(pairs, Pair{Value: member.Value, Label: member.Label})
	}
	return pairs
}

// Labels projects the label column of FlatChoices.
func (c *Choices) Labels() []string {
	flat := c.FlatChoices()
	labels := make([]string, len(flat))
	for idx, pair := range flat {
		labels[idx] = pair.Label
	}
	return labels
}

// Values projects the value column of FlatChoices.
func (c *Choices) Values() []any {
	flat := c.FlatChoices()
	values := make([]any, len(flat))
	for idx, pair := range flat {
		values[idx] = pair.Value
	}
	return values
}

// Choices returns the grouped listing: contiguous runs of members sharing a
// group tag nest under a single group entry, while ungrouped members stay at
// the top level. Original definition order is preserved throughout; a group
// tag that reappears after a gap starts a new group entry.
func (c *Choices) Choices() []Choice {
	listing := make([]Choice, 0, len(c.members)+1)
	if c.hasEmpty {
		listing = append(listing, Choice{Value: nil, Label: c.emptyLabel})
	}

	lastGroup := ""
	for _, member := range c.members {
		if member.Group == "" {
			listing = append(listing, Choice{Value: member.Value, Label: member.Label})
			lastGroup = ""
			continue
		}
		pair := Pair{Value: member.Value, Label: member.Label}
		if member.Group == lastGroup {
			listing[len(listing)-1].Options = append(listing[len(listing)-1].Options, pair)
			continue
		}
		listing = append(listing, Choice{Group: member.Group, Options: []Pair{pair}})
		lastGroup = member.Group
	}
	return listing
}
