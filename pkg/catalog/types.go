package catalog

// documentFile is the on-disk shape of a catalog document. Both YAML and JSON
// payloads unmarshal into it.
type documentFile struct {
	Enums map[string]definitionFile `yaml:"enums" json:"enums"`
}

// definitionFile declares one enumeration: an optional empty-choice label and
// the ordered member list.
type definitionFile struct {
	Empty   *string      `yaml:"empty" json:"empty"`
	Members []memberFile `yaml:"members" json:"members"`
}

// memberFile declares one member. Value defaults to the symbolic name; Label
// defaults to the inferred one; Group tags the member for grouped listings.
type memberFile struct {
	Name  string `yaml:"name" json:"name"`
	Value any    `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
	Group string `yaml:"group" json:"group"`
}
