package catalog

import (
	"sort"

	"github.com/goliatone/go-choices/pkg/enum"
)

// Store holds the enumerations loaded from a catalog, keyed by name.
type Store struct {
	enums   map[string]*enum.Choices
	sources map[string]string
}

// Enum returns the enumeration registered under the supplied name.
func (s *Store) Enum(name string) (*enum.Choices, bool) {
	if s == nil {
		return nil, false
	}
	choices, ok := s.enums[name]
	return choices, ok
}

// Source returns the file path the named enumeration was loaded from.
func (s *Store) Source(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	src, ok := s.sources[name]
	return src, ok
}

// Names returns a sorted list of the enumeration names in the store.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.enums))
	for name := range s.enums {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of enumerations in the store.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.enums)
}

// Empty reports whether the store holds no enumerations.
func (s *Store) Empty() bool {
	return s.Len() == 0
}
