package enum

import (
	"errors"
	"fmt"
	"reflect"
)

// Construction-time failures callers may want to test for with errors.Is.
var (
	ErrDuplicateValue = errors.New("enum: duplicate member value")
	ErrDuplicateName  = errors.New("enum: duplicate member name")
)

// New constructs an immutable enumeration from the supplied entries. Member
// order follows entry order, with group entries flattened in place. Duplicate
// member names or values fail construction; nothing is deferred to first use.
func New(name string, entries ...Entry) (*Choices, error) {
	if name == "" {
		return nil, errors.New("enum: enumeration name is required")
	}

	labeler := DefaultLabeler
	emptyLabel := ""
	hasEmpty := false
	for _, entry := range entries {
		switch entry.kind {
		case entryEmpty:
			emptyLabel = entry.name
			hasEmpty = true
		case entryLabeler:
			if entry.labeler != nil {
				labeler = entry.labeler
			}
		}
	}

	var members []Member
	for _, entry := range entries {
		switch entry.kind {
		case entryMember:
			member, err := resolveMember(name, entry, labeler)
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		case entryGroup:
			flattened, err := flattenGroup(name, entry, labeler)
			if err != nil {
				return nil, err
			}
			members = append(members, flattened...)
		}
	}

	byName := make(map[string]int, len(members))
	for idx, member := range members {
		if prev, exists := byName[member.Name]; exists {
			return nil, fmt.Errorf("enum %q: %w: %q (positions %d and %d)",
				name, ErrDuplicateName, member.Name, prev, idx)
		}
		byName[member.Name] = idx

		for _, other := range members[:idx] {
			if valueEqual(other.Value, member.Value) {
				return nil, fmt.Errorf("enum %q: %w: members %q and %q share %v",
					name, ErrDuplicateValue, other.Name, member.Name, member.Value)
			}
		}
	}

	return &Choices{
		name:       name,
		members:    members,
		byName:     byName,
		emptyLabel: emptyLabel,
		hasEmpty:   hasEmpty,
	}, nil
}

// MustNew panics on construction failure. Useful for package-level wiring
// where definitions are static.
func MustNew(name string, entries ...Entry) *Choices {
	choices, err := New(name, entries...)
	if err != nil {
		panic(err)
	}
	return choices
}

func flattenGroup(enumName string, group Entry, labeler func(string) string) ([]Member, error) {
	if group.name == "" {
		return nil, fmt.Errorf("enum %q: group label is required", enumName)
	}

	members := make([]Member, 0, len(group.resolved)+len(group.nested))
	for _, member := range group.resolved {
		member.Group = group.name
		members = append(members, member)
	}
	for _, entry := range group.nested {
		if entry.kind != entryMember {
			return nil, fmt.Errorf("enum %q: group %q may only contain member definitions", enumName, group.name)
		}
		member, err := resolveMember(enumName, entry, labeler)
		if err != nil {
			return nil, err
		}
		member.Group = group.name
		members = append(members, member)
	}
	return members, nil
}

func resolveMember(enumName string, entry Entry, labeler func(string) string) (Member, error) {
	if entry.name == "" {
		return Member{}, fmt.Errorf("enum %q: member name is required", enumName)
	}

	member := Member{Name: entry.name}
	switch len(entry.elems) {
	case 0:
		// Text-choices convention: the value is the name itself.
		member.Value = entry.name
		member.Label = labeler(entry.name)
	case 1:
		member.Value = entry.elems[0]
		member.Label = labeler(entry.name)
	default:
		elems := entry.elems
		if label, ok := elems[len(elems)-1].(string); ok {
			member.Label = label
			elems = elems[:len(elems)-1]
		} else {
			member.Label = labeler(entry.name)
		}
		if len(elems) == 1 {
			member.Value = elems[0]
		} else {
			member.Value = append([]any(nil), elems...)
		}
	}
	return member, nil
}

// valueEqual compares member values structurally so composite values and raw
// inputs of the same underlying type match.
func valueEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
