package choicesapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-choices/pkg/enum"
)

// Option is one JSON record returned by the handler.
type Option struct {
	Value any    `json:"value"`
	Label string `json:"label"`
	Group string `json:"group,omitempty"`
}

// Search filters the enumeration's members by a case-insensitive substring
// match on label, name, and stringified value. Prefix matches on the label
// rank first; ties keep declaration order.
func Search(list *enum.Choices, query string, limit int, opts Options) []Option {
	if list == nil {
		return nil
	}

	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	members := list.Members()

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(members) > limit {
				members = members[:limit]
			}
			return toOptions(members)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedMember, 0, len(members))
	for _, member := range members {
		label := strings.ToLower(member.Label)
		if !strings.Contains(label, q) &&
			!strings.Contains(strings.ToLower(member.Name), q) &&
			!strings.Contains(strings.ToLower(fmt.Sprint(member.Value)), q) {
			continue
		}
		matches = append(matches, matchedMember{
			member:   member,
			isPrefix: strings.HasPrefix(label, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].isPrefix && !matches[j].isPrefix
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]enum.Member, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.member)
	}
	return toOptions(out)
}

func toOptions(members []enum.Member) []Option {
	if len(members) == 0 {
		return nil
	}
	out := make([]Option, 0, len(members))
	for _, member := range members {
		out = append(out, Option{Value: member.Value, Label: member.Label, Group: member.Group})
	}
	return out
}

type matchedMember struct {
	member   enum.Member
	isPrefix bool
}
