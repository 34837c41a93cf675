package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-choices/pkg/enum"
)

// Option configures a Prompter.
type Option func(*Prompter)

// WithDriver injects a custom prompt driver. The default drives a survey
// select on the current terminal.
func WithDriver(driver PromptDriver) Option {
	return func(p *Prompter) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithPageSize bounds how many options a prompt shows at once.
func WithPageSize(size int) Option {
	return func(p *Prompter) {
		p.pageSize = size
	}
}

// Prompter asks the user to pick a member of an enumeration interactively.
// Grouped members display with their group heading as a prefix; the
// empty-label convention becomes a leading option that picks nothing.
type Prompter struct {
	driver   PromptDriver
	pageSize int
}

// NewPrompter constructs a Prompter applying any provided options.
func NewPrompter(options ...Option) *Prompter {
	p := &Prompter{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Pick prompts for one member of the enumeration. The second return value is
// false when the user chose the empty sentinel.
func (p *Prompter) Pick(ctx context.Context, choices *enum.Choices, message string) (enum.Member, bool, error) {
	if choices == nil {
		return enum.Member{}, false, errors.New("tui: enumeration is required")
	}
	if message == "" {
		message = fmt.Sprintf("Select %s", choices.Name())
	}

	labels, members := promptOptions(choices)
	if len(labels) == 0 {
		return enum.Member{}, false, fmt.Errorf("tui: enumeration %q has no members", choices.Name())
	}

	idx, err := p.driver.Select(ctx, SelectConfig{
		Message:  message,
		Options:  labels,
		PageSize: p.pageSize,
	})
	if err != nil {
		return enum.Member{}, false, err
	}
	if idx < 0 || idx >= len(members) {
		return enum.Member{}, false, fmt.Errorf("tui: selection index %d out of range", idx)
	}

	member := members[idx]
	if member == nil {
		return enum.Member{}, false, nil
	}
	return *member, true, nil
}

// promptOptions flattens the enumeration into display strings plus a parallel
// member slice; a nil member marks the empty sentinel.
func promptOptions(choices *enum.Choices) ([]string, []*enum.Member) {
	members := choices.Members()

	labels := make([]string, 0, len(members)+1)
	lookup := make([]*enum.Member, 0, len(members)+1)

	if emptyLabel, ok := choices.EmptyLabel(); ok {
		labels = append(labels, emptyLabel)
		lookup = append(lookup, nil)
	}
	for idx := range members {
		member := members[idx]
		display := member.Label
		if member.Group != "" {
			display = member.Group + " / " + member.Label
		}
		labels = append(labels, display)
		lookup = append(lookup, &members[idx])
	}
	return labels, lookup
}
