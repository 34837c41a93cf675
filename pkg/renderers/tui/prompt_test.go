package tui

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-choices/pkg/enum"
)

type scriptedDriver struct {
	pick int
	err  error
	seen []SelectConfig
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.seen = append(d.seen, cfg)
	return d.pick, d.err
}

func mediaFixture(t *testing.T, extra ...enum.Entry) *enum.Choices {
	t.Helper()

	entries := append([]enum.Entry{
		enum.Group("Audio",
			enum.Def("VINYL", "vinyl"),
			enum.Def("CD", "cd", "Compact Disc"),
		),
		enum.Def("UNKNOWN", "unknown"),
	}, extra...)

	choices, err := enum.New("MediaFormat", entries...)
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return choices
}

func TestPick_ReturnsChosenMember(t *testing.T) {
	driver := &scriptedDriver{pick: 1}
	prompter := NewPrompter(WithDriver(driver))

	member, ok, err := prompter.Pick(context.Background(), mediaFixture(t), "")
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if !ok {
		t.Fatal("expected a member selection")
	}
	if member.Name != "CD" {
		t.Fatalf("unexpected member %q", member.Name)
	}

	if len(driver.seen) != 1 {
		t.Fatalf("expected one prompt, got %d", len(driver.seen))
	}
	wantOptions := []string{"Audio / Vinyl", "Audio / Compact Disc", "Unknown"}
	if diff := cmp.Diff(wantOptions, driver.seen[0].Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if driver.seen[0].Message != "Select MediaFormat" {
		t.Fatalf("unexpected message %q", driver.seen[0].Message)
	}
}

func TestPick_EmptySentinelSelectsNothing(t *testing.T) {
	driver := &scriptedDriver{pick: 0}
	prompter := NewPrompter(WithDriver(driver))

	fixture := mediaFixture(t, enum.Empty("(none)"))
	_, ok, err := prompter.Pick(context.Background(), fixture, "Pick one")
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if ok {
		t.Fatal("expected empty sentinel to select nothing")
	}
	if driver.seen[0].Options[0] != "(none)" {
		t.Fatalf("expected empty label first, got %q", driver.seen[0].Options[0])
	}
}

func TestPick_PropagatesDriverErrors(t *testing.T) {
	driver := &scriptedDriver{err: ErrAborted}
	prompter := NewPrompter(WithDriver(driver))

	if _, _, err := prompter.Pick(context.Background(), mediaFixture(t), ""); err != ErrAborted {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestPick_RequiresEnumeration(t *testing.T) {
	prompter := NewPrompter(WithDriver(&scriptedDriver{}))
	if _, _, err := prompter.Pick(context.Background(), nil, ""); err == nil {
		t.Fatal("expected error for nil enumeration")
	}
}
