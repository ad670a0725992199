package linker_test

import (
	"testing"

	"github.com/cat-mip/cat-mip/linker"
	"github.com/cat-mip/cat-mip/registry"
)

func TestCompileOrdering(t *testing.T) {
	reg := registry.Build([]registry.TermEntry{
		registry.NewTermEntry("Agent", "accepted"),
		registry.NewTermEntry("AI Agent", "accepted"),
		registry.NewTermEntry("Bot", "draft"),
		registry.NewTermEntry("Nod", "draft"),
	}, nil)

	patterns := linker.Compile(reg, "")

	got := make([]string, len(patterns))
	for i, p := range patterns {
		got[i] = p.MatchText
	}

	// Longest first; equal lengths ordered by normalized key.
	want := []string{"AI Agent", "Agent", "Bot", "Nod"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestCompileExcludesCurrentPage(t *testing.T) {
	reg := registry.Build([]registry.TermEntry{
		registry.NewTermEntry("Agent", "accepted"),
		registry.NewTermEntry("Ticket", "accepted"),
	}, nil)

	for _, p := range linker.Compile(reg, "agent") {
		if p.TargetSlug == "agent" {
			t.Fatal("excluded slug present in compiled patterns")
		}
	}
	if got := len(linker.Compile(reg, "agent")); got != 1 {
		t.Errorf("got %d patterns, want 1", got)
	}
}

func TestCompileSkipsBlankDisplayNames(t *testing.T) {
	reg := registry.Build([]registry.TermEntry{
		registry.NewTermEntry("", "accepted"),
		registry.NewTermEntry("Agent", "accepted"),
	}, nil)

	patterns := linker.Compile(reg, "")
	if len(patterns) != 1 || patterns[0].MatchText != "Agent" {
		t.Fatalf("patterns = %+v, want only Agent", patterns)
	}
}

func TestPatternRelPath(t *testing.T) {
	p := linker.Pattern{MatchText: "Runbook", TargetSlug: "runbook", TargetFolder: "draft"}

	if got := p.RelPath("draft"); got != "runbook.md" {
		t.Errorf("same folder: got %q", got)
	}
	if got := p.RelPath("accepted"); got != "../draft/runbook.md" {
		t.Errorf("cross folder: got %q", got)
	}
}
