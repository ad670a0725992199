package registry_test

import (
	"strings"
	"testing"

	"github.com/cat-mip/cat-mip/registry"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Agent", "agent"},
		{"spaces to hyphens", "AI Agent", "ai-agent"},
		{"punctuation stripped", "Self-Healing (Auto)", "self-healing-auto"},
		{"collapsed runs", "A  --  B", "a-b"},
		{"trimmed edges", " Agent ", "agent"},
		{"unicode stripped", "Ticket Résolution", "ticket-r-solution"},
		{"empty input", "", registry.FallbackSlug},
		{"no slug characters", "!!!", registry.FallbackSlug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := registry.Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewTermEntry(t *testing.T) {
	e := registry.NewTermEntry("AI Agent", "accepted")

	if e.Slug != "ai-agent" {
		t.Errorf("Slug = %q, want %q", e.Slug, "ai-agent")
	}
	if e.NormalizedKey != "ai agent" {
		t.Errorf("NormalizedKey = %q, want %q", e.NormalizedKey, "ai agent")
	}
	if e.Folder != "accepted" {
		t.Errorf("Folder = %q, want %q", e.Folder, "accepted")
	}
}

func TestBuildLookup(t *testing.T) {
	r := registry.Build([]registry.TermEntry{
		registry.NewTermEntry("Agent", "accepted"),
		registry.NewTermEntry("AI Agent", "draft"),
	}, nil)

	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}

	e, ok := r.Lookup("ai agent")
	if !ok {
		t.Fatal("Lookup(\"ai agent\") not found")
	}
	if e.Folder != "draft" {
		t.Errorf("Folder = %q, want %q", e.Folder, "draft")
	}

	if _, ok := r.Lookup("missing"); ok {
		t.Error("Lookup(\"missing\") found unexpected entry")
	}
}

func TestBuildDuplicates(t *testing.T) {
	var warnings []string
	warn := func(msg string) { warnings = append(warnings, msg) }

	r := registry.Build([]registry.TermEntry{
		registry.NewTermEntry("Agent", "accepted"),
		registry.NewTermEntry("agent", "draft"),
		registry.NewTermEntry("AGENT", "rejected"),
	}, warn)

	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3 (duplicates must not be dropped)", r.Len())
	}
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warnings), warnings)
	}

	// Lookup returns the first-registered entry.
	e, ok := r.Lookup("agent")
	if !ok {
		t.Fatal("Lookup(\"agent\") not found")
	}
	if e.Folder != "accepted" || e.Slug != "agent" {
		t.Errorf("first entry = %+v, want accepted/agent", e)
	}

	// Later duplicates keep distinct slugs.
	slugs := make(map[string]bool)
	for _, entry := range r.All() {
		if slugs[entry.Slug] {
			t.Errorf("duplicate slug %q in registry", entry.Slug)
		}
		slugs[entry.Slug] = true
	}
	if !slugs["agent-2"] || !slugs["agent-3"] {
		t.Errorf("expected suffixed slugs agent-2 and agent-3, got %v", slugs)
	}
}

func TestAllSorted(t *testing.T) {
	r := registry.Build([]registry.TermEntry{
		registry.NewTermEntry("Ticket", "accepted"),
		registry.NewTermEntry("Agent", "accepted"),
		registry.NewTermEntry("Remediation", "draft"),
	}, nil)

	all := r.All()
	for i := 1; i < len(all); i++ {
		if strings.Compare(all[i-1].NormalizedKey, all[i].NormalizedKey) > 0 {
			t.Fatalf("All() not sorted: %q before %q", all[i-1].NormalizedKey, all[i].NormalizedKey)
		}
	}
}
