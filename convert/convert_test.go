package convert_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/cat-mip/cat-mip/convert"
	"github.com/cat-mip/cat-mip/source"
)

func TestShortID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"CAT-MIP-TERM-007", "CAT-MIP-007"},
		{"CAT-MIP-12", "CAT-MIP-12"},
		{"OTHER-REG-TERM-1", "OTHER-REG-TERM-1"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := convert.ShortID(tt.in); got != tt.want {
			t.Errorf("ShortID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanText(t *testing.T) {
	in := "“Agents” don’t wait – they act…"
	want := `"Agents" don't wait - they act...`
	if got := convert.CleanText(in); got != want {
		t.Errorf("CleanText = %q, want %q", got, want)
	}
}

func TestDocFromRecord(t *testing.T) {
	rec := convert.Record{
		ID:             "CAT-MIP-TERM-042",
		CanonicalTerm:  "AI Agent",
		Definition:     "An autonomous “actor”.",
		Synonyms:       []string{"Bot", " ", "Assistant"},
		Relationships:  []string{"Ticket"},
		PromptExamples: []string{"Zeta prompt", "Alpha prompt"},
		Tags:           []string{"automation", "core"},
		AgentExecution: source.AgentExecution{
			Interpretation: "Act autonomously:",
			Actions:        []string{"- triage first", "resolve", ""},
		},
		Metadata: convert.RecordMetadata{
			Author:    "Nicole Reineke",
			SourceURL: "https://example.org/src",
			Version:   "1.2",
			DateAdded: "2025-08-07T12:00:00Z",
			TermType:  []byte(`["Core"]`),
		},
	}

	doc := convert.DocFromRecord(rec)

	if doc.ID != "CAT-MIP-042" {
		t.Errorf("ID = %q", doc.ID)
	}
	if doc.Definition != `An autonomous "actor".` {
		t.Errorf("Definition = %q", doc.Definition)
	}
	if len(doc.Authors) != 1 || doc.Authors[0].Github != "nicole" || doc.Authors[0].Org != "N-able" {
		t.Errorf("Authors = %+v", doc.Authors)
	}
	if got := doc.Synonyms; len(got) != 2 || got[0] != "Assistant" || got[1] != "Bot" {
		t.Errorf("Synonyms = %v", got)
	}
	if got := doc.PromptExamples; got[0] != "Alpha prompt" {
		t.Errorf("prompt examples not sorted: %v", got)
	}
	if doc.AgentExecution == nil {
		t.Fatal("agent execution dropped")
	}
	if doc.AgentExecution.Interpretation != "Act autonomously" {
		t.Errorf("trailing colon kept: %q", doc.AgentExecution.Interpretation)
	}
	if got := doc.AgentExecution.Actions; len(got) != 2 || got[0] != "resolve" || got[1] != "triage first" {
		t.Errorf("Actions = %v", got)
	}
	if len(doc.History) != 2 || doc.History[0].Date != "2025-08-07" || doc.History[0].Author != "nicole" {
		t.Errorf("History = %+v", doc.History)
	}

	wantTags := []string{"automation", "cat-mip", "core", "msp"}
	if len(doc.Tags) != len(wantTags) {
		t.Fatalf("Tags = %v, want %v", doc.Tags, wantTags)
	}
	for i, tag := range wantTags {
		if doc.Tags[i] != tag {
			t.Errorf("Tags[%d] = %q, want %q", i, doc.Tags[i], tag)
		}
	}
}

func TestDocFromRecordDefaults(t *testing.T) {
	doc := convert.DocFromRecord(convert.Record{
		ID:            "X-1",
		CanonicalTerm: "Runbook",
		Definition:    "Steps.",
	})

	if doc.Authors[0].Name != convert.DefaultAuthorName || doc.Authors[0].Github != "community" {
		t.Errorf("Authors = %+v", doc.Authors)
	}
	if doc.History[0].Date != convert.DefaultDateAdded {
		t.Errorf("History = %+v", doc.History)
	}
	if len(doc.Categories) != 1 || doc.Categories[0] != convert.DefaultCategory {
		t.Errorf("Categories = %v", doc.Categories)
	}
	if doc.Version != source.DefaultVersion {
		t.Errorf("Version = %q", doc.Version)
	}
	if doc.AgentExecution != nil {
		t.Errorf("empty agent execution should be omitted, got %+v", doc.AgentExecution)
	}
}

func TestRecordMetadataTermTypeString(t *testing.T) {
	doc := convert.DocFromRecord(convert.Record{
		CanonicalTerm: "Ticket",
		Definition:    "x",
		Metadata:      convert.RecordMetadata{TermType: []byte(`"Process"`)},
	})
	if len(doc.Categories) != 1 || doc.Categories[0] != "Process" {
		t.Errorf("Categories = %v", doc.Categories)
	}
}

func TestConvertIndex(t *testing.T) {
	root := t.TempDir()
	index := filepath.Join(root, "terms.json")
	standards := filepath.Join(root, "standards")

	payload := `[
	  {
	    "id": "CAT-MIP-TERM-001",
	    "canonical_term": "AI Agent",
	    "definition": "An autonomous actor.",
	    "metadata": {"author": "Roop Petersen", "date_added": "2025-08-07"}
	  },
	  {
	    "id": "CAT-MIP-TERM-002",
	    "canonical_term": "Self Healing",
	    "definition": "Automatic remediation.",
	    "metadata": {}
	  }
	]`
	if err := os.WriteFile(index, []byte(payload), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := convert.ConvertIndex(index, standards, nil)
	if err != nil {
		t.Fatalf("ConvertIndex: %v", err)
	}
	if n != 2 {
		t.Errorf("converted %d files, want 2", n)
	}

	data, err := os.ReadFile(filepath.Join(standards, "accepted", "ai-agent.yaml"))
	if err != nil {
		t.Fatalf("converted file missing: %v", err)
	}

	var doc source.TermDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if doc.ID != "CAT-MIP-001" || doc.Term != "AI Agent" {
		t.Errorf("round-tripped doc = %+v", doc)
	}
	if doc.Authors[0].Org != "Auvik Networks Inc." {
		t.Errorf("org lookup failed: %+v", doc.Authors)
	}

	// Field order follows the authoring convention: id first, term second.
	lines := strings.SplitN(string(data), "\n", 3)
	if !strings.HasPrefix(lines[0], "id:") || !strings.HasPrefix(lines[1], "term:") {
		t.Errorf("unexpected field order:\n%s", data)
	}

	if _, err := os.Stat(filepath.Join(standards, "accepted", "self-healing.yaml")); err != nil {
		t.Errorf("second file missing: %v", err)
	}
}
