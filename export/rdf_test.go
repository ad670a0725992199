package export_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cat-mip/cat-mip/export"
	"github.com/cat-mip/cat-mip/source"
	"github.com/cat-mip/cat-mip/vocabulary/catmip"
)

func acceptedDocs() []*source.TermDocument {
	docs := []*source.TermDocument{
		{
			Term:       "Ticket",
			Definition: "A tracked unit of support work.",
			Folder:     "accepted",
			Stem:       "ticket",
			History:    []source.HistoryEntry{{Date: "2025-09-19", Author: "nicole", Reason: "Initial term addition"}},
		},
		{
			Term:          "AI Agent",
			Definition:    "An autonomous software actor.",
			Synonyms:      []string{"Autonomous Agent"},
			Relationships: []string{"An AI Agent resolves a Ticket"},
			Folder:        "accepted",
			Stem:          "ai-agent",
		},
	}
	for _, d := range docs {
		d.Normalize()
	}
	return docs
}

func TestBuildSKOSGraphTurtle(t *testing.T) {
	output, err := export.BuildSKOSGraph(acceptedDocs()).Export(export.FormatTurtle)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if !strings.Contains(output, "@prefix skos:") {
		t.Error("Turtle output should contain prefix declarations")
	}
	if !strings.Contains(output, catmip.ConceptIRI("ai-agent")) {
		t.Error("Turtle output should contain the ai-agent concept IRI")
	}
	if !strings.Contains(output, `"AI Agent"@en`) {
		t.Error("Turtle output should contain the language-tagged prefLabel")
	}
	if !strings.Contains(output, `"Autonomous Agent"@en`) {
		t.Error("Turtle output should contain the synonym altLabel")
	}
	if !strings.Contains(output, `"2025-09-19"`) {
		t.Error("Turtle output should contain the issued date")
	}

	// AI Agent sorts before Ticket.
	aiPos := strings.Index(output, catmip.ConceptIRI("ai-agent"))
	ticketPos := strings.Index(output, "<"+catmip.ConceptIRI("ticket")+">\n")
	if ticketPos < aiPos {
		t.Error("concepts should be emitted alphabetically")
	}
}

func TestBuildSKOSGraphRelated(t *testing.T) {
	output, err := export.BuildSKOSGraph(acceptedDocs()).Export(export.FormatNTriples)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	related := "<" + catmip.ConceptIRI("ai-agent") + "> <" + catmip.Related + "> <" + catmip.ConceptIRI("ticket") + "> ."
	if !strings.Contains(output, related) {
		t.Errorf("missing inferred skos:related edge:\n%s", output)
	}
	// Self-mentions must not create self-edges.
	self := "<" + catmip.ConceptIRI("ai-agent") + "> <" + catmip.Related + "> <" + catmip.ConceptIRI("ai-agent") + "> ."
	if strings.Contains(output, self) {
		t.Error("relationship inference produced a self-edge")
	}
}

func TestBuildSKOSGraphScheme(t *testing.T) {
	output, err := export.BuildSKOSGraph(nil).Export(export.FormatNTriples)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	scheme := "<" + catmip.ConceptIRI("") + "> <" + catmip.RDFType + "> <" + catmip.ClassConceptScheme + "> ."
	if !strings.Contains(output, scheme) {
		t.Error("output should always contain the concept scheme")
	}
}

func TestExportJSONLD(t *testing.T) {
	output, err := export.BuildSKOSGraph(acceptedDocs()).Export(export.FormatJSONLD)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var doc struct {
		Context map[string]string `json:"@context"`
		Graph   []map[string]any  `json:"@graph"`
	}
	if err := json.Unmarshal([]byte(output), &doc); err != nil {
		t.Fatalf("JSON-LD output is not valid JSON: %v", err)
	}
	if doc.Context["skos"] != catmip.PrefixSKOS {
		t.Error("context missing skos prefix")
	}
	if len(doc.Graph) != 3 { // scheme + 2 concepts
		t.Errorf("graph has %d nodes, want 3", len(doc.Graph))
	}
}

func TestLiteralEscaping(t *testing.T) {
	e := export.NewSKOSExporter()
	e.AddConcept(export.Concept{
		IRI:   catmip.ConceptIRI("quoted"),
		Types: []string{catmip.ClassConcept},
		Triples: []export.Triple{
			{Predicate: catmip.Definition, Object: export.Literal(`say "hi"` + "\nnext line")},
		},
	})

	output, err := e.Export(export.FormatNTriples)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.Contains(output, `\"hi\"`) {
		t.Errorf("quotes not escaped: %s", output)
	}
	if !strings.Contains(output, `\n`) {
		t.Errorf("newline not escaped: %s", output)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    export.Format
		wantErr bool
	}{
		{"turtle", export.FormatTurtle, false},
		{"ttl", export.FormatTurtle, false},
		{"", export.FormatTurtle, false},
		{"NT", export.FormatNTriples, false},
		{"json-ld", export.FormatJSONLD, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := export.ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
