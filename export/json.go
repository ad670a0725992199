package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cat-mip/cat-mip/source"
)

// JSON artifact file names.
const (
	// IndexFile holds accepted terms only.
	IndexFile = "cat-mip.json"

	// DevIndexFile holds accepted plus draft terms.
	DevIndexFile = "cat-mip-dev.json"
)

// RegistryName identifies the publishing registry in record metadata.
const RegistryName = "cat-mip.org"

// sourceURLBase is where record metadata points readers at the source tree.
const sourceURLBase = "https://github.com/cat-mip/cat-mip/blob/main/standards"

// Metadata is the per-record provenance block of the JSON index.
type Metadata struct {
	Author    string `json:"author"`
	SourceURL string `json:"source_url"`
	Version   string `json:"version"`
	DateAdded string `json:"date_added"`
	Registry  string `json:"registry"`
	TermType  string `json:"term_type"`
}

// TermRecord is one entry of the machine-readable JSON index. All array
// fields are always present ([] means explicitly empty, never null) and all
// text fields are non-empty, so downstream tools need no defensive code.
type TermRecord struct {
	ID             string                `json:"id"`
	CanonicalTerm  string                `json:"canonical_term"`
	Definition     string                `json:"definition"`
	Synonyms       []string              `json:"synonyms"`
	Relationships  []string              `json:"relationships"`
	PromptExamples []string              `json:"prompt_examples"`
	Examples       []string              `json:"examples"`
	AgentExecution source.AgentExecution `json:"agent_execution"`
	Status         string                `json:"status"`
	ExpectedOuts   []json.RawMessage     `json:"expected_outputs,omitempty"`
	Metadata       Metadata              `json:"metadata"`
}

// NewTermRecord converts a normalized term document into an index record.
func NewTermRecord(doc *source.TermDocument) TermRecord {
	ae := source.AgentExecution{Actions: []string{}}
	if doc.AgentExecution != nil {
		ae.Interpretation = doc.AgentExecution.Interpretation
		if doc.AgentExecution.Actions != nil {
			ae.Actions = doc.AgentExecution.Actions
		}
	}

	return TermRecord{
		ID:             doc.ID,
		CanonicalTerm:  doc.Term,
		Definition:     doc.Definition,
		Synonyms:       orEmpty(doc.Synonyms),
		Relationships:  orEmpty(doc.Relationships),
		PromptExamples: orEmpty(doc.PromptExamples),
		Examples:       orEmpty(doc.Examples),
		AgentExecution: ae,
		Status:         doc.Folder,
		Metadata: Metadata{
			Author:    doc.PrimaryAuthor(),
			SourceURL: fmt.Sprintf("%s/%s/%s.md", sourceURLBase, doc.Folder, doc.Stem),
			Version:   doc.Version,
			DateAdded: doc.DateAdded(),
			Registry:  RegistryName,
			TermType:  doc.TermType(),
		},
	}
}

// BuildIndex converts the documents in the given folders into records sorted
// case-insensitively by canonical term.
func BuildIndex(docs []*source.TermDocument, folders ...string) []TermRecord {
	wanted := make(map[string]bool, len(folders))
	for _, f := range folders {
		wanted[f] = true
	}

	records := make([]TermRecord, 0, len(docs))
	for _, doc := range docs {
		if wanted[doc.Folder] {
			records = append(records, NewTermRecord(doc))
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return strings.ToLower(records[i].CanonicalTerm) < strings.ToLower(records[j].CanonicalTerm)
	})
	return records
}

// EncodeIndex renders records as the registry's published JSON: two-space
// indentation, no HTML escaping, trailing newline.
func EncodeIndex(records []TermRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encode term index: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteJSONIndexes writes cat-mip.json (accepted) and cat-mip-dev.json
// (accepted + draft) into buildDir.
func WriteJSONIndexes(docs []*source.TermDocument, buildDir string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(buildDir, 0755); err != nil {
		return fmt.Errorf("create build directory: %w", err)
	}

	artifacts := []struct {
		name    string
		folders []string
	}{
		{IndexFile, []string{"accepted"}},
		{DevIndexFile, []string{"accepted", "draft"}},
	}

	for _, a := range artifacts {
		records := BuildIndex(docs, a.folders...)
		data, err := EncodeIndex(records)
		if err != nil {
			return err
		}
		path := filepath.Join(buildDir, a.name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", a.name, err)
		}
		logger.Info("Built term index",
			slog.String("file", a.name),
			slog.Int("terms", len(records)))
	}

	return nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
