// Package convert turns a published registry JSON index back into per-term
// YAML source files under the standards tree. It is the inverse of the index
// exporter, used to bootstrap a standards tree from a registry snapshot.
package convert

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cat-mip/cat-mip/registry"
	"github.com/cat-mip/cat-mip/source"
)

// Converted documents default to these values when the index carries none.
const (
	DefaultAuthorName = "Community Contributor"
	DefaultDateAdded  = "2025-08-07"
	DefaultCategory   = "Core"
)

// DefaultTags are stamped on every converted document in addition to any
// tags carried by the index record.
var DefaultTags = []string{"cat-mip", "core", "msp"}

// knownOrgs maps registry contributors to their organisations. Records from
// other authors get an empty org.
var knownOrgs = map[string]string{
	"Nicole Reineke": "N-able",
	"Roop Petersen":  "Auvik Networks Inc.",
}

// Record is one entry of the registry JSON index as read by the converter.
// The metadata term_type is kept raw because historic snapshots stored it as
// either a string or a list.
type Record struct {
	ID             string                `json:"id"`
	CanonicalTerm  string                `json:"canonical_term"`
	Definition     string                `json:"definition"`
	Synonyms       []string              `json:"synonyms"`
	Relationships  []string              `json:"relationships"`
	PromptExamples []string              `json:"prompt_examples"`
	Tags           []string              `json:"tags"`
	AgentExecution source.AgentExecution `json:"agent_execution"`
	Metadata       RecordMetadata        `json:"metadata"`
}

// RecordMetadata is the provenance block of an index record.
type RecordMetadata struct {
	Author    string          `json:"author"`
	SourceURL string          `json:"source_url"`
	Version   string          `json:"version"`
	DateAdded string          `json:"date_added"`
	TermType  json.RawMessage `json:"term_type"`
}

// categories decodes term_type into the YAML categories list, accepting both
// the list and plain-string historic encodings.
func (m RecordMetadata) categories() []string {
	var list []string
	if err := json.Unmarshal(m.TermType, &list); err == nil && len(list) > 0 {
		return list
	}
	var single string
	if err := json.Unmarshal(m.TermType, &single); err == nil && single != "" {
		return []string{single}
	}
	return []string{DefaultCategory}
}

// CleanText replaces typographic quotes, dashes and ellipses picked up from
// word processors with their plain ASCII forms.
func CleanText(s string) string {
	return textCleaner.Replace(s)
}

var textCleaner = strings.NewReplacer(
	"“", `"`, "”", `"`,
	"‘", "'", "’", "'",
	"–", "-", "—", "--",
	"…", "...",
)

// ShortID compacts a long registry identifier of the form CAT-MIP-<kind>-<n>
// to CAT-MIP-<n>. Any other shape passes through unchanged.
func ShortID(id string) string {
	parts := strings.Split(id, "-")
	if len(parts) == 4 && parts[0] == "CAT" && parts[1] == "MIP" {
		return "CAT-MIP-" + parts[3]
	}
	return id
}

// DocFromRecord builds the YAML term document for one index record.
func DocFromRecord(rec Record) *source.TermDocument {
	author := strings.TrimSpace(CleanText(rec.Metadata.Author))
	if author == "" {
		author = DefaultAuthorName
	}
	handle := strings.ToLower(strings.Fields(author)[0])

	added := rec.Metadata.DateAdded
	if added == "" {
		added = DefaultDateAdded
	}
	if len(added) > 10 {
		added = added[:10]
	}

	version := rec.Metadata.Version
	if version == "" {
		version = source.DefaultVersion
	}

	doc := &source.TermDocument{
		ID:         ShortID(rec.ID),
		Term:       rec.CanonicalTerm,
		Version:    version,
		Authors:    []source.Author{{Name: author, Github: handle, Org: knownOrgs[author]}},
		Discussion: CleanText(rec.Metadata.SourceURL),
		Categories: rec.Metadata.categories(),
		Tags:       mergeTags(rec.Tags),
		Definition: CleanText(rec.Definition),
		History: []source.HistoryEntry{
			{Date: added, Author: handle, Reason: "Initial term addition to build registry"},
			{Date: added, Author: handle, Reason: "Accepted into CAT-MIP registry"},
		},
		Synonyms:       cleanSorted(rec.Synonyms),
		Relationships:  cleanSorted(rec.Relationships),
		PromptExamples: cleanSorted(rec.PromptExamples),
	}

	interp := strings.TrimSpace(strings.TrimRight(CleanText(rec.AgentExecution.Interpretation), ":"))
	actions := make([]string, 0, len(rec.AgentExecution.Actions))
	for _, a := range rec.AgentExecution.Actions {
		a = strings.TrimSpace(strings.TrimLeft(CleanText(a), "- "))
		if a != "" {
			actions = append(actions, a)
		}
	}
	sort.Strings(actions)
	if interp != "" || len(actions) > 0 {
		doc.AgentExecution = &source.AgentExecution{Interpretation: interp, Actions: actions}
	}

	return doc
}

// mergeTags joins the default tag set with the record's own tags, cleaned,
// deduplicated and sorted.
func mergeTags(tags []string) []string {
	seen := make(map[string]bool, len(DefaultTags)+len(tags))
	merged := make([]string, 0, len(DefaultTags)+len(tags))
	for _, t := range append(append([]string{}, DefaultTags...), tags...) {
		t = strings.TrimSpace(CleanText(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		merged = append(merged, t)
	}
	sort.Strings(merged)
	return merged
}

func cleanSorted(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(CleanText(v)); v != "" {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// EncodeDoc renders a term document as two-space indented YAML.
func EncodeDoc(doc *source.TermDocument) ([]byte, error) {
	var buf strings.Builder
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode %s: %w", doc.Term, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode %s: %w", doc.Term, err)
	}
	return []byte(buf.String()), nil
}

// ConvertIndex reads a registry JSON index and writes one YAML term file per
// record into standardsDir/accepted. It returns the number of files written.
func ConvertIndex(inputPath, standardsDir string, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return 0, fmt.Errorf("read index: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("parse index %s: %w", inputPath, err)
	}

	acceptedDir := filepath.Join(standardsDir, "accepted")
	if err := os.MkdirAll(acceptedDir, 0755); err != nil {
		return 0, fmt.Errorf("create standards tree: %w", err)
	}

	for _, rec := range records {
		doc := DocFromRecord(rec)
		out, err := EncodeDoc(doc)
		if err != nil {
			return 0, err
		}
		name := registry.Slugify(doc.Term) + ".yaml"
		path := filepath.Join(acceptedDir, name)
		if err := os.WriteFile(path, out, 0644); err != nil {
			return 0, fmt.Errorf("write %s: %w", name, err)
		}
		logger.Info("Converted term", slog.String("file", name))
	}

	return len(records), nil
}
