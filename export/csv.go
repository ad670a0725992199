package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// DefaultStdVersion is the standard version stamped on CSV rows when the
// caller does not supply one.
const DefaultStdVersion = "v1.0"

// defaultSourceURL is the source_url fallback for rows whose term metadata
// carries none.
const defaultSourceURL = "https://cat-mip.org/standard/v1-0/"

// promptIndexSchema validates the JSON index consumed by the CSV export.
const promptIndexSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "canonical_term"],
    "properties": {
      "id": {"type": "string"},
      "canonical_term": {"type": "string"},
      "definition": {"type": "string"},
      "synonyms": {"type": "array", "items": {"type": "string"}},
      "relationships": {"type": "array", "items": {"type": "string"}},
      "prompt_examples": {"type": "array", "items": {"type": "string"}},
      "agent_execution": {
        "type": "object",
        "properties": {
          "interpretation": {"type": "string"},
          "actions": {"type": "array", "items": {"type": "string"}}
        }
      },
      "expected_outputs": {
        "type": "array",
        "items": {"oneOf": [{"type": "object"}, {"type": "string"}]}
      },
      "metadata": {
        "type": "object",
        "properties": {
          "author": {"type": "string"},
          "source_url": {"type": "string"},
          "version": {"type": "string"},
          "date_added": {"type": "string"},
          "registry": {"type": "string"},
          "term_type": {"type": "string"}
        }
      }
    }
  }
}`

// promptCSVHeader is the column order of the vendor prompt CSV.
var promptCSVHeader = []string{
	"std_version", "term_id", "canonical_term", "prompt_id", "user_prompt",
	"expected_output_kind", "expected_output_payload", "author", "date_added", "source_url",
}

// PromptRow is one exported prompt example.
type PromptRow struct {
	StdVersion    string
	TermID        string
	CanonicalTerm string
	PromptID      string
	UserPrompt    string
	OutputKind    string
	OutputPayload string
	Author        string
	DateAdded     string
	SourceURL     string
}

func (r PromptRow) fields() []string {
	return []string{
		r.StdVersion, r.TermID, r.CanonicalTerm, r.PromptID, r.UserPrompt,
		r.OutputKind, r.OutputPayload, r.Author, r.DateAdded, r.SourceURL,
	}
}

// ValidatePromptIndex checks raw JSON index content against the prompt
// export schema.
func ValidatePromptIndex(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("terms.schema.json", strings.NewReader(promptIndexSchema)); err != nil {
		return fmt.Errorf("load prompt index schema: %w", err)
	}
	schema, err := compiler.Compile("terms.schema.json")
	if err != nil {
		return fmt.Errorf("compile prompt index schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse term index: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("term index failed schema validation: %w", err)
	}
	return nil
}

// BuildPromptRows expands each term's prompt examples into CSV rows. The
// expected output comes from the term's expected_outputs at the same index
// when present (object -> json, string -> text); otherwise the row falls
// back to the agent execution action hints. Duplicate prompt ids and terms
// missing id or canonical_term are errors.
func BuildPromptRows(records []TermRecord, stdVersion string) ([]PromptRow, error) {
	if stdVersion == "" {
		stdVersion = DefaultStdVersion
	}

	var rows []PromptRow
	seen := make(map[string]bool)

	for _, rec := range records {
		termID := strings.TrimSpace(rec.ID)
		name := strings.TrimSpace(rec.CanonicalTerm)
		if termID == "" || name == "" {
			return nil, fmt.Errorf("term record missing required id/canonical_term (id=%q, term=%q)", rec.ID, rec.CanonicalTerm)
		}

		for i, prompt := range rec.PromptExamples {
			prompt = strings.TrimSpace(prompt)
			if prompt == "" {
				continue
			}

			kind, payload, err := expectedOutput(rec, i)
			if err != nil {
				return nil, fmt.Errorf("term %s prompt %d: %w", termID, i+1, err)
			}

			promptID := fmt.Sprintf("%s-p%02d", termID, i+1)
			if seen[promptID] {
				return nil, fmt.Errorf("duplicate prompt_id: %s", promptID)
			}
			seen[promptID] = true

			sourceURL := rec.Metadata.SourceURL
			if sourceURL == "" {
				sourceURL = defaultSourceURL
			}

			rows = append(rows, PromptRow{
				StdVersion:    stdVersion,
				TermID:        termID,
				CanonicalTerm: name,
				PromptID:      promptID,
				UserPrompt:    prompt,
				OutputKind:    kind,
				OutputPayload: payload,
				Author:        rec.Metadata.Author,
				DateAdded:     rec.Metadata.DateAdded,
				SourceURL:     sourceURL,
			})
		}
	}

	return rows, nil
}

// expectedOutput resolves the expected output kind and payload for prompt i.
func expectedOutput(rec TermRecord, i int) (string, string, error) {
	if i < len(rec.ExpectedOuts) {
		raw := bytes.TrimSpace(rec.ExpectedOuts[i])
		switch {
		case len(raw) > 0 && raw[0] == '{':
			var buf bytes.Buffer
			if err := json.Compact(&buf, raw); err != nil {
				return "", "", fmt.Errorf("compact expected output: %w", err)
			}
			return "json", buf.String(), nil
		case len(raw) > 0 && raw[0] == '"':
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return "", "", fmt.Errorf("parse expected output: %w", err)
			}
			return "text", s, nil
		}
	}

	hints, err := json.Marshal(map[string][]string{"action_hints": rec.AgentExecution.Actions})
	if err != nil {
		return "", "", fmt.Errorf("marshal action hints: %w", err)
	}
	return "action_hints", string(hints), nil
}

// EncodePromptCSV renders rows with every field quoted, matching the
// published artifact format. encoding/csv only quotes fields that need it,
// so quoting is done here.
func EncodePromptCSV(rows []PromptRow) []byte {
	var buf bytes.Buffer

	writeRecord := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
			buf.WriteByte('"')
		}
		buf.WriteString("\r\n")
	}

	writeRecord(promptCSVHeader)
	for _, row := range rows {
		writeRecord(row.fields())
	}

	return buf.Bytes()
}

// ExportPromptCSV reads a JSON term index, validates it, and writes the
// vendor prompt CSV.
func ExportPromptCSV(inputPath, outPath, stdVersion string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read term index: %w", err)
	}
	if err := ValidatePromptIndex(data); err != nil {
		return err
	}

	var records []TermRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parse term index: %w", err)
	}

	rows, err := BuildPromptRows(records, stdVersion)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, EncodePromptCSV(rows), 0644); err != nil {
		return fmt.Errorf("write prompt CSV: %w", err)
	}

	logger.Info("Exported prompt CSV",
		slog.String("file", outPath),
		slog.Int("rows", len(rows)),
		slog.Int("terms", len(records)))
	return nil
}
