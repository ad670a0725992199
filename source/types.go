// Package source loads and normalizes term documents from the standards
// tree. Documents live at standards/<folder>/*.yaml where <folder> is one of
// the lifecycle buckets; YAML files directly under standards/ (templates and
// similar) are never term sources.
package source

import "strings"

// Folders are the lifecycle buckets that contain term documents, in
// presentation order.
var Folders = []string{"accepted", "draft", "deprecated", "rejected"}

// KnownFolder reports whether name is one of the lifecycle buckets.
func KnownFolder(name string) bool {
	for _, f := range Folders {
		if f == name {
			return true
		}
	}
	return false
}

// Defaults applied by Normalize so downstream consumers never see empty
// required fields.
const (
	DefaultTerm       = "UNNAMED TERM"
	DefaultDefinition = "No definition provided."
	DefaultVersion    = "1.0"
	DefaultAuthor     = "Anonymous"
	DefaultDateAdded  = "2025-09-19"
)

// Author identifies a term contributor.
type Author struct {
	Name   string `yaml:"name"`
	Github string `yaml:"github,omitempty"`
	Org    string `yaml:"org,omitempty"`
}

// HistoryEntry records one lifecycle event of a term.
type HistoryEntry struct {
	Date   string `yaml:"date"`
	Author string `yaml:"author"`
	Reason string `yaml:"reason"`
}

// AgentExecution describes how an agent should act on a term.
type AgentExecution struct {
	Interpretation string   `yaml:"interpretation,omitempty" json:"interpretation,omitempty"`
	Actions        []string `yaml:"actions,omitempty" json:"actions"`
}

// TermDocument is one term definition as authored in YAML.
type TermDocument struct {
	ID             string          `yaml:"id"`
	Term           string          `yaml:"term"`
	Version        string          `yaml:"version"`
	Authors        []Author        `yaml:"authors,omitempty"`
	Discussion     string          `yaml:"discussion,omitempty"`
	Categories     []string        `yaml:"categories,omitempty"`
	Tags           []string        `yaml:"tags,omitempty"`
	Definition     string          `yaml:"definition"`
	History        []HistoryEntry  `yaml:"history,omitempty"`
	Synonyms       []string        `yaml:"synonyms,omitempty"`
	Relationships  []string        `yaml:"relationships,omitempty"`
	PromptExamples []string        `yaml:"prompt_examples,omitempty"`
	Examples       []string        `yaml:"examples,omitempty"`
	AgentExecution *AgentExecution `yaml:"agent_execution,omitempty"`
	SearchBoost    float64         `yaml:"search_boost,omitempty"`

	// Folder is the lifecycle bucket the document was loaded from.
	Folder string `yaml:"-"`

	// Stem is the source file name without its extension, used to build
	// source URLs.
	Stem string `yaml:"-"`
}

// Normalize fills required fields with documented defaults and strips blank
// values from list fields, so downstream exporters never need defensive
// checks. It returns the document for chaining.
func (d *TermDocument) Normalize() *TermDocument {
	d.Term = strings.TrimSpace(d.Term)
	if d.Term == "" {
		d.Term = DefaultTerm
	}
	d.Definition = strings.TrimSpace(d.Definition)
	if d.Definition == "" {
		d.Definition = DefaultDefinition
	}
	d.Version = strings.TrimSpace(d.Version)
	if d.Version == "" {
		d.Version = DefaultVersion
	}

	// An absent agent_execution stays absent: the site renderer
	// distinguishes "no execution defined" from "defined but empty".
	if d.AgentExecution != nil {
		actions := make([]string, 0, len(d.AgentExecution.Actions))
		for _, a := range d.AgentExecution.Actions {
			if s := strings.TrimSpace(a); s != "" {
				actions = append(actions, s)
			}
		}
		d.AgentExecution.Actions = actions
	}

	if len(d.Authors) > 0 {
		if name := strings.TrimSpace(d.Authors[0].Name); name == "" {
			d.Authors[0].Name = DefaultAuthor
		} else {
			d.Authors[0].Name = name
		}
	}
	if len(d.History) > 0 {
		if date := strings.TrimSpace(d.History[0].Date); date == "" {
			d.History[0].Date = DefaultDateAdded
		} else {
			d.History[0].Date = date
		}
	}
	if len(d.Categories) > 0 {
		if cat := strings.TrimSpace(d.Categories[0]); cat == "" {
			d.Categories = nil
		} else {
			d.Categories = []string{cat}
		}
	}

	return d
}

// PrimaryAuthor returns the first author name, or the default contributor.
func (d *TermDocument) PrimaryAuthor() string {
	if len(d.Authors) > 0 && d.Authors[0].Name != "" {
		return d.Authors[0].Name
	}
	return DefaultAuthor
}

// DateAdded returns the date of the first history entry, or the default.
func (d *TermDocument) DateAdded() string {
	if len(d.History) > 0 && d.History[0].Date != "" {
		return d.History[0].Date
	}
	return DefaultDateAdded
}

// TermType returns the first category, or empty.
func (d *TermDocument) TermType() string {
	if len(d.Categories) > 0 {
		return d.Categories[0]
	}
	return ""
}
