// Package linker implements the term auto-linking engine: it finds mentions
// of known registry terms in free-form prose and rewrites them as Markdown
// cross-reference links, leaving inline and fenced code untouched.
package linker

import (
	"sort"
	"strings"

	"github.com/cat-mip/cat-mip/registry"
)

// Pattern is a match candidate derived from one registry entry.
type Pattern struct {
	// MatchText is the entry's display name, matched case-insensitively
	// on whole-word boundaries.
	MatchText string

	// Priority is len(MatchText). Longer display names are tried first so
	// "AI Agent" wins over "Agent" inside the same text.
	Priority int

	// TargetSlug and TargetFolder identify the link target.
	TargetSlug   string
	TargetFolder string
}

// RelPath returns the link target relative to a page in currentFolder:
// "{slug}.md" within the same folder, "../{folder}/{slug}.md" across folders.
func (p Pattern) RelPath(currentFolder string) string {
	if p.TargetFolder == currentFolder {
		return p.TargetSlug + ".md"
	}
	return "../" + p.TargetFolder + "/" + p.TargetSlug + ".md"
}

// Compile derives the pattern list for one rendering context. The entry
// whose slug equals excludeSlug is omitted so a term page never links to
// itself. Patterns are ordered by priority descending; ties break on
// normalized key ascending for deterministic output.
func Compile(reg *registry.Registry, excludeSlug string) []Pattern {
	if reg == nil {
		return nil
	}

	entries := reg.All() // sorted by normalized key
	patterns := make([]Pattern, 0, len(entries))
	for _, e := range entries {
		if e.Slug == excludeSlug {
			continue
		}
		// An entry with no display name has nothing to match; a zero-length
		// pattern would match everywhere without consuming input.
		if e.DisplayName == "" {
			continue
		}
		patterns = append(patterns, Pattern{
			MatchText:    e.DisplayName,
			Priority:     len(e.DisplayName),
			TargetSlug:   e.Slug,
			TargetFolder: e.Folder,
		})
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Priority > patterns[j].Priority
	})

	return patterns
}

// matchAt reports whether the pattern matches text starting exactly at pos,
// returning the end offset of the match. The comparison is case-insensitive;
// both edges of the match must sit on word boundaries.
func (p Pattern) matchAt(text string, pos int) (int, bool) {
	if p.MatchText == "" {
		return 0, false
	}
	end := pos + len(p.MatchText)
	if end > len(text) {
		return 0, false
	}
	if !strings.EqualFold(text[pos:end], p.MatchText) {
		return 0, false
	}
	if pos > 0 && isWordByte(text[pos-1]) {
		return 0, false
	}
	if end < len(text) && isWordByte(text[end]) {
		return 0, false
	}
	return end, true
}

// isWordByte mirrors regexp \w over ASCII, which is what the term corpus
// needs for boundary checks.
func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
