// Package registry provides the in-memory index of known terms used by the
// link engine and the export pipeline.
package registry

import (
	"fmt"
	"sort"
	"strings"
)

// FallbackSlug is assigned when a display name yields no slug characters.
const FallbackSlug = "unknown"

// TermEntry is one known term with its link metadata.
type TermEntry struct {
	// DisplayName is the canonical human-readable term (e.g., "AI Agent").
	DisplayName string

	// Slug is the URL-safe identifier derived from DisplayName.
	Slug string

	// Folder is the lifecycle bucket the term lives in
	// (accepted, draft, deprecated, rejected).
	Folder string

	// NormalizedKey is DisplayName lowercased, used for lookup and
	// duplicate detection.
	NormalizedKey string
}

// NewTermEntry builds a TermEntry with derived slug and normalized key.
func NewTermEntry(displayName, folder string) TermEntry {
	return TermEntry{
		DisplayName:   displayName,
		Slug:          Slugify(displayName),
		Folder:        folder,
		NormalizedKey: strings.ToLower(displayName),
	}
}

// Slugify converts a display name to a URL-safe slug: lowercase, runs of
// non-alphanumeric characters collapse to single hyphens, leading and
// trailing hyphens are trimmed. Input that maps to nothing yields
// FallbackSlug.
func Slugify(term string) string {
	var b strings.Builder
	b.Grow(len(term))

	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(term) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return FallbackSlug
	}
	return slug
}

// WarnFunc receives non-fatal conditions observed while building a registry.
// A nil WarnFunc discards warnings.
type WarnFunc func(msg string)

// Registry is an immutable index of term entries keyed by normalized name.
// Lookup returns the first entry registered under a key; later duplicates
// remain registered under disambiguated slugs so their pages stay linkable.
type Registry struct {
	byKey   map[string]*TermEntry
	entries []TermEntry
}

// Build constructs a Registry from entries. When two entries share a
// normalized key the first wins the key, the later one gets a numeric slug
// suffix (-2, -3, ...), and warn is invoked. No entry is ever dropped.
func Build(entries []TermEntry, warn WarnFunc) *Registry {
	r := &Registry{
		byKey:   make(map[string]*TermEntry, len(entries)),
		entries: make([]TermEntry, 0, len(entries)),
	}

	seen := make(map[string]int, len(entries))
	for _, e := range entries {
		n := seen[e.NormalizedKey] + 1
		seen[e.NormalizedKey] = n
		if n > 1 {
			e.Slug = fmt.Sprintf("%s-%d", e.Slug, n)
			if warn != nil {
				warn(fmt.Sprintf("duplicate term (ignoring case): %q, using slug %q", e.DisplayName, e.Slug))
			}
		}

		r.entries = append(r.entries, e)
		if n == 1 {
			r.byKey[e.NormalizedKey] = &r.entries[len(r.entries)-1]
		}
	}

	return r
}

// Lookup returns the entry first registered under the normalized key.
func (r *Registry) Lookup(normalizedKey string) (TermEntry, bool) {
	e, ok := r.byKey[normalizedKey]
	if !ok {
		return TermEntry{}, false
	}
	return *e, true
}

// All returns every entry sorted by normalized key (then slug, so suffixed
// duplicates order deterministically). Iteration order is independent of
// insertion order.
func (r *Registry) All() []TermEntry {
	out := make([]TermEntry, len(r.entries))
	copy(out, r.entries)
	sort.Slice(out, func(i, j int) bool {
		if out[i].NormalizedKey != out[j].NormalizedKey {
			return out[i].NormalizedKey < out[j].NormalizedKey
		}
		return out[i].Slug < out[j].Slug
	})
	return out
}

// Entries returns every entry in registration order. Callers that built the
// registry from an ordered document list can align documents with their
// final (possibly disambiguated) slugs by index.
func (r *Registry) Entries() []TermEntry {
	out := make([]TermEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len reports the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
