package linker

import (
	"strings"

	"github.com/cat-mip/cat-mip/registry"
)

// Engine is the façade composing pattern compilation, code-span splitting,
// and prose rewriting. It holds only the read-only registry, so one Engine
// may serve any number of pages, including concurrently.
type Engine struct {
	registry *registry.Registry
}

// New creates an Engine over a built registry. A nil registry yields an
// engine whose Linkify is the identity function.
func New(reg *registry.Registry) *Engine {
	return &Engine{registry: reg}
}

// Linkify rewrites rawText for the page identified by currentSlug and
// currentFolder. Empty input or an empty registry returns rawText unchanged.
func (e *Engine) Linkify(rawText, currentSlug, currentFolder string) string {
	return e.Page(currentSlug, currentFolder).Linkify(rawText)
}

// Page derives the rendering context for one page, with patterns compiled
// once (excluding the page's own term) and reused for every prose string on
// that page. PageContext values are independent; pages may render in
// parallel as long as each worker uses its own.
func (e *Engine) Page(currentSlug, currentFolder string) *PageContext {
	var patterns []Pattern
	if e.registry != nil && e.registry.Len() > 0 {
		patterns = Compile(e.registry, currentSlug)
	}
	return &PageContext{
		patterns:      patterns,
		currentFolder: currentFolder,
	}
}

// PageContext is the per-page linkifier.
type PageContext struct {
	patterns      []Pattern
	currentFolder string
}

// Linkify rewrites one prose string: code spans pass through untouched,
// prose segments are rewritten, and segments are reassembled in order.
func (c *PageContext) Linkify(rawText string) string {
	if rawText == "" || len(c.patterns) == 0 {
		return rawText
	}

	var b strings.Builder
	b.Grow(len(rawText))
	for _, seg := range Split(rawText) {
		if seg.Kind == SegmentProse {
			b.WriteString(Rewrite(seg.Text, c.patterns, c.currentFolder))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}
