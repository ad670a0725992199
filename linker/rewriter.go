package linker

import "strings"

// Rewrite scans one prose segment and returns it with every term mention
// replaced by a Markdown link.
//
// The scan is greedy and non-backtracking: at each cursor position the
// patterns are tried in priority order and the first whole-word match wins;
// the cursor then jumps past the match, so a shorter term inside an
// already-consumed span is never linked again. Matched text is reproduced
// verbatim inside the link wrapper, preserving its original casing.
func Rewrite(prose string, patterns []Pattern, currentFolder string) string {
	if prose == "" || len(patterns) == 0 {
		return prose
	}

	var b strings.Builder
	b.Grow(len(prose))

	pos := 0
	emitted := 0 // start of pending literal text
	for pos < len(prose) {
		end := -1
		var matched Pattern
		for _, p := range patterns {
			if e, ok := p.matchAt(prose, pos); ok {
				end, matched = e, p
				break
			}
		}
		if end == -1 {
			pos++
			continue
		}

		b.WriteString(prose[emitted:pos])
		b.WriteString("[")
		b.WriteString(prose[pos:end])
		b.WriteString("](")
		b.WriteString(matched.RelPath(currentFolder))
		b.WriteString(")")
		pos = end
		emitted = end
	}
	b.WriteString(prose[emitted:])

	return b.String()
}
