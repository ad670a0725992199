package linker

import "strings"

const (
	inlineMarker = "`"
	fenceMarker  = "```"
)

// SegmentKind tags a text segment as linkable prose or opaque code.
type SegmentKind string

// SegmentProse and SegmentOpaque enumerate the segment kinds.
const (
	SegmentProse  SegmentKind = "prose"
	SegmentOpaque SegmentKind = "opaque"
)

// Segment is a contiguous span of the original text. Opaque segments carry
// their delimiters so that concatenating all segments reproduces the input
// byte for byte.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Split divides text into alternating prose and opaque segments.
//
// The scan is a left-to-right state machine over PROSE, INLINE_CODE, and
// FENCED_CODE. A fence marker (```) opens an opaque span that runs to the
// matching closing fence, or to end of input when unterminated. An inline
// marker (`) outside a fence opens an opaque span to the next inline marker;
// a lone inline marker with no closing partner stays literal prose. Neither
// fallback is an error: Split is total over arbitrary input.
func Split(text string) []Segment {
	var segments []Segment

	prose := func(s string) {
		if s != "" {
			segments = append(segments, Segment{Kind: SegmentProse, Text: s})
		}
	}
	opaque := func(s string) {
		segments = append(segments, Segment{Kind: SegmentOpaque, Text: s})
	}

	pos := 0
	for pos < len(text) {
		next := strings.Index(text[pos:], inlineMarker)
		if next == -1 {
			prose(text[pos:])
			break
		}
		mark := pos + next

		if strings.HasPrefix(text[mark:], fenceMarker) {
			prose(text[pos:mark])
			closing := strings.Index(text[mark+len(fenceMarker):], fenceMarker)
			if closing == -1 {
				// Unterminated fence: opaque to end of input.
				opaque(text[mark:])
				break
			}
			end := mark + len(fenceMarker) + closing + len(fenceMarker)
			opaque(text[mark:end])
			pos = end
			continue
		}

		closing := strings.Index(text[mark+len(inlineMarker):], inlineMarker)
		if closing == -1 {
			// Lone inline marker: literal prose, not opaque.
			prose(text[pos:])
			break
		}
		prose(text[pos:mark])
		end := mark + len(inlineMarker) + closing + len(inlineMarker)
		opaque(text[mark:end])
		pos = end
	}

	return segments
}
