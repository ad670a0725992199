package linker_test

import (
	"strings"
	"testing"

	"github.com/cat-mip/cat-mip/linker"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []linker.Segment
	}{
		{
			name:  "plain prose",
			input: "just some text",
			want: []linker.Segment{
				{Kind: linker.SegmentProse, Text: "just some text"},
			},
		},
		{
			name:  "inline code",
			input: "call the `agent` tool",
			want: []linker.Segment{
				{Kind: linker.SegmentProse, Text: "call the "},
				{Kind: linker.SegmentOpaque, Text: "`agent`"},
				{Kind: linker.SegmentProse, Text: " tool"},
			},
		},
		{
			name:  "fenced block",
			input: "before\n```\ncode here\n```\nafter",
			want: []linker.Segment{
				{Kind: linker.SegmentProse, Text: "before\n"},
				{Kind: linker.SegmentOpaque, Text: "```\ncode here\n```"},
				{Kind: linker.SegmentProse, Text: "\nafter"},
			},
		},
		{
			name:  "unterminated fence is opaque to end",
			input: "before ```code runs on",
			want: []linker.Segment{
				{Kind: linker.SegmentProse, Text: "before "},
				{Kind: linker.SegmentOpaque, Text: "```code runs on"},
			},
		},
		{
			name:  "lone inline marker stays prose",
			input: "a stray ` marker",
			want: []linker.Segment{
				{Kind: linker.SegmentProse, Text: "a stray ` marker"},
			},
		},
		{
			name:  "adjacent opaque spans",
			input: "`a``b`",
			want: []linker.Segment{
				{Kind: linker.SegmentOpaque, Text: "`a`"},
				{Kind: linker.SegmentOpaque, Text: "`b`"},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := linker.Split(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Split(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segment %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Concatenating all segments must reproduce the input exactly, whatever the
// marker balance looks like.
func TestSplitRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"`inline`",
		"``",
		"```",
		"````",
		"``````",
		"a`b",
		"a`b`c`d",
		"text ```fence with `inline` inside``` tail",
		"```unterminated",
		"`x```y`",
		"mixed ` and ``` and more",
	}

	for _, input := range inputs {
		var b strings.Builder
		for _, seg := range linker.Split(input) {
			b.WriteString(seg.Text)
		}
		if b.String() != input {
			t.Errorf("round trip failed for %q: got %q", input, b.String())
		}
	}
}
