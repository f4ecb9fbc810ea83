package sowdoc

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []InlineSpan
	}{
		{
			name:     "empty line",
			input:    "",
			expected: nil,
		},
		{
			name:     "plain text",
			input:    "no emphasis here",
			expected: []InlineSpan{{Text: "no emphasis here"}},
		},
		{
			name:  "bold only",
			input: "**bold**",
			expected: []InlineSpan{
				{Text: "bold", Bold: true},
			},
		},
		{
			name:  "italic only",
			input: "*italic*",
			expected: []InlineSpan{
				{Text: "italic", Italic: true},
			},
		},
		{
			name:  "bold italic only",
			input: "***both***",
			expected: []InlineSpan{
				{Text: "both", Bold: true, Italic: true},
			},
		},
		{
			name:  "mixed styles in order",
			input: "**bold** and *italic* and ***both***",
			expected: []InlineSpan{
				{Text: "bold", Bold: true},
				{Text: " and "},
				{Text: "italic", Italic: true},
				{Text: " and "},
				{Text: "both", Bold: true, Italic: true},
			},
		},
		{
			name:  "emphasis surrounded by text",
			input: "pre **mid** post",
			expected: []InlineSpan{
				{Text: "pre "},
				{Text: "mid", Bold: true},
				{Text: " post"},
			},
		},
		{
			name:     "unterminated bold collapses to empty emphasis",
			input:    "**unclosed",
			expected: []InlineSpan{{Text: "unclosed"}},
		},
		{
			name:     "trailing lone star is literal",
			input:    "price*",
			expected: []InlineSpan{{Text: "price*"}},
		},
		{
			name:     "lone marker next to punctuation",
			input:    "weird*, but fine",
			expected: []InlineSpan{{Text: "weird*, but fine"}},
		},
		{
			name:  "no nesting inside bold",
			input: "**bold *not nested* body**",
			expected: []InlineSpan{
				{Text: "bold *not nested* body", Bold: true},
			},
		},
		{
			name:     "empty bold dropped",
			input:    "a **** b",
			expected: []InlineSpan{{Text: "a "}, {Text: " b"}},
		},
		{
			name:  "unicode body",
			input: "**日本語** text",
			expected: []InlineSpan{
				{Text: "日本語", Bold: true},
				{Text: " text"},
			},
		},
		{
			name:  "two bold runs do not overlap",
			input: "**a** x **b**",
			expected: []InlineSpan{
				{Text: "a", Bold: true},
				{Text: " x "},
				{Text: "b", Bold: true},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseInline(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseInline(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

// Spans must concatenate back to the input with markers stripped.
func TestParseInline_SpansReconstructLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		stripped string
	}{
		{"plain", "hello world", "hello world"},
		{"mixed", "**a** and *b* end", "a and b end"},
		{"bold italic", "x ***y*** z", "x y z"},
		{"unterminated", "broken **here", "broken here"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var b strings.Builder
			for _, s := range ParseInline(tt.input) {
				b.WriteString(s.Text)
			}
			if b.String() != tt.stripped {
				t.Errorf("concatenated spans = %q, want %q", b.String(), tt.stripped)
			}
		})
	}
}
