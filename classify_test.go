package sowdoc

import (
	"reflect"
	"testing"
)

func TestClassifyLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected classified
	}{
		{
			name:     "blank",
			input:    "",
			expected: classified{class: lineBlank},
		},
		{
			name:     "plain text",
			input:    "just some prose",
			expected: classified{class: linePlain, text: "just some prose"},
		},
		{
			name:     "heading level 1",
			input:    "# Title",
			expected: classified{class: lineHeading, level: 1, text: "Title"},
		},
		{
			name:     "heading level 2",
			input:    "## Section",
			expected: classified{class: lineHeading, level: 2, text: "Section"},
		},
		{
			name:     "heading level 3 not misread as level 1",
			input:    "### Deep",
			expected: classified{class: lineHeading, level: 3, text: "Deep"},
		},
		{
			name:     "hash without space is plain",
			input:    "#nospace",
			expected: classified{class: linePlain, text: "#nospace"},
		},
		{
			name:     "bullet item",
			input:    "* item text",
			expected: classified{class: lineListItem, text: "item text"},
		},
		{
			name:     "star without space is plain",
			input:    "*emphasis start",
			expected: classified{class: linePlain, text: "*emphasis start"},
		},
		{
			name:     "page break",
			input:    "---",
			expected: classified{class: linePageBreak},
		},
		{
			name:     "four dashes is plain",
			input:    "----",
			expected: classified{class: linePlain, text: "----"},
		},
		{
			name:     "table row",
			input:    "| A | B |",
			expected: classified{class: lineTableRow, cells: []string{"A", "B"}},
		},
		{
			name:     "table row with empty cell",
			input:    "| A |  | C |",
			expected: classified{class: lineTableRow, cells: []string{"A", "", "C"}},
		},
		{
			name:     "separator-looking row is still a table row",
			input:    "| --- | --- |",
			expected: classified{class: lineTableRow, cells: []string{"---", "---"}},
		},
		{
			name:     "pipe line wins over bullet prefix",
			input:    "|* not a bullet|",
			expected: classified{class: lineTableRow, cells: []string{"* not a bullet"}},
		},
		{
			name:     "leading pipe only is plain",
			input:    "| not closed",
			expected: classified{class: linePlain, text: "| not closed"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifyLine(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("classifyLine(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSplitCells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"two cells", "| A | B |", []string{"A", "B"}},
		{"untrimmed cells", "|  a  |b|", []string{"a", "b"}},
		{"inner empty preserved", "|a||c|", []string{"a", "", "c"}},
		{"single pipe", "|", []string{""}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := splitCells(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("splitCells(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
