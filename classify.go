package sowdoc

import "strings"

// lineClass categorizes one trimmed source line.
type lineClass int

const (
	lineBlank lineClass = iota
	linePlain
	lineTableRow
	linePageBreak
	lineHeading
	lineListItem
)

// classified is the classification tag plus the residual payload:
// heading text with its prefix stripped, bullet text with its marker
// stripped, or table cells split and trimmed.
type classified struct {
	class lineClass
	level int      // heading level 1-3, zero otherwise
	text  string   // payload for heading, list item, and plain text
	cells []string // payload for table rows
}

// classifyLine categorizes a single already-trimmed line. The order of
// the checks is load-bearing: table detection runs before everything
// else, page break before headings, and heading prefixes are tested
// longest first so "### " is never misread as "# ".
func classifyLine(line string) classified {
	switch {
	case strings.HasPrefix(line, "|") && strings.HasSuffix(line, "|"):
		return classified{class: lineTableRow, cells: splitCells(line)}
	case line == "---":
		return classified{class: linePageBreak}
	case strings.HasPrefix(line, "### "):
		return classified{class: lineHeading, level: 3, text: line[4:]}
	case strings.HasPrefix(line, "## "):
		return classified{class: lineHeading, level: 2, text: line[3:]}
	case strings.HasPrefix(line, "# "):
		return classified{class: lineHeading, level: 1, text: line[2:]}
	case strings.HasPrefix(line, "* "):
		return classified{class: lineListItem, text: line[2:]}
	case line == "":
		return classified{class: lineBlank}
	default:
		return classified{class: linePlain, text: line}
	}
}

// splitCells splits a pipe-delimited row into trimmed cells. The
// boundary pipes are stripped first so they do not produce empty
// leading and trailing cells.
func splitCells(line string) []string {
	parts := strings.Split(strings.Trim(line, "|"), "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
