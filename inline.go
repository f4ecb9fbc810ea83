package sowdoc

import "regexp"

// emphasisPattern matches one emphasis run. Alternation order matters:
// the longest marker is tried first so `***` is never consumed as `**`
// plus a dangling `*`, and matches never overlap. Bodies are non-greedy
// and `.` stops at newlines, so a run never crosses a line boundary.
var emphasisPattern = regexp.MustCompile(`\*\*\*(.*?)\*\*\*|\*\*(.*?)\*\*|\*(.*?)\*`)

// ParseInline tokenizes one line into styled spans covering the whole
// line with no gaps or overlaps. Emphasis is not nested: the body of a
// matched run becomes a single styled span with markers stripped.
// A lone unmatched marker is kept as literal text; a doubled marker
// with no closer collapses to an empty match. Zero-length spans are
// dropped either way.
func ParseInline(line string) []InlineSpan {
	var spans []InlineSpan
	last := 0
	for _, m := range emphasisPattern.FindAllStringSubmatchIndex(line, -1) {
		if m[0] > last {
			spans = appendSpan(spans, InlineSpan{Text: line[last:m[0]]})
		}
		switch {
		case m[2] >= 0: // ***bold italic***
			spans = appendSpan(spans, InlineSpan{Text: line[m[2]:m[3]], Bold: true, Italic: true})
		case m[4] >= 0: // **bold**
			spans = appendSpan(spans, InlineSpan{Text: line[m[4]:m[5]], Bold: true})
		default: // *italic*
			spans = appendSpan(spans, InlineSpan{Text: line[m[6]:m[7]], Italic: true})
		}
		last = m[1]
	}
	if last < len(line) {
		spans = appendSpan(spans, InlineSpan{Text: line[last:]})
	}
	return spans
}

// appendSpan appends s unless its text is empty after marker stripping.
func appendSpan(spans []InlineSpan, s InlineSpan) []InlineSpan {
	if s.Text == "" {
		return spans
	}
	return append(spans, s)
}
