package sowdoc

import (
	"regexp"
	"strings"
)

// crlfOrCR normalizes Windows and old-Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Parse converts restricted Markdown into a Document. It is a pure,
// single-pass transformation: lines are classified left to right, table
// runs are accumulated and flushed as one block, and every prose line
// goes through the inline emphasis tokenizer. Parsing never fails;
// malformed input degrades to plain text and an empty input yields a
// Document with zero blocks.
func Parse(text string) Document {
	var doc Document
	if text == "" {
		return doc
	}

	// Transient accumulator for the current table run. nil means the
	// scan is not inside a table.
	var tableRows [][]string

	// flush finalizes the in-progress table run, if any. Flushing an
	// empty accumulator is a no-op so a zero-row table block can never
	// be emitted.
	flush := func() {
		if len(tableRows) == 0 {
			return
		}
		doc.Blocks = append(doc.Blocks, buildTable(tableRows))
		tableRows = nil
	}

	for _, raw := range strings.Split(normalizeLineEndings(text), "\n") {
		c := classifyLine(strings.TrimSpace(raw))

		if c.class == lineTableRow {
			tableRows = append(tableRows, c.cells)
			continue
		}

		// Any non-table line ends the current table run. The line that
		// broke the run is still a real line and is processed below in
		// the same pass.
		flush()

		switch c.class {
		case lineBlank:
			// Blank lines produce no block.
		case linePageBreak:
			doc.Blocks = append(doc.Blocks, PageBreak{})
		case lineHeading:
			doc.Blocks = append(doc.Blocks, Heading{Level: c.level, Content: ParseInline(c.text)})
		case lineListItem:
			doc.Blocks = append(doc.Blocks, ListItem{Content: ParseInline(c.text)})
		default:
			doc.Blocks = append(doc.Blocks, Paragraph{Content: ParseInline(c.text)})
		}
	}

	// End of input while inside a table run flushes the accumulator.
	flush()
	return doc
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
