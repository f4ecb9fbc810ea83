package sowdoc

import "strings"

// buildTable assembles one Table block from the raw cell rows collected
// during a table run. Row 0 is always the header row. When at least two
// rows were collected and row 1's first cell contains "---", row 1 is
// the header divider and is discarded; otherwise every row after row 0
// is data. A single collected row yields a header-only table.
//
// Cell counts are not validated or padded: ragged rows are forwarded
// unchanged and the renderer reconciles them.
func buildTable(rows [][]string) Table {
	t := Table{Headers: rows[0]}
	data := rows[1:]
	if len(rows) > 1 && isSeparatorRow(rows[1]) {
		data = rows[2:]
	}
	if len(data) > 0 {
		t.Rows = data
	}
	return t
}

// isSeparatorRow reports whether a row is a header divider, signaled by
// dashes in its first cell (e.g. "| --- | --- |").
func isSeparatorRow(row []string) bool {
	return len(row) > 0 && strings.Contains(row[0], "---")
}
