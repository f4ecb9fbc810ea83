package sowdoc

import (
	"bytes"
	"fmt"

	"baliance.com/gooxml/color"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"
)

// Style IDs resolved against the template (standard Word built-ins).
const (
	styleHeading1   = "Heading1"
	styleHeading2   = "Heading2"
	styleHeading3   = "Heading3"
	styleListBullet = "ListBullet"
)

// docxRenderer serializes a Document into OOXML. When template bytes
// are present the output document opens from the template so its styles
// carry over; otherwise a blank document is used.
type docxRenderer struct {
	template []byte
}

// Render serializes doc and returns the DOCX file bytes.
func (r *docxRenderer) Render(doc Document) ([]byte, error) {
	target, err := r.newDocument()
	if err != nil {
		return nil, err
	}

	for _, b := range doc.Blocks {
		switch blk := b.(type) {
		case Heading:
			p := target.AddParagraph()
			p.SetStyle(headingStyle(blk.Level))
			addRuns(p, blk.Content)
		case Paragraph:
			addRuns(target.AddParagraph(), blk.Content)
		case ListItem:
			p := target.AddParagraph()
			p.SetStyle(styleListBullet)
			addRuns(p, blk.Content)
		case Table:
			addTable(target, blk)
		case PageBreak:
			// gooxml v1.0.1 predates Run.AddPageBreak; build the same
			// <w:br w:type="page"/> through the schema types directly.
			run := target.AddParagraph().AddRun()
			ic := wml.NewEG_RunInnerContent()
			ic.Br = wml.NewCT_Br()
			ic.Br.TypeAttr = wml.ST_BrTypePage
			run.X().EG_RunInnerContent = append(run.X().EG_RunInnerContent, ic)
		}
	}

	var buf bytes.Buffer
	if err := target.Save(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDOCXRender, err)
	}
	return buf.Bytes(), nil
}

// newDocument opens the configured template or starts a blank document.
func (r *docxRenderer) newDocument() (*document.Document, error) {
	if len(r.template) == 0 {
		return document.New(), nil
	}
	tpl, err := document.Read(bytes.NewReader(r.template), int64(len(r.template)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateOpen, err)
	}
	return tpl, nil
}

// headingStyle maps a heading level to its template style ID.
func headingStyle(level int) string {
	switch level {
	case 2:
		return styleHeading2
	case 3:
		return styleHeading3
	default:
		return styleHeading1
	}
}

// addRuns appends one run per inline span, carrying its emphasis.
func addRuns(p document.Paragraph, spans []InlineSpan) {
	for _, s := range spans {
		run := p.AddRun()
		run.AddText(s.Text)
		if s.Bold {
			run.Properties().SetBold(true)
		}
		if s.Italic {
			run.Properties().SetItalic(true)
		}
	}
}

// addTable renders a full-width bordered table with a bold header row.
// Ragged data rows are reconciled here, not in the parser: cells beyond
// the header count are dropped and missing cells are left empty.
func addTable(target *document.Document, t Table) {
	tbl := target.AddTable()
	tbl.Properties().SetWidthPercent(100)
	tbl.Properties().Borders().SetAll(wml.ST_BorderSingle, color.Auto, 1*measurement.Point)

	hdr := tbl.AddRow()
	for _, h := range t.Headers {
		run := hdr.AddCell().AddParagraph().AddRun()
		run.AddText(h)
		run.Properties().SetBold(true)
	}

	for _, row := range t.Rows {
		cells := tbl.AddRow()
		for i := range t.Headers {
			cell := cells.AddCell()
			if i < len(row) {
				cell.AddParagraph().AddRun().AddText(row[i])
			} else {
				cell.AddParagraph()
			}
		}
	}
}
