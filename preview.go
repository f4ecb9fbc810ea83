package sowdoc

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// previewTemplate wraps Goldmark's fragment output in a complete HTML5 document.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Document</title>
</head>
<body>
%s
</body>
</html>`

// htmlPreviewer abstracts the HTML preview rendering.
type htmlPreviewer interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// goldmarkPreviewer renders the same source text to HTML for debugging.
// The DOCX output comes from the restricted parser; the preview only
// needs to approximate it visually, so Goldmark's richer grammar is fine.
type goldmarkPreviewer struct {
	md goldmark.Markdown
}

// newGoldmarkPreviewer creates a previewer with pipe-table support.
func newGoldmarkPreviewer() *goldmarkPreviewer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table, // The restricted grammar's only block extension
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &goldmarkPreviewer{md: md}
}

// ToHTML converts content to a standalone HTML5 document. Supports
// context cancellation via goroutine + select pattern since Goldmark
// doesn't natively support context.
func (p *goldmarkPreviewer) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := p.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLPreview, err)}
			return
		}
		done <- result{html: fmt.Sprintf(previewTemplate, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
