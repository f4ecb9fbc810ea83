package sowdoc

import (
	"time"

	"go.uber.org/zap"
)

// Document is an ordered sequence of blocks. Block order always matches
// the source line order of each block's first contributing line; blocks
// are never reordered or merged after being appended.
type Document struct {
	Blocks []Block
}

// Block is one structural unit of a parsed document.
type Block interface {
	isBlock()
}

// Heading is a section heading, levels 1-3.
type Heading struct {
	Level   int
	Content []InlineSpan
}

// Paragraph is a run of prose with inline emphasis.
type Paragraph struct {
	Content []InlineSpan
}

// ListItem is a single bulleted item. The grammar allows one level of
// bulleting only, so items are flat.
type ListItem struct {
	Content []InlineSpan
}

// Table holds a header row plus zero or more data rows. Rows are
// forwarded exactly as collected: a row's cell count may disagree with
// the header count, and the renderer owns the reconciliation policy.
type Table struct {
	Headers []string
	Rows    [][]string
}

// PageBreak forces a page break in the rendered document.
type PageBreak struct{}

func (Heading) isBlock()   {}
func (Paragraph) isBlock() {}
func (ListItem) isBlock()  {}
func (Table) isBlock()     {}
func (PageBreak) isBlock() {}

// InlineSpan is a contiguous run of text sharing one emphasis styling.
// Spans within a block concatenate, in order, to the source line with
// emphasis markers stripped.
type InlineSpan struct {
	Text   string
	Bold   bool
	Italic bool
}

// DefaultFilename is used when a request does not name the document.
const DefaultFilename = "SOW-Document.docx"

// Input contains conversion parameters for Convert.
type Input struct {
	Markdown    string // Markdown content (required)
	Filename    string // Document filename (optional, informational)
	HTMLPreview bool   // Also render an HTML preview of the input
}

// Result holds the conversion output.
type Result struct {
	DOCX []byte // Rendered DOCX document
	HTML []byte // HTML preview, only set when Input.HTMLPreview is true
}

// ChatRequest identifies the conversation to export.
type ChatRequest struct {
	WorkspaceSlug string `json:"workspace_slug"`
	ChatID        string `json:"chat_id"`
	Filename      string `json:"filename"`
}

// ChatResult is the outcome of a chat-to-document run.
type ChatResult struct {
	Status      string `json:"status"`
	DownloadURL string `json:"download_url"`
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout  time.Duration
	template []byte
}

// defaultTimeout bounds one chat-to-document run when no timeout is specified.
const defaultTimeout = 60 * time.Second

// WithTimeout sets the overall timeout for GenerateFromChat.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("sowdoc: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithTemplate seeds rendered documents from a DOCX template so its
// styles (headings, bullet list, table grid) apply to the output.
func WithTemplate(data []byte) Option {
	return func(s *Service) {
		s.cfg.template = data
	}
}

// WithHistoryClient sets the chat history source used by GenerateFromChat.
func WithHistoryClient(h HistorySource) Option {
	return func(s *Service) {
		s.history = h
	}
}

// WithUploader sets the file host used by GenerateFromChat.
func WithUploader(u Uploader) Option {
	return func(s *Service) {
		s.uploader = u
	}
}

// WithLogger sets the structured logger. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}
