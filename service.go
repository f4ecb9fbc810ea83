package sowdoc

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Compile-time interface implementation checks.
var (
	_ htmlPreviewer = (*goldmarkPreviewer)(nil)
	_ HistorySource = (*AnythingLLMClient)(nil)
	_ Uploader      = (*GofileUploader)(nil)
)

// Service orchestrates the chat-to-document pipeline: fetch text, parse
// it into a Document, render DOCX, and upload the result.
type Service struct {
	cfg       serviceConfig
	renderer  *docxRenderer
	previewer htmlPreviewer
	history   HistorySource
	uploader  Uploader
	log       *zap.Logger
}

// New creates a Service with default configuration. Use options to
// customize behavior (e.g. WithTimeout, WithTemplate, WithLogger).
// Without WithHistoryClient and WithUploader only Convert is usable;
// GenerateFromChat reports the missing collaborator.
func New(opts ...Option) *Service {
	s := &Service{
		cfg:       serviceConfig{timeout: defaultTimeout},
		previewer: newGoldmarkPreviewer(),
		log:       zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.renderer = &docxRenderer{template: s.cfg.template}
	return s
}

// Convert parses the input markdown and renders it to DOCX. When
// Input.HTMLPreview is set, an HTML rendition of the same text is
// included in the result. Recovers from internal panics to prevent
// crashes from propagating to callers.
func (s *Service) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	doc := Parse(input.Markdown)

	res := &Result{}
	if input.HTMLPreview {
		html, err := s.previewer.ToHTML(ctx, input.Markdown)
		if err != nil {
			return nil, fmt.Errorf("rendering preview: %w", err)
		}
		res.HTML = []byte(html)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	docx, err := s.renderer.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("rendering DOCX: %w", err)
	}
	res.DOCX = docx

	s.log.Debug("converted markdown",
		zap.String("filename", input.Filename),
		zap.Int("blocks", len(doc.Blocks)),
		zap.Int("docx_bytes", len(docx)),
	)
	return res, nil
}

// GenerateFromChat runs the full pipeline for one conversation: fetch
// the latest exportable assistant message, convert it, upload the DOCX,
// and return the download link. The configured timeout bounds the whole
// run.
func (s *Service) GenerateFromChat(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	if err := s.validateChatRequest(req); err != nil {
		return nil, err
	}

	filename := req.Filename
	if filename == "" {
		filename = DefaultFilename
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	text, err := s.history.LatestAssistantText(ctx, req.WorkspaceSlug, req.ChatID)
	if err != nil {
		return nil, fmt.Errorf("fetching chat history: %w", err)
	}

	result, err := s.Convert(ctx, Input{Markdown: text, Filename: filename})
	if err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(ctx, filename, result.DOCX)
	if err != nil {
		return nil, fmt.Errorf("uploading document: %w", err)
	}

	s.log.Info("generated document from chat",
		zap.String("workspace", req.WorkspaceSlug),
		zap.String("chat_id", req.ChatID),
		zap.String("filename", filename),
	)
	return &ChatResult{Status: "success", DownloadURL: url}, nil
}

// validateChatRequest checks request fields and collaborator wiring.
func (s *Service) validateChatRequest(req ChatRequest) error {
	if req.WorkspaceSlug == "" {
		return ErrMissingWorkspace
	}
	if req.ChatID == "" {
		return ErrMissingChatID
	}
	if s.history == nil {
		return ErrNoHistorySource
	}
	if s.uploader == nil {
		return ErrNoUploader
	}
	return nil
}
