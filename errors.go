package sowdoc

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrTemplateOpen  = errors.New("failed to open document template")
	ErrDOCXRender    = errors.New("DOCX rendering failed")
	ErrHTMLPreview   = errors.New("HTML preview rendering failed")

	// Chat request validation errors.
	ErrMissingWorkspace = errors.New("workspace slug cannot be empty")
	ErrMissingChatID    = errors.New("chat id cannot be empty")

	// Collaborator wiring errors (service misconfiguration, not input).
	ErrNoHistorySource = errors.New("no chat history source configured")
	ErrNoUploader      = errors.New("no uploader configured")

	// Chat history source errors.
	ErrUpstreamUnavailable = errors.New("chat history service unavailable")
	ErrNoExportableMessage = errors.New("no exportable assistant message in chat history")

	// File host errors.
	ErrHostUnavailable = errors.New("file hosting service unavailable")
	ErrUploadRejected  = errors.New("file hosting service rejected the upload")
)
