// Package sowdoc converts restricted Markdown produced by an assistant
// chat into a styled DOCX document.
//
// # Quick Start
//
// Parse text into a document model, or run the full pipeline through a
// Service:
//
//	doc := sowdoc.Parse("# Statement of Work\n\nScope with **bold** terms.")
//
//	svc := sowdoc.New()
//	result, err := svc.Convert(ctx, sowdoc.Input{
//	    Markdown: content,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("sow.docx", result.DOCX, 0644)
//
// # Pipeline
//
//  1. Parse: restricted Markdown to a Document (headings, paragraphs
//     with inline emphasis, bullet items, tables, page breaks)
//  2. Render: Document to DOCX via gooxml, optionally seeded from a
//     template so its styles apply
//  3. Optional HTML preview via Goldmark for debugging
//
// The parser is deliberately forgiving: unterminated emphasis markers
// become literal text, tables work with or without a separator row, and
// ragged table rows are passed through for the renderer to reconcile.
// Parsing never fails; an empty input yields an empty Document.
//
// # Chat-to-Document Flow
//
// GenerateFromChat fetches the most recent exportable assistant message
// from an AnythingLLM workspace, converts it, uploads the DOCX to a file
// host, and returns the download link:
//
//	svc := sowdoc.New(
//	    sowdoc.WithHistoryClient(sowdoc.NewAnythingLLMClient(baseURL, apiKey, 15*time.Second)),
//	    sowdoc.WithUploader(sowdoc.NewGofileUploader(30*time.Second)),
//	)
//	res, err := svc.GenerateFromChat(ctx, sowdoc.ChatRequest{
//	    WorkspaceSlug: "acme",
//	    ChatID:        "42",
//	})
//
// # Parallel Processing
//
// For servers, use ServicePool to bound concurrent document builds:
//
//	pool := sowdoc.NewServicePool(4)
//	defer pool.Close()
//
//	svc := pool.Acquire()
//	defer pool.Release(svc)
package sowdoc
