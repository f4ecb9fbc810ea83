package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	sowdoc "github.com/bashhh89/sow-api-service"
)

// docxContentType is sent with direct DOCX downloads.
const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// server holds the HTTP handlers and their dependencies.
type server struct {
	pool *sowdoc.ServicePool
	log  *zap.Logger
}

func newServer(pool *sowdoc.ServicePool, log *zap.Logger) *server {
	return &server{pool: pool, log: log}
}

// routes wires the endpoints behind the access log middleware.
func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/generate-from-chat", s.handleGenerateFromChat)
	mux.HandleFunc("/convert", s.handleConvert)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return s.withAccessLog(mux)
}

// handleGenerateFromChat runs the full chat-to-document pipeline and
// returns the download link.
func (s *server) handleGenerateFromChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req sowdoc.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	svc := s.pool.Acquire()
	defer s.pool.Release(svc)

	res, err := svc.GenerateFromChat(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// convertRequest is the payload for direct markdown conversion.
type convertRequest struct {
	Markdown string `json:"markdown"`
	Filename string `json:"filename"`
}

// handleConvert converts a markdown payload directly. The response is
// the DOCX file as an attachment, or the HTML preview when the request
// carries ?preview=html.
func (s *server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Filename == "" {
		req.Filename = sowdoc.DefaultFilename
	}
	preview := r.URL.Query().Get("preview") == "html"

	svc := s.pool.Acquire()
	defer s.pool.Release(svc)

	res, err := svc.Convert(r.Context(), sowdoc.Input{
		Markdown:    req.Markdown,
		Filename:    req.Filename,
		HTMLPreview: preview,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	if preview {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(res.HTML)
		return
	}

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+req.Filename+`"`)
	_, _ = w.Write(res.DOCX)
}

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeServiceError maps pipeline failures onto HTTP status codes:
// bad input 400, nothing to export 404, collaborator failures 502,
// anything else 500.
func (s *server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, sowdoc.ErrMissingWorkspace),
		errors.Is(err, sowdoc.ErrMissingChatID),
		errors.Is(err, sowdoc.ErrEmptyMarkdown):
		status = http.StatusBadRequest
	case errors.Is(err, sowdoc.ErrNoExportableMessage):
		status = http.StatusNotFound
	case errors.Is(err, sowdoc.ErrUpstreamUnavailable),
		errors.Is(err, sowdoc.ErrHostUnavailable),
		errors.Is(err, sowdoc.ErrUploadRejected):
		status = http.StatusBadGateway
	}

	s.log.Warn("request failed",
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)
	writeError(w, status, err.Error())
}

// errorEnvelope is the JSON error body.
type errorEnvelope struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorEnvelope{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusRecorder captures the response status for access logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withAccessLog tags every request with an ID and logs its outcome.
func (s *server) withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		s.log.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
