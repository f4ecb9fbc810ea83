package sowdoc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"
)

// Uploader persists a rendered document on a public host and returns a
// link where it can be downloaded.
type Uploader interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

// docxContentType is the MIME type for OOXML word processing documents.
const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// defaultUploadTimeout bounds one upload round trip.
const defaultUploadTimeout = 30 * time.Second

// GofileUploader uploads files to gofile.io: it asks the API for an
// upload server, posts the file there as multipart form data, and
// returns the download page URL.
type GofileUploader struct {
	apiBase        string // e.g. "https://api.gofile.io"
	uploadTemplate string // fmt template receiving the server name
	client         *http.Client
}

// NewGofileUploader creates an uploader against the public gofile API.
// A non-positive timeout falls back to 30 seconds.
func NewGofileUploader(timeout time.Duration) *GofileUploader {
	if timeout <= 0 {
		timeout = defaultUploadTimeout
	}
	return &GofileUploader{
		apiBase:        "https://api.gofile.io",
		uploadTemplate: "https://%s.gofile.io/uploadFile",
		client:         &http.Client{Timeout: timeout},
	}
}

// serverResponse mirrors the getServer payload.
type serverResponse struct {
	Status string `json:"status"`
	Data   struct {
		Server string `json:"server"`
	} `json:"data"`
}

// uploadResponse mirrors the uploadFile payload.
type uploadResponse struct {
	Status string `json:"status"`
	Data   struct {
		DownloadPage string `json:"downloadPage"`
	} `json:"data"`
}

// Upload posts data to the host and returns the download page URL.
// Transport failures map to ErrHostUnavailable; a response with a
// non-ok status maps to ErrUploadRejected.
func (g *GofileUploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	server, err := g.pickServer(ctx)
	if err != nil {
		return "", err
	}

	body, contentType, err := buildUploadBody(filename, data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHostUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf(g.uploadTemplate, server), body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHostUnavailable, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHostUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	var upload uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&upload); err != nil {
		return "", fmt.Errorf("%w: decoding upload response: %v", ErrHostUnavailable, err)
	}
	if upload.Status != "ok" {
		return "", fmt.Errorf("%w: status %q", ErrUploadRejected, upload.Status)
	}
	return upload.Data.DownloadPage, nil
}

// pickServer asks the API which server should receive the upload.
func (g *GofileUploader) pickServer(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.apiBase+"/getServer", nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHostUnavailable, err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHostUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	var sr serverResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", fmt.Errorf("%w: decoding server response: %v", ErrHostUnavailable, err)
	}
	if sr.Data.Server == "" {
		return "", fmt.Errorf("%w: no upload server assigned", ErrHostUnavailable)
	}
	return sr.Data.Server, nil
}

// buildUploadBody assembles the multipart form with the DOCX content type.
func buildUploadBody(filename string, data []byte) (*bytes.Buffer, string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	hdr.Set("Content-Type", docxContentType)

	part, err := mw.CreatePart(hdr)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &body, mw.FormDataContentType(), nil
}
