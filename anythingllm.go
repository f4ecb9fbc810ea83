package sowdoc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HistorySource supplies the raw text to convert. Its failure modes are
// surfaced as distinct errors before the parser is ever invoked: the
// parser is never responsible for explaining why text was unavailable.
type HistorySource interface {
	LatestAssistantText(ctx context.Context, workspaceSlug, chatID string) (string, error)
}

// skipMarker identifies assistant apologies that are not real documents
// and must not be exported.
const skipMarker = "unable to directly export"

// defaultFetchTimeout bounds one history fetch.
const defaultFetchTimeout = 15 * time.Second

// AnythingLLMClient fetches workspace chat history from an AnythingLLM
// instance using its v1 HTTP API with bearer authentication.
type AnythingLLMClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewAnythingLLMClient creates a client for the given instance.
// A non-positive timeout falls back to 15 seconds.
func NewAnythingLLMClient(baseURL, apiKey string, timeout time.Duration) *AnythingLLMClient {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &AnythingLLMClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// historyResponse mirrors the relevant part of the AnythingLLM payload.
type historyResponse struct {
	History []historyMessage `json:"history"`
}

type historyMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// LatestAssistantText returns the most recent assistant message that is
// an actual document rather than an export apology. Returns
// ErrUpstreamUnavailable for transport or decoding failures and
// ErrNoExportableMessage when the history holds nothing usable.
func (c *AnythingLLMClient) LatestAssistantText(ctx context.Context, workspaceSlug, chatID string) (string, error) {
	url := fmt.Sprintf("%s/api/v1/workspace/%s/chat/%s/history", c.baseURL, workspaceSlug, chatID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: unexpected status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var hist historyResponse
	if err := json.NewDecoder(resp.Body).Decode(&hist); err != nil {
		return "", fmt.Errorf("%w: decoding history: %v", ErrUpstreamUnavailable, err)
	}

	return selectExportable(hist.History)
}

// selectExportable walks the history newest-first and settles on the
// first assistant message that does not carry the skip marker. An empty
// winner still fails: a blank reply is not a document.
func selectExportable(history []historyMessage) (string, error) {
	for i := len(history) - 1; i >= 0; i-- {
		m := history[i]
		if m.Role != "assistant" || strings.Contains(strings.ToLower(m.Text), skipMarker) {
			continue
		}
		if m.Text == "" {
			break
		}
		return m.Text, nil
	}
	return "", ErrNoExportableMessage
}
