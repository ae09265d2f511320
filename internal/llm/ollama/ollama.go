// Package ollama implements llm.Client against a locally hosted Ollama
// server's /api/generate endpoint.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jjustinm4/logEater/internal/llm"
)

// DefaultBaseURL assumes a local `ollama serve`.
const DefaultBaseURL = "http://localhost:11434"

const maxErrBody = 512

// Error represents a failed generation call.
type Error struct {
	Op   string // "request", "status", "decode"
	Body string // response body, capped at 512 bytes
	Err  error
}

func (e *Error) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("ollama %s: %v: %s", e.Op, e.Err, e.Body)
	}
	return fmt.Sprintf("ollama %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Option configures Client behavior.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// Client is an llm.Client backed by Ollama. No internal retry: callers that
// want to re-ask own their attempt budget.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given base URL ("" uses DefaultBaseURL).
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateRequest struct {
	Model     string         `json:"model"`
	Prompt    string         `json:"prompt"`
	Stream    bool           `json:"stream"`
	Options   map[string]any `json:"options,omitempty"`
	KeepAlive string         `json:"keep_alive,omitempty"`
}

type generateResponse struct {
	Response *string `json:"response"`
}

// Generate calls /api/generate with stream=false and returns the full
// response text.
func (c *Client) Generate(ctx context.Context, req llm.Request) (string, error) {
	payload := generateRequest{
		Model:     req.Model,
		Prompt:    req.Prompt,
		KeepAlive: req.KeepAlive,
	}
	if req.Options != (llm.Options{}) {
		payload.Options = map[string]any{
			"temperature": req.Options.Temperature,
			"top_p":       req.Options.TopP,
			"num_ctx":     req.Options.NumCtx,
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &Error{Op: "request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", &Error{Op: "request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &Error{Op: "request", Err: fmt.Errorf("ollama unreachable at %s: %w", c.baseURL, err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Op: "request", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &Error{
			Op:   "status",
			Body: capBody(raw),
			Err:  fmt.Errorf("HTTP %d", resp.StatusCode),
		}
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &Error{Op: "decode", Body: capBody(raw), Err: err}
	}
	if parsed.Response == nil {
		return "", &Error{Op: "decode", Body: capBody(raw), Err: fmt.Errorf("missing 'response' field")}
	}
	return *parsed.Response, nil
}

func capBody(b []byte) string {
	if len(b) > maxErrBody {
		b = b[:maxErrBody]
	}
	return string(b)
}
