// Package poemclient calls the poem endpoints of a running server.
package poemclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Conceptual-Machines/starter-poem-api/internal/poem"
)

const (
	poemPath   = "/api/poem"
	stylesPath = "/api/poem/styles"

	defaultErrorMessage = "Failed to generate poem"
)

// RequestError is returned when the server answers with a non-2xx status
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Client talks to the poem API. The zero value is not usable; use New.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the server at baseURL (e.g. "http://localhost:8080")
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type poemRequest struct {
	StyleID string `json:"styleId,omitempty"`
}

type poemResponse struct {
	Poem  string `json:"poem"`
	Error string `json:"error"`
}

// RequestPoem asks the server for a poem in the given style; nil means the
// server default. It makes a single attempt; cancel ctx to abandon it.
func (c *Client) RequestPoem(ctx context.Context, style *poem.PoemStyle) (string, error) {
	var body poemRequest
	if style != nil {
		body.StyleID = style.ID
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	var out poemResponse
	if err := c.do(ctx, http.MethodPost, poemPath, payload, &out); err != nil {
		return "", err
	}
	return out.Poem, nil
}

type stylesResponse struct {
	Styles  []poem.PoemStyle `json:"styles"`
	Default string           `json:"default"`
}

// ListStyles fetches the style catalog and the id of the default style
func (c *Client) ListStyles(ctx context.Context) ([]poem.PoemStyle, string, error) {
	var out stylesResponse
	if err := c.do(ctx, http.MethodGet, stylesPath, nil, &out); err != nil {
		return nil, "", err
	}
	return out.Styles, out.Default, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, out any) error {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errBody struct {
			Error string `json:"error"`
		}
		message := defaultErrorMessage
		if json.Unmarshal(respBody, &errBody) == nil && errBody.Error != "" {
			message = errBody.Error
		}
		return &RequestError{StatusCode: resp.StatusCode, Message: message}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
