// Package client is the HTTP side of the chat widget: it posts one turn
// to the chat endpoint and separates application errors (the server's
// error field) from transport failures.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tutorchat/internal/models"
)

// Doer lets tests substitute the HTTP transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is an error the backend reported in its error field, as
// opposed to a transport failure. Its message is meant for display.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Result is one successful exchange.
type Result struct {
	ChatID  string
	Content string
}

type Client struct {
	baseURL string
	httpc   Doer
}

func New(baseURL string) *Client {
	return NewWithDoer(baseURL, &http.Client{})
}

func NewWithDoer(baseURL string, doer Doer) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   doer,
	}
}

// Send posts one user message. chatID is empty on the first turn; the
// returned Result carries the server's chat ID for subsequent turns.
// A non-nil *APIError means the backend answered with an error string;
// any other error is a transport-level failure.
func (c *Client) Send(ctx context.Context, chatID, level, message string) (*Result, error) {
	body, err := json.Marshal(models.ChatRequest{
		Message: message,
		Level:   level,
		ChatID:  chatID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var out struct {
		Error  string           `json:"error"`
		ChatID string           `json:"chat_id"`
		Reply  models.ChatReply `json:"reply"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("malformed response: %w", err)
	}

	if out.Error != "" {
		return nil, &APIError{Message: out.Error}
	}
	if out.ChatID == "" {
		return nil, fmt.Errorf("malformed response: missing chat_id (status %d)", resp.StatusCode)
	}

	return &Result{ChatID: out.ChatID, Content: out.Reply.Content}, nil
}
