package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/markis/lai/internal/apperr"
)

const (
	DefaultEndpoint = "http://localhost:11434/v1/chat/completions"

	// SystemPrompt is sent ahead of every user message.
	SystemPrompt = "You are a concise, context-grounded assistant. You always prioritize analyzing piped input above general knowledge."

	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one entry of the chat request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body posted to the chat-completion endpoint. Stream is
// always serialised.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

// NewRequest prepares a non-streaming request for the composed user message.
func NewRequest(model, content string) ChatRequest {
	return ChatRequest{
		Model: model,
		Messages: []Message{
			{Role: RoleSystem, Content: SystemPrompt},
			{Role: RoleUser, Content: content},
		},
		Stream: false,
	}
}

// Client posts chat requests to a single endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// New returns a Client for endpoint. A nil httpClient gets a transport with
// no overall request timeout.
func New(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = newHTTPClient()
	}
	return &Client{endpoint: endpoint, http: httpClient}
}

func newHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:             http.ProxyFromEnvironment,
		MaxIdleConns:      1,
		IdleConnTimeout:   90 * time.Second,
		ForceAttemptHTTP2: true,
	}
	transport.DialContext = (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext

	return &http.Client{Transport: transport}
}

// Complete sends req and returns the content of the first choice.
func (c *Client) Complete(ctx context.Context, req ChatRequest) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", apperr.New(apperr.KindInternal, "failed to marshal payload", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(data))
	if err != nil {
		return "", apperr.New(apperr.KindTransport, "failed to create request", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", apperr.New(apperr.KindTransport, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			body = nil
		}
		msg := fmt.Sprintf("Request failed with status %s: %s", statusLine(resp), body)
		return "", apperr.NewVerbatim(apperr.KindHTTPStatus, msg)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperr.New(apperr.KindTransport, "failed to read response body", err)
	}

	return decodeResponse(body)
}

// statusLine renders the status as "500 Internal Server Error".
func statusLine(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
