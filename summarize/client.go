// Package summarize turns a video transcript into a summary at one of
// three detail levels, via the OpenRouter chat completions API.
package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the OpenRouter API base URL.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// Summary is one generated summary; summaries for different levels of
// the same transcript are independent values.
type Summary struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Client is an OpenRouter chat completions client.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	referer    string
	httpClient *http.Client
}

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithReferer sets the HTTP-Referer header OpenRouter uses for app
// attribution.
func WithReferer(referer string) ClientOption {
	return func(c *Client) {
		c.referer = referer
	}
}

func NewClient(apiKey, model string, options ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Configured reports whether the client holds an API key. Handlers
// check this before accepting work so a missing credential surfaces as
// a configuration error, not an upstream one.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Summarize generates one summary. The level must already be valid;
// callers validate with ParseLevel before any network work happens.
// One shot, no retries.
func (c *Client) Summarize(ctx context.Context, transcript string, level Level) (*Summary, error) {
	if !c.Configured() {
		return nil, ErrMissingCredential
	}
	if _, err := ParseLevel(string(level)); err != nil {
		return nil, err
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: levelPrompts[level] + "\n\nTranscript:\n" + transcript},
		},
		MaxTokens:   levelMaxTokens[level],
		Temperature: 0.7,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("[summarize.Summarize] encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("[summarize.Summarize] build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if c.referer != "" {
		req.Header.Set("HTTP-Referer", c.referer)
		req.Header.Set("X-Title", "YT Transcript Summarizer")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstreamUnavailable, resp.StatusCode, respBody)
	}

	var decoded chatResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidResponse, err)
	}
	if len(decoded.Choices) == 0 || decoded.Choices[0].Message.Content == "" {
		return nil, ErrInvalidResponse
	}

	return &Summary{
		Level: level,
		Text:  strings.TrimSpace(decoded.Choices[0].Message.Content),
	}, nil
}
