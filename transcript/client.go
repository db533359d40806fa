// Package transcript fetches YouTube video transcripts through the
// Supadata API and joins the caption fragments into a single text.
package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the Supadata API base URL.
const DefaultBaseURL = "https://api.supadata.ai/v1"

// Fragment is one caption segment as returned upstream.
type Fragment struct {
	Text     string `json:"text"`
	Offset   int    `json:"offset"`
	Duration int    `json:"duration"`
}

// Transcript is the full transcript of one video: the joined text plus
// the raw fragments.
type Transcript struct {
	VideoID   string
	Text      string
	Fragments []Fragment
}

// Client is a Supadata transcript client.
type Client struct {
	baseURL    string
	apiKey     string
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

func NewClient(apiKey string, options ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

type transcriptResponse struct {
	Content []Fragment `json:"content"`
}

// upstreamError is Supadata's error envelope. The error field is a
// stable machine-readable code; classification matches on it by value,
// never on the human-readable message.
type upstreamError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Fetch retrieves the transcript for one video. One shot, no retries.
func (c *Client) Fetch(ctx context.Context, videoID string) (*Transcript, error) {
	watchURL := "https://www.youtube.com/watch?v=" + videoID
	endpoint := c.baseURL + "/youtube/transcript?url=" + url.QueryEscape(watchURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("[transcript.Fetch] build request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classify(resp.StatusCode, body)
	}

	var decoded transcriptResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUpstreamUnavailable, err)
	}

	if len(decoded.Content) == 0 {
		return nil, ErrNoTranscript
	}

	return &Transcript{
		VideoID:   videoID,
		Text:      joinFragments(decoded.Content),
		Fragments: decoded.Content,
	}, nil
}

// joinFragments concatenates fragment texts with single spaces,
// skipping empty fragments.
func joinFragments(fragments []Fragment) string {
	var sb strings.Builder
	for _, f := range fragments {
		if f.Text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f.Text)
	}
	return sb.String()
}

// classify maps an upstream error payload to a sentinel error using
// the machine-readable code, falling back to the HTTP status.
func classify(status int, body []byte) error {
	var envelope upstreamError
	_ = json.Unmarshal(body, &envelope)

	switch envelope.Error {
	case "transcript-unavailable", "transcript-disabled":
		return fmt.Errorf("%w: %s", ErrNoTranscript, envelope.Message)
	case "video-not-found", "video-unavailable":
		return fmt.Errorf("%w: %s", ErrVideoUnavailable, envelope.Message)
	case "video-private":
		return fmt.Errorf("%w: %s", ErrPrivateVideo, envelope.Message)
	}

	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%w: status %d", ErrVideoUnavailable, status)
	case http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrPrivateVideo, status)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrUpstreamUnavailable, status, envelope.Message)
	}
}
