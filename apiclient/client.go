// Package apiclient implements pipeline.Client over the service's own
// HTTP API, classifying non-2xx responses into the same sentinel
// errors the underlying upstream clients use.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kayaomerr/ytsummarizer/pipeline"
	"github.com/kayaomerr/ytsummarizer/summarize"
	"github.com/kayaomerr/ytsummarizer/transcript"
	"github.com/kayaomerr/ytsummarizer/youtube"
)

var (
	// ErrUpstreamUnavailable covers transport failures and
	// unclassified error responses from the API.
	ErrUpstreamUnavailable = errors.New("api unavailable")

	// ErrValidation means the API rejected the request shape.
	ErrValidation = errors.New("request rejected by api")
)

// Client calls the videos, transcripts and summarize endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, options ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

var _ pipeline.Client = (*Client)(nil)

// errorBody is the API's error envelope.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// Videos lists one playlist's items via GET /api/videos.
func (c *Client) Videos(ctx context.Context, playlistID, accessToken string) ([]youtube.Video, error) {
	query := url.Values{
		"playlistId":  {playlistID},
		"accessToken": {accessToken},
	}

	var decoded struct {
		Items []youtube.Video `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/videos?"+query.Encode(), nil, &decoded); err != nil {
		return nil, err
	}
	return decoded.Items, nil
}

// Transcript fetches one video's transcript via GET /api/transcripts.
func (c *Client) Transcript(ctx context.Context, videoID string) (string, error) {
	query := url.Values{"videoId": {videoID}}

	var decoded struct {
		Transcript string `json:"transcript"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/transcripts?"+query.Encode(), nil, &decoded); err != nil {
		return "", err
	}
	return decoded.Transcript, nil
}

// Summary generates a summary via POST /api/summarize.
func (c *Client) Summary(ctx context.Context, transcriptText string, level summarize.Level) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"transcript": transcriptText,
		"level":      string(level),
	})
	if err != nil {
		return "", fmt.Errorf("[apiclient.Summary] encode request: %w", err)
	}

	var decoded struct {
		Summary string `json:"summary"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/summarize", payload, &decoded); err != nil {
		return "", err
	}
	return decoded.Summary, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("[apiclient.do] build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classify(resp.StatusCode, respBody)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUpstreamUnavailable, err)
	}
	return nil
}

// classify maps an error response to the taxonomy the pipeline
// surfaces, by status code.
func classify(status int, body []byte) error {
	var envelope errorBody
	_ = json.Unmarshal(body, &envelope)
	message := envelope.Error
	if message == "" {
		message = fmt.Sprintf("status %d", status)
	}

	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrValidation, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", transcript.ErrPrivateVideo, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", transcript.ErrNoTranscript, message)
	default:
		return fmt.Errorf("%w: %s", ErrUpstreamUnavailable, message)
	}
}
