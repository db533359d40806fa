package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the YouTube Data API v3 base URL.
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// maxResults bounds every listing call to a single page.
	maxResults = "50"
)

// Client is a minimal read-only YouTube Data API v3 client. It covers
// the two listing calls the service needs: the authenticated user's
// playlists and the items of one playlist. Pagination beyond the first
// page is deliberately not implemented.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption modifies a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL (primarily for testing).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(options ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// apiError is the error envelope returned by the Data API.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type playlistsResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
		ContentDetails struct {
			ItemCount int `json:"itemCount"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type playlistItemsResponse struct {
	Items []struct {
		Snippet struct {
			Title      string `json:"title"`
			ResourceID struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
			Thumbnails struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// ListMyPlaylists returns the authenticated user's playlists, bounded
// to the first page of results.
func (c *Client) ListMyPlaylists(ctx context.Context, accessToken string) ([]Playlist, error) {
	query := url.Values{
		"part":       {"snippet,contentDetails"},
		"mine":       {"true"},
		"maxResults": {maxResults},
	}

	var resp playlistsResponse
	if err := c.get(ctx, "/playlists", query, accessToken, &resp); err != nil {
		return nil, err
	}

	playlists := make([]Playlist, 0, len(resp.Items))
	for _, item := range resp.Items {
		playlists = append(playlists, Playlist{
			ID:        item.ID,
			Title:     item.Snippet.Title,
			ItemCount: item.ContentDetails.ItemCount,
		})
	}
	return playlists, nil
}

// ListPlaylistItems returns the videos of one playlist, bounded to the
// first page of results.
func (c *Client) ListPlaylistItems(ctx context.Context, accessToken, playlistID string) ([]Video, error) {
	query := url.Values{
		"part":       {"snippet"},
		"playlistId": {playlistID},
		"maxResults": {maxResults},
	}

	var resp playlistItemsResponse
	if err := c.get(ctx, "/playlistItems", query, accessToken, &resp); err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		videos = append(videos, Video{
			ID:           item.Snippet.ResourceID.VideoID,
			Title:        item.Snippet.Title,
			ThumbnailURL: item.Snippet.Thumbnails.Medium.URL,
		})
	}
	return videos, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("[youtube.get] build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return classifyStatus(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUpstreamUnavailable, err)
	}
	return nil
}

// classifyStatus maps a non-2xx Data API response to a sentinel error,
// carrying the upstream message for context. Classification is by
// status code, never by matching on message text.
func classifyStatus(status int, body []byte) error {
	var envelope apiError
	message := fmt.Sprintf("status %d", status)
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		message = envelope.Error.Message
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	default:
		return fmt.Errorf("%w: %s", ErrUpstreamUnavailable, message)
	}
}
