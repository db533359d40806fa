package youtube_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kayaomerr/ytsummarizer/youtube"
)

func TestClient_ListMyPlaylists(t *testing.T) {
	t.Run("parses the playlist page", func(t *testing.T) {
		var gotAuth, gotQuery string
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`{
				"items": [
					{"id": "pl-1", "snippet": {"title": "Talks"}, "contentDetails": {"itemCount": 12}},
					{"id": "pl-2", "snippet": {"title": "Music"}, "contentDetails": {"itemCount": 3}}
				]
			}`))
		}))
		defer upstream.Close()

		client := youtube.NewClient(youtube.WithBaseURL(upstream.URL))
		playlists, err := client.ListMyPlaylists(context.Background(), "tok-1")
		require.NoError(t, err)
		require.Equal(t, []youtube.Playlist{
			{ID: "pl-1", Title: "Talks", ItemCount: 12},
			{ID: "pl-2", Title: "Music", ItemCount: 3},
		}, playlists)
		require.Equal(t, "Bearer tok-1", gotAuth)
		require.Contains(t, gotQuery, "mine=true")
		require.Contains(t, gotQuery, "maxResults=50")
	})

	t.Run("unauthorized maps to ErrUnauthorized", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"code": 401, "message": "Invalid Credentials"}}`))
		}))
		defer upstream.Close()

		client := youtube.NewClient(youtube.WithBaseURL(upstream.URL))
		_, err := client.ListMyPlaylists(context.Background(), "bad-token")
		require.ErrorIs(t, err, youtube.ErrUnauthorized)
		require.Contains(t, err.Error(), "Invalid Credentials")
	})

	t.Run("server error maps to ErrUpstreamUnavailable", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer upstream.Close()

		client := youtube.NewClient(youtube.WithBaseURL(upstream.URL))
		_, err := client.ListMyPlaylists(context.Background(), "tok-1")
		require.ErrorIs(t, err, youtube.ErrUpstreamUnavailable)
	})
}

func TestClient_ListPlaylistItems(t *testing.T) {
	t.Run("parses the items page", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "pl-1", r.URL.Query().Get("playlistId"))
			w.Write([]byte(`{
				"items": [
					{"snippet": {"title": "First", "resourceId": {"videoId": "vid-1"},
						"thumbnails": {"medium": {"url": "https://img.example/1.jpg"}}}},
					{"snippet": {"title": "Second", "resourceId": {"videoId": "vid-2"}}}
				]
			}`))
		}))
		defer upstream.Close()

		client := youtube.NewClient(youtube.WithBaseURL(upstream.URL))
		videos, err := client.ListPlaylistItems(context.Background(), "tok-1", "pl-1")
		require.NoError(t, err)
		require.Equal(t, []youtube.Video{
			{ID: "vid-1", Title: "First", ThumbnailURL: "https://img.example/1.jpg"},
			{ID: "vid-2", Title: "Second"},
		}, videos)
	})

	t.Run("not found maps to ErrNotFound", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": {"code": 404, "message": "playlistNotFound"}}`))
		}))
		defer upstream.Close()

		client := youtube.NewClient(youtube.WithBaseURL(upstream.URL))
		_, err := client.ListPlaylistItems(context.Background(), "tok-1", "missing")
		require.ErrorIs(t, err, youtube.ErrNotFound)
	})
}
