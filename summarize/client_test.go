package summarize_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kayaomerr/ytsummarizer/summarize"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    summarize.Level
		wantErr bool
	}{
		{input: "short", want: summarize.LevelShort},
		{input: "medium", want: summarize.LevelMedium},
		{input: "long", want: summarize.LevelLong},
		{input: "", wantErr: true},
		{input: "Short", wantErr: true},
		{input: "verbose", wantErr: true},
	}

	for _, test := range tests {
		t.Run("input "+test.input, func(t *testing.T) {
			level, err := summarize.ParseLevel(test.input)
			if test.wantErr {
				require.ErrorIs(t, err, summarize.ErrInvalidLevel)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, level)
		})
	}
}

func TestClient_Summarize(t *testing.T) {
	t.Run("generates a summary", func(t *testing.T) {
		var gotRequest map[string]any
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
			w.Write([]byte(`{"choices": [{"message": {"content": "  A tidy summary.  "}}]}`))
		}))
		defer upstream.Close()

		client := summarize.NewClient("key-1", "test/model", summarize.WithBaseURL(upstream.URL))
		summary, err := client.Summarize(context.Background(), "some transcript", summarize.LevelShort)
		require.NoError(t, err)
		require.Equal(t, summarize.LevelShort, summary.Level)
		require.Equal(t, "A tidy summary.", summary.Text)

		require.Equal(t, "test/model", gotRequest["model"])
		require.Equal(t, float64(200), gotRequest["max_tokens"])
		require.Equal(t, 0.7, gotRequest["temperature"])
	})

	t.Run("max tokens scale with level", func(t *testing.T) {
		tests := []struct {
			level summarize.Level
			want  float64
		}{
			{level: summarize.LevelShort, want: 200},
			{level: summarize.LevelMedium, want: 500},
			{level: summarize.LevelLong, want: 1000},
		}

		for _, test := range tests {
			t.Run(string(test.level), func(t *testing.T) {
				var gotRequest map[string]any
				upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
					w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
				}))
				defer upstream.Close()

				client := summarize.NewClient("key-1", "test/model", summarize.WithBaseURL(upstream.URL))
				_, err := client.Summarize(context.Background(), "transcript", test.level)
				require.NoError(t, err)
				require.Equal(t, test.want, gotRequest["max_tokens"])
			})
		}
	})

	t.Run("invalid level never reaches upstream", func(t *testing.T) {
		called := false
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer upstream.Close()

		client := summarize.NewClient("key-1", "test/model", summarize.WithBaseURL(upstream.URL))
		_, err := client.Summarize(context.Background(), "transcript", summarize.Level("huge"))
		require.ErrorIs(t, err, summarize.ErrInvalidLevel)
		require.False(t, called)
	})

	t.Run("missing credential", func(t *testing.T) {
		client := summarize.NewClient("", "test/model")
		require.False(t, client.Configured())

		_, err := client.Summarize(context.Background(), "transcript", summarize.LevelShort)
		require.ErrorIs(t, err, summarize.ErrMissingCredential)
	})

	t.Run("upstream failure", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer upstream.Close()

		client := summarize.NewClient("key-1", "test/model", summarize.WithBaseURL(upstream.URL))
		_, err := client.Summarize(context.Background(), "transcript", summarize.LevelShort)
		require.ErrorIs(t, err, summarize.ErrUpstreamUnavailable)
	})

	t.Run("empty completion is invalid", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices": []}`))
		}))
		defer upstream.Close()

		client := summarize.NewClient("key-1", "test/model", summarize.WithBaseURL(upstream.URL))
		_, err := client.Summarize(context.Background(), "transcript", summarize.LevelShort)
		require.ErrorIs(t, err, summarize.ErrInvalidResponse)
	})
}
