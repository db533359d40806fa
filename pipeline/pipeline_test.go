package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kayaomerr/ytsummarizer/pipeline"
	"github.com/kayaomerr/ytsummarizer/session"
	"github.com/kayaomerr/ytsummarizer/session/storefakes"
	"github.com/kayaomerr/ytsummarizer/summarize"
	"github.com/kayaomerr/ytsummarizer/youtube"
)

type fakeClient struct {
	videos       map[string][]youtube.Video
	videosErr    error
	transcripts  map[string]string
	transcribErr map[string]error
	summaries    map[string]string
	summaryErr   error
	summaryCalls int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		videos:       map[string][]youtube.Video{},
		transcripts:  map[string]string{},
		transcribErr: map[string]error{},
		summaries:    map[string]string{},
	}
}

func (f *fakeClient) Videos(_ context.Context, playlistID, _ string) ([]youtube.Video, error) {
	if f.videosErr != nil {
		return nil, f.videosErr
	}
	return f.videos[playlistID], nil
}

func (f *fakeClient) Transcript(_ context.Context, videoID string) (string, error) {
	if err := f.transcribErr[videoID]; err != nil {
		return "", err
	}
	return f.transcripts[videoID], nil
}

func (f *fakeClient) Summary(_ context.Context, transcript string, level summarize.Level) (string, error) {
	f.summaryCalls++
	if f.summaryErr != nil {
		return "", f.summaryErr
	}
	return f.summaries[string(level)], nil
}

func authenticatedSession(t *testing.T) *session.Session {
	t.Helper()
	sess := session.New(storefakes.NewFakeStore())
	require.NoError(t, sess.Login(context.Background(), "tok-1", nil))
	return sess
}

func TestPipeline_SelectPlaylist(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		p := pipeline.New(session.New(storefakes.NewFakeStore()), newFakeClient())
		_, err := p.SelectPlaylist(context.Background(), "pl-1")
		require.ErrorIs(t, err, pipeline.ErrNotAuthenticated)
	})

	t.Run("loads and exposes videos", func(t *testing.T) {
		client := newFakeClient()
		client.videos["pl-1"] = []youtube.Video{{ID: "vid-1", Title: "First"}}

		p := pipeline.New(authenticatedSession(t), client)
		videos, err := p.SelectPlaylist(context.Background(), "pl-1")
		require.NoError(t, err)
		require.Len(t, videos, 1)
		require.Equal(t, videos, p.Videos())
		require.Equal(t, "pl-1", p.SelectedPlaylist())
		require.False(t, p.VideosLoading())
	})

	t.Run("selection resets transcripts and summaries", func(t *testing.T) {
		client := newFakeClient()
		client.videos["pl-1"] = []youtube.Video{{ID: "vid-1"}}
		client.videos["pl-2"] = []youtube.Video{{ID: "vid-2"}}
		client.transcripts["vid-1"] = "some words"
		client.summaries["short"] = "a summary"

		p := pipeline.New(authenticatedSession(t), client)
		_, err := p.SelectPlaylist(context.Background(), "pl-1")
		require.NoError(t, err)
		_, err = p.FetchTranscript(context.Background(), "vid-1")
		require.NoError(t, err)
		_, err = p.Summarize(context.Background(), "vid-1", summarize.LevelShort)
		require.NoError(t, err)

		_, err = p.SelectPlaylist(context.Background(), "pl-2")
		require.NoError(t, err)

		_, ok := p.TranscriptFor("vid-1")
		require.False(t, ok)
		_, ok = p.SummaryFor("vid-1", summarize.LevelShort)
		require.False(t, ok)
	})

	t.Run("re-selecting the same playlist re-fetches", func(t *testing.T) {
		client := newFakeClient()
		client.videos["pl-1"] = []youtube.Video{{ID: "vid-1"}}
		client.transcripts["vid-1"] = "words"

		p := pipeline.New(authenticatedSession(t), client)
		_, err := p.SelectPlaylist(context.Background(), "pl-1")
		require.NoError(t, err)
		_, err = p.FetchTranscript(context.Background(), "vid-1")
		require.NoError(t, err)

		_, err = p.SelectPlaylist(context.Background(), "pl-1")
		require.NoError(t, err)
		_, ok := p.TranscriptFor("vid-1")
		require.False(t, ok)
	})

	t.Run("fetch failure clears the loading flag and keeps no videos", func(t *testing.T) {
		client := newFakeClient()
		client.videosErr = errors.New("upstream down")

		p := pipeline.New(authenticatedSession(t), client)
		_, err := p.SelectPlaylist(context.Background(), "pl-1")
		require.Error(t, err)
		require.False(t, p.VideosLoading())
		require.Empty(t, p.Videos())
	})
}

func TestPipeline_FetchTranscript(t *testing.T) {
	t.Run("caches the joined text per video", func(t *testing.T) {
		client := newFakeClient()
		client.transcripts["vid-1"] = "hello world"

		p := pipeline.New(authenticatedSession(t), client)
		text, err := p.FetchTranscript(context.Background(), "vid-1")
		require.NoError(t, err)
		require.Equal(t, "hello world", text)

		entry, ok := p.TranscriptFor("vid-1")
		require.True(t, ok)
		require.False(t, entry.Failed())
		require.Equal(t, "hello world", entry.Text)
		require.False(t, p.TranscriptLoading("vid-1"))
	})

	t.Run("a failure is recorded for that video only", func(t *testing.T) {
		client := newFakeClient()
		client.transcripts["vid-1"] = "fine"
		client.transcribErr["vid-2"] = errors.New("no transcript")

		p := pipeline.New(authenticatedSession(t), client)
		_, err := p.FetchTranscript(context.Background(), "vid-1")
		require.NoError(t, err)
		_, err = p.FetchTranscript(context.Background(), "vid-2")
		require.Error(t, err)

		good, ok := p.TranscriptFor("vid-1")
		require.True(t, ok)
		require.False(t, good.Failed())

		bad, ok := p.TranscriptFor("vid-2")
		require.True(t, ok)
		require.True(t, bad.Failed())
		require.Contains(t, bad.Err, "no transcript")
		require.False(t, p.TranscriptLoading("vid-2"))
	})

	t.Run("a later fetch replaces the earlier outcome", func(t *testing.T) {
		client := newFakeClient()
		client.transcribErr["vid-1"] = errors.New("flaky")

		p := pipeline.New(authenticatedSession(t), client)
		_, err := p.FetchTranscript(context.Background(), "vid-1")
		require.Error(t, err)

		delete(client.transcribErr, "vid-1")
		client.transcripts["vid-1"] = "recovered"
		text, err := p.FetchTranscript(context.Background(), "vid-1")
		require.NoError(t, err)
		require.Equal(t, "recovered", text)

		entry, _ := p.TranscriptFor("vid-1")
		require.False(t, entry.Failed())
		require.Equal(t, "recovered", entry.Text)
	})
}

func TestPipeline_Summarize(t *testing.T) {
	t.Run("invalid level never reaches the client", func(t *testing.T) {
		client := newFakeClient()
		p := pipeline.New(authenticatedSession(t), client)

		_, err := p.Summarize(context.Background(), "vid-1", summarize.Level("huge"))
		require.ErrorIs(t, err, summarize.ErrInvalidLevel)
		require.Zero(t, client.summaryCalls)
	})

	t.Run("requires a successful transcript", func(t *testing.T) {
		client := newFakeClient()
		client.transcribErr["vid-1"] = errors.New("nope")

		p := pipeline.New(authenticatedSession(t), client)

		_, err := p.Summarize(context.Background(), "vid-1", summarize.LevelShort)
		require.ErrorIs(t, err, pipeline.ErrMissingTranscript)

		_, _ = p.FetchTranscript(context.Background(), "vid-1")
		_, err = p.Summarize(context.Background(), "vid-1", summarize.LevelShort)
		require.ErrorIs(t, err, pipeline.ErrMissingTranscript)
		require.Zero(t, client.summaryCalls)
	})

	t.Run("levels cache independently", func(t *testing.T) {
		client := newFakeClient()
		client.transcripts["vid-1"] = "words"
		client.summaries["short"] = "tiny"
		client.summaries["long"] = "a much longer take"

		p := pipeline.New(authenticatedSession(t), client)
		_, err := p.FetchTranscript(context.Background(), "vid-1")
		require.NoError(t, err)

		short, err := p.Summarize(context.Background(), "vid-1", summarize.LevelShort)
		require.NoError(t, err)
		long, err := p.Summarize(context.Background(), "vid-1", summarize.LevelLong)
		require.NoError(t, err)

		gotShort, ok := p.SummaryFor("vid-1", summarize.LevelShort)
		require.True(t, ok)
		require.Equal(t, short, gotShort)

		gotLong, ok := p.SummaryFor("vid-1", summarize.LevelLong)
		require.True(t, ok)
		require.Equal(t, long, gotLong)

		_, ok = p.SummaryFor("vid-1", summarize.LevelMedium)
		require.False(t, ok)
	})

	t.Run("a failed summary caches nothing", func(t *testing.T) {
		client := newFakeClient()
		client.transcripts["vid-1"] = "words"
		client.summaryErr = errors.New("model overloaded")

		p := pipeline.New(authenticatedSession(t), client)
		_, err := p.FetchTranscript(context.Background(), "vid-1")
		require.NoError(t, err)

		_, err = p.Summarize(context.Background(), "vid-1", summarize.LevelShort)
		require.Error(t, err)

		_, ok := p.SummaryFor("vid-1", summarize.LevelShort)
		require.False(t, ok)
		require.False(t, p.SummaryLoading("vid-1", summarize.LevelShort))
	})
}
