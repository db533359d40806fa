// Package pipeline drives the chain of dependent content fetches:
// playlist items, then per-video transcripts, then per-level
// summaries. Each stage validates its preconditions, tracks a per-key
// loading flag, issues a single one-shot call, and records either the
// result or an error entry for its key. Failures never leak across
// keys and never leave a loading flag set.
package pipeline

import (
	"context"
	"sync"

	"github.com/kayaomerr/ytsummarizer/session"
	"github.com/kayaomerr/ytsummarizer/summarize"
	"github.com/kayaomerr/ytsummarizer/youtube"
)

// TranscriptEntry is the cached outcome of one transcript fetch:
// either the joined text or an error record, never both.
type TranscriptEntry struct {
	Text string
	Err  string
}

// Failed reports whether the entry records an error.
func (e TranscriptEntry) Failed() bool {
	return e.Err != ""
}

type summaryKey struct {
	videoID string
	level   summarize.Level
}

// Pipeline holds the per-view caches for one user session. All state
// is scoped to the currently selected playlist and discarded when a
// different playlist is selected.
type Pipeline struct {
	session *session.Session
	client  Client

	mu                sync.Mutex
	selectedPlaylist  string
	videos            []youtube.Video
	videosLoading     bool
	transcripts       map[string]TranscriptEntry
	transcriptLoading map[string]bool
	summaries         map[summaryKey]string
	summaryLoading    map[summaryKey]bool
}

func New(sess *session.Session, client Client) *Pipeline {
	return &Pipeline{
		session:           sess,
		client:            client,
		transcripts:       make(map[string]TranscriptEntry),
		transcriptLoading: make(map[string]bool),
		summaries:         make(map[summaryKey]string),
		summaryLoading:    make(map[summaryKey]bool),
	}
}

// SelectPlaylist fetches the videos of one playlist. Selecting a
// playlist, including re-selecting the current one, always re-fetches
// and resets the per-view transcript and summary caches.
func (p *Pipeline) SelectPlaylist(ctx context.Context, playlistID string) ([]youtube.Video, error) {
	token := p.session.AccessToken()
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	p.mu.Lock()
	p.selectedPlaylist = playlistID
	p.videos = nil
	p.videosLoading = true
	p.transcripts = make(map[string]TranscriptEntry)
	p.transcriptLoading = make(map[string]bool)
	p.summaries = make(map[summaryKey]string)
	p.summaryLoading = make(map[summaryKey]bool)
	p.mu.Unlock()

	videos, err := p.client.Videos(ctx, playlistID, token)

	p.mu.Lock()
	p.videosLoading = false
	if err == nil {
		p.videos = videos
	}
	p.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return videos, nil
}

// FetchTranscript fetches one video's transcript and caches the
// outcome keyed by video id. A failure populates an error entry for
// that video only. The caller re-triggers manually after a failure.
func (p *Pipeline) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	p.mu.Lock()
	p.transcriptLoading[videoID] = true
	p.mu.Unlock()

	text, err := p.client.Transcript(ctx, videoID)

	p.mu.Lock()
	delete(p.transcriptLoading, videoID)
	if err != nil {
		p.transcripts[videoID] = TranscriptEntry{Err: err.Error()}
	} else {
		p.transcripts[videoID] = TranscriptEntry{Text: text}
	}
	p.mu.Unlock()

	if err != nil {
		return "", err
	}
	return text, nil
}

// Summarize generates a summary for one (video, level) pair. It
// requires a successfully fetched transcript and a valid level before
// any call is issued; the three levels load and cache independently.
func (p *Pipeline) Summarize(ctx context.Context, videoID string, level summarize.Level) (string, error) {
	if _, err := summarize.ParseLevel(string(level)); err != nil {
		return "", err
	}

	p.mu.Lock()
	entry, ok := p.transcripts[videoID]
	if !ok || entry.Failed() {
		p.mu.Unlock()
		return "", ErrMissingTranscript
	}
	key := summaryKey{videoID: videoID, level: level}
	p.summaryLoading[key] = true
	p.mu.Unlock()

	text, err := p.client.Summary(ctx, entry.Text, level)

	p.mu.Lock()
	delete(p.summaryLoading, key)
	if err == nil {
		p.summaries[key] = text
	}
	p.mu.Unlock()

	if err != nil {
		return "", err
	}
	return text, nil
}

// Videos returns the videos of the currently selected playlist.
func (p *Pipeline) Videos() []youtube.Video {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]youtube.Video(nil), p.videos...)
}

// SelectedPlaylist returns the id of the currently selected playlist.
func (p *Pipeline) SelectedPlaylist() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selectedPlaylist
}

// TranscriptFor returns the cached transcript entry for a video.
func (p *Pipeline) TranscriptFor(videoID string) (TranscriptEntry, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, ok := p.transcripts[videoID]
	return entry, ok
}

// SummaryFor returns the cached summary for a (video, level) pair.
func (p *Pipeline) SummaryFor(videoID string, level summarize.Level) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	text, ok := p.summaries[summaryKey{videoID: videoID, level: level}]
	return text, ok
}

// TranscriptLoading reports whether a transcript fetch is in flight
// for a video.
func (p *Pipeline) TranscriptLoading(videoID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.transcriptLoading[videoID]
}

// SummaryLoading reports whether a summary fetch is in flight for a
// (video, level) pair.
func (p *Pipeline) SummaryLoading(videoID string, level summarize.Level) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.summaryLoading[summaryKey{videoID: videoID, level: level}]
}

// VideosLoading reports whether a playlist selection is in flight.
func (p *Pipeline) VideosLoading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.videosLoading
}
