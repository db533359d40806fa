// Package storefakes provides an in-memory session store for tests.
package storefakes

import (
	"context"
	"sync"

	"github.com/kayaomerr/ytsummarizer/session"
	"github.com/kayaomerr/ytsummarizer/youtube"
)

// FakeStore is an in-memory session.Store. Errors can be injected per
// operation to exercise failure paths.
type FakeStore struct {
	mu        sync.Mutex
	token     string
	playlists []youtube.Playlist

	LoadErr  error
	SaveErr  error
	ClearErr error

	SaveCalls  int
	ClearCalls int
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

var _ session.Store = (*FakeStore)(nil)

func (f *FakeStore) Load(_ context.Context) (string, []youtube.Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.LoadErr != nil {
		return "", nil, f.LoadErr
	}
	return f.token, append([]youtube.Playlist(nil), f.playlists...), nil
}

func (f *FakeStore) Save(_ context.Context, token string, playlists []youtube.Playlist) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SaveCalls++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.token = token
	f.playlists = append([]youtube.Playlist(nil), playlists...)
	return nil
}

func (f *FakeStore) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ClearCalls++
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.token = ""
	f.playlists = nil
	return nil
}

// Seed sets the persisted state directly, bypassing Save accounting.
func (f *FakeStore) Seed(token string, playlists []youtube.Playlist) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
	f.playlists = append([]youtube.Playlist(nil), playlists...)
}
