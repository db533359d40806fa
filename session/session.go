// Package session owns the authenticated user's session: the access
// token and the playlist snapshot fetched at login. It is a pure
// state-plus-durability boundary; no network or cross-window side
// effects originate here.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/kayaomerr/ytsummarizer/youtube"
)

var ErrEmptyToken = errors.New("access token is empty")

// Session holds the current token and playlist snapshot. Token and
// playlists are always set and cleared together, so a reader never
// observes a state where the two disagree.
type Session struct {
	store Store

	mu          sync.RWMutex
	accessToken string
	playlists   []youtube.Playlist
}

func New(store Store) *Session {
	return &Session{store: store}
}

// Hydrate loads the persisted session at startup. It fails soft:
// absent or unreadable state is treated as "no session" rather than
// surfaced as an error.
func (s *Session) Hydrate(ctx context.Context) {
	token, playlists, err := s.store.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("session hydrate failed, starting unauthenticated")
		return
	}
	if token == "" {
		return
	}

	s.mu.Lock()
	s.accessToken = token
	s.playlists = playlists
	s.mu.Unlock()
}

// Login stores the token and playlist snapshot together, persisting
// before the in-memory state changes. On a persistence failure the
// session is left untouched.
func (s *Session) Login(ctx context.Context, token string, playlists []youtube.Playlist) error {
	if token == "" {
		return ErrEmptyToken
	}

	if err := s.store.Save(ctx, token, playlists); err != nil {
		return err
	}

	s.mu.Lock()
	s.accessToken = token
	s.playlists = append([]youtube.Playlist(nil), playlists...)
	s.mu.Unlock()
	return nil
}

// Logout clears the in-memory and persisted state together.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.accessToken = ""
	s.playlists = nil
	s.mu.Unlock()
	return nil
}

// AccessToken returns the current token, or "" when unauthenticated.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// Playlists returns a copy of the playlist snapshot.
func (s *Session) Playlists() []youtube.Playlist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]youtube.Playlist(nil), s.playlists...)
}

// IsAuthenticated reports whether a token is present.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken != ""
}
