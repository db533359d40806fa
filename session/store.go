package session

import (
	"context"

	"github.com/kayaomerr/ytsummarizer/youtube"
)

// Store persists the session across restarts: the access token and the
// last-known playlist snapshot, written together and cleared together.
type Store interface {
	// Load returns the persisted token and snapshot. An absent session
	// is ("", nil, nil), not an error.
	Load(ctx context.Context) (token string, playlists []youtube.Playlist, err error)

	// Save persists token and snapshot atomically.
	Save(ctx context.Context, token string, playlists []youtube.Playlist) error

	// Clear removes both entries atomically.
	Clear(ctx context.Context) error
}
