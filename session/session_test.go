package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kayaomerr/ytsummarizer/session"
	"github.com/kayaomerr/ytsummarizer/session/storefakes"
	"github.com/kayaomerr/ytsummarizer/youtube"
)

var testPlaylists = []youtube.Playlist{
	{ID: "pl-1", Title: "Conference Talks", ItemCount: 12},
	{ID: "pl-2", Title: "Music", ItemCount: 40},
}

func TestSession_LoginThenHydrate(t *testing.T) {
	ctx := context.Background()
	store := storefakes.NewFakeStore()

	first := session.New(store)
	require.NoError(t, first.Login(ctx, "tok-1", testPlaylists))
	require.True(t, first.IsAuthenticated())

	// A fresh Session over the same store simulates a reload.
	second := session.New(store)
	second.Hydrate(ctx)
	require.True(t, second.IsAuthenticated())
	require.Equal(t, "tok-1", second.AccessToken())
	require.Equal(t, testPlaylists, second.Playlists())
}

func TestSession_Logout(t *testing.T) {
	ctx := context.Background()
	store := storefakes.NewFakeStore()
	sess := session.New(store)

	require.NoError(t, sess.Login(ctx, "tok-1", testPlaylists))
	require.NoError(t, sess.Logout(ctx))

	require.False(t, sess.IsAuthenticated())
	require.Empty(t, sess.AccessToken())
	require.Empty(t, sess.Playlists())

	// Persisted state is cleared too.
	reloaded := session.New(store)
	reloaded.Hydrate(ctx)
	require.False(t, reloaded.IsAuthenticated())
}

func TestSession_LogoutWithoutLogin(t *testing.T) {
	sess := session.New(storefakes.NewFakeStore())
	require.NoError(t, sess.Logout(context.Background()))
	require.False(t, sess.IsAuthenticated())
}

func TestSession_LoginRejectsEmptyToken(t *testing.T) {
	sess := session.New(storefakes.NewFakeStore())
	err := sess.Login(context.Background(), "", testPlaylists)
	require.ErrorIs(t, err, session.ErrEmptyToken)
	require.False(t, sess.IsAuthenticated())
}

func TestSession_LoginPersistFailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	store := storefakes.NewFakeStore()
	sess := session.New(store)
	require.NoError(t, sess.Login(ctx, "tok-1", testPlaylists))

	store.SaveErr = errors.New("disk full")
	err := sess.Login(ctx, "tok-2", nil)
	require.Error(t, err)

	// Token and playlists still agree with the last successful login.
	require.Equal(t, "tok-1", sess.AccessToken())
	require.Equal(t, testPlaylists, sess.Playlists())
}

func TestSession_HydrateFailsSoft(t *testing.T) {
	store := storefakes.NewFakeStore()
	store.LoadErr = errors.New("corrupt")

	sess := session.New(store)
	sess.Hydrate(context.Background())
	require.False(t, sess.IsAuthenticated())
	require.Empty(t, sess.Playlists())
}

func TestSession_LoginReplacesPlaylistsWholesale(t *testing.T) {
	ctx := context.Background()
	sess := session.New(storefakes.NewFakeStore())

	require.NoError(t, sess.Login(ctx, "tok-1", testPlaylists))
	replacement := []youtube.Playlist{{ID: "pl-9", Title: "New", ItemCount: 1}}
	require.NoError(t, sess.Login(ctx, "tok-2", replacement))

	require.Equal(t, replacement, sess.Playlists())
}
