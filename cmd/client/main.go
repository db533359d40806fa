// Command client drives the full flow from a terminal: it embeds the
// HTTP service, opens the authorization window in the system browser,
// waits for the bridge message, persists the session, and then walks
// the content pipeline for the requested playlist, video and level.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/kayaomerr/ytsummarizer/apiclient"
	"github.com/kayaomerr/ytsummarizer/auth"
	"github.com/kayaomerr/ytsummarizer/bridge"
	"github.com/kayaomerr/ytsummarizer/internal/config"
	"github.com/kayaomerr/ytsummarizer/pipeline"
	"github.com/kayaomerr/ytsummarizer/popup"
	"github.com/kayaomerr/ytsummarizer/records"
	"github.com/kayaomerr/ytsummarizer/server"
	"github.com/kayaomerr/ytsummarizer/session"
	"github.com/kayaomerr/ytsummarizer/summarize"
	"github.com/kayaomerr/ytsummarizer/transcript"
	"github.com/kayaomerr/ytsummarizer/youtube"
)

const authorizationTimeout = 5 * time.Minute

func main() {
	playlistID := flag.String("playlist", "", "playlist id to list videos for")
	videoID := flag.String("video", "", "video id to fetch a transcript for")
	level := flag.String("level", "", "summary level: short, medium or long")
	logout := flag.Bool("logout", false, "clear the stored session and exit")
	flag.Parse()

	if err := run(*playlistID, *videoID, *level, *logout); err != nil {
		log.Fatalf("Error: %s\n", err)
	}
}

func run(playlistID, videoID, level string, logout bool) error {
	c := config.New()
	ctx := context.Background()

	if err := os.MkdirAll(c.GetDataFolder(), 0o755); err != nil {
		return fmt.Errorf("create data folder: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(c.GetDataFolder(), "ytsummarizer.db"))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	store, err := session.NewSQLiteStore(db)
	if err != nil {
		return err
	}
	sess := session.New(store)
	sess.Hydrate(ctx)

	if logout {
		if err := sess.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	}

	hub := bridge.NewHub()
	httpServer, err := startEmbeddedServer(ctx, c, db, hub)
	if err != nil {
		return err
	}
	defer stopEmbeddedServer(httpServer)

	if !sess.IsAuthenticated() {
		if err := authorize(ctx, c, hub, sess); err != nil {
			return err
		}
	}

	fmt.Println("Playlists:")
	for _, p := range sess.Playlists() {
		fmt.Printf("  %s  %s (%d items)\n", p.ID, p.Title, p.ItemCount)
	}

	pipe := pipeline.New(sess, apiclient.New(c.GetAppURL()))
	return walkPipeline(ctx, pipe, playlistID, videoID, level)
}

func authorize(ctx context.Context, c config.Config, hub *bridge.Hub, sess *session.Session) error {
	controller := popup.NewController(
		popup.BrowserOpener{},
		hub,
		c.GetAppURL()+server.RouteAuthAuthorize,
	)

	authCtx, cancel := context.WithTimeout(ctx, authorizationTimeout)
	defer cancel()

	fmt.Println("Opening the authorization window in your browser...")
	result, err := controller.BeginAuthorization(authCtx)
	if err != nil {
		return err
	}
	if err := sess.Login(ctx, result.AccessToken, result.Playlists); err != nil {
		return err
	}
	fmt.Println("Logged in.")
	return nil
}

func walkPipeline(ctx context.Context, pipe *pipeline.Pipeline, playlistID, videoID, level string) error {
	if playlistID == "" {
		return nil
	}

	videos, err := pipe.SelectPlaylist(ctx, playlistID)
	if err != nil {
		return fmt.Errorf("list videos: %w", err)
	}
	fmt.Printf("\nVideos in %s:\n", playlistID)
	for _, v := range videos {
		fmt.Printf("  %s  %s\n", v.ID, v.Title)
	}

	if videoID == "" {
		return nil
	}
	text, err := pipe.FetchTranscript(ctx, videoID)
	if err != nil {
		return fmt.Errorf("fetch transcript: %w", err)
	}
	fmt.Printf("\nTranscript (%d characters):\n%s\n", len(text), preview(text, 300))

	if level == "" {
		return nil
	}
	summary, err := pipe.Summarize(ctx, videoID, summarize.Level(level))
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}
	fmt.Printf("\nSummary (%s):\n%s\n", level, summary)
	return nil
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func startEmbeddedServer(ctx context.Context, c config.Config, db *sql.DB, hub *bridge.Hub) (*http.Server, error) {
	recordRepo, err := records.NewSQLiteRepo(db)
	if err != nil {
		return nil, err
	}

	ytClient := youtube.NewClient()
	exchange, err := auth.NewExchangeService(ctx, c, ytClient)
	if err != nil {
		return nil, err
	}

	srv, err := server.New(c, server.Deps{
		Exchange:    exchange,
		Hub:         hub,
		Videos:      ytClient,
		Transcripts: transcript.NewClient(c.GetSupadataAPIKey()),
		Summarizer: summarize.NewClient(
			c.GetOpenRouterAPIKey(),
			c.GetOpenRouterModel(),
			summarize.WithReferer(c.GetAppURL()),
		),
		Records: recordRepo,
	})
	if err != nil {
		return nil, err
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: srv}
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("embedded server: %s\n", err)
		}
	}()
	return httpServer, nil
}

func stopEmbeddedServer(httpServer *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctx)
}
