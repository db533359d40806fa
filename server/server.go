package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/kayaomerr/ytsummarizer/bridge"
	"github.com/kayaomerr/ytsummarizer/internal/config"
	"github.com/kayaomerr/ytsummarizer/records"
	"github.com/kayaomerr/ytsummarizer/summarize"
	"github.com/kayaomerr/ytsummarizer/transcript"
	"github.com/kayaomerr/ytsummarizer/youtube"
)

// Exchanger is the authorization exchange the callback handler drives.
type Exchanger interface {
	AuthCodeURL() string
	Exchange(ctx context.Context, code string) bridge.Message
}

// PlaylistItemLister lists one playlist's videos.
type PlaylistItemLister interface {
	ListPlaylistItems(ctx context.Context, accessToken, playlistID string) ([]youtube.Video, error)
}

// TranscriptFetcher fetches one video's transcript.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) (*transcript.Transcript, error)
}

// Summarizer generates transcript summaries.
type Summarizer interface {
	Configured() bool
	Summarize(ctx context.Context, transcriptText string, level summarize.Level) (*summarize.Summary, error)
}

// Deps holds all collaborator dependencies for the Server.
type Deps struct {
	Exchange    Exchanger
	Hub         *bridge.Hub
	Videos      PlaylistItemLister
	Transcripts TranscriptFetcher
	Summarizer  Summarizer
	Records     records.Repo
}

type Server struct {
	env    string // Environment (e.g., "DEV", "production")
	mux    *http.ServeMux
	routes []string
	config config.Config
	deps   Deps
}

func New(cfg config.Config, deps Deps) (*Server, error) {
	if deps.Exchange == nil {
		return nil, fmt.Errorf("[server.New] Exchange is required")
	}
	if deps.Hub == nil {
		return nil, fmt.Errorf("[server.New] Hub is required")
	}
	if deps.Videos == nil {
		return nil, fmt.Errorf("[server.New] Videos lister is required")
	}
	if deps.Transcripts == nil {
		return nil, fmt.Errorf("[server.New] Transcripts fetcher is required")
	}
	if deps.Summarizer == nil {
		return nil, fmt.Errorf("[server.New] Summarizer is required")
	}
	if deps.Records == nil {
		return nil, fmt.Errorf("[server.New] Records repo is required")
	}

	s := &Server{
		mux:    http.NewServeMux(),
		config: cfg,
		deps:   deps,
		env:    cfg.GetEnv(),
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := MethodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}
