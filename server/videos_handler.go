package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/kayaomerr/ytsummarizer/youtube"
)

// VideosHandler lists one playlist's videos on behalf of the caller,
// using the caller's own access token.
func (s *Server) VideosHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playlistID := r.URL.Query().Get("playlistId")
		accessToken := r.URL.Query().Get("accessToken")

		if playlistID == "" || accessToken == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing parameters"})
			return
		}

		videos, err := s.deps.Videos.ListPlaylistItems(r.Context(), accessToken, playlistID)
		if err != nil {
			log.Error().Err(err).Str("playlistId", playlistID).Msg("playlist items fetch failed")
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
			return
		}

		if videos == nil {
			videos = []youtube.Video{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": videos})
	}
}
