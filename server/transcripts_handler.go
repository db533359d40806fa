package server

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/kayaomerr/ytsummarizer/transcript"
)

type transcriptResponse struct {
	VideoID    string                `json:"videoId"`
	Transcript string                `json:"transcript"`
	Items      []transcript.Fragment `json:"items"`
	Success    bool                  `json:"success"`
}

// TranscriptsHandler fetches one video's transcript. Failures are
// scoped to the requested video and classified by the upstream
// client's sentinel errors, so one unavailable video never affects
// another.
func (s *Server) TranscriptsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videoID := r.URL.Query().Get("videoId")
		if videoID == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing videoId"})
			return
		}

		result, err := s.deps.Transcripts.Fetch(r.Context(), videoID)
		if err != nil {
			status, message, suggestion := classifyTranscriptError(err)
			log.Warn().Err(err).Str("videoId", videoID).Int("status", status).Msg("transcript fetch failed")
			writeJSON(w, status, errorResponse{
				Error:      message,
				Details:    err.Error(),
				VideoID:    videoID,
				Suggestion: suggestion,
			})
			return
		}

		writeJSON(w, http.StatusOK, transcriptResponse{
			VideoID:    videoID,
			Transcript: result.Text,
			Items:      result.Fragments,
			Success:    true,
		})
	}
}

// classifyTranscriptError maps the transcript client's sentinel errors
// to a status code, a short user-facing message, and a suggested next
// action.
func classifyTranscriptError(err error) (status int, message, suggestion string) {
	switch {
	case errors.Is(err, transcript.ErrNoTranscript):
		return http.StatusNotFound, "No transcript found for this video",
			"The video owner may have disabled transcripts"
	case errors.Is(err, transcript.ErrVideoUnavailable):
		return http.StatusNotFound, "Video unavailable or hidden",
			"Try another video"
	case errors.Is(err, transcript.ErrPrivateVideo):
		return http.StatusForbidden, "This video is private",
			"Try another video"
	default:
		return http.StatusInternalServerError, "Failed to fetch transcript",
			"Try another video"
	}
}
