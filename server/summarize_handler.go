package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/kayaomerr/ytsummarizer/summarize"
)

type summarizeRequest struct {
	Transcript string `json:"transcript"`
	Level      string `json:"level"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
	Level   string `json:"level"`
	Success bool   `json:"success"`
}

// SummarizeHandler generates one summary of a transcript. All request
// validation happens before the upstream call: an invalid level or a
// missing field never reaches the summarization API.
func (s *Server) SummarizeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
			return
		}

		var req summarizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "Invalid request body",
				Details: err.Error(),
			})
			return
		}

		if req.Transcript == "" || req.Level == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "Missing required parameters",
				Details: "transcript and level are required",
			})
			return
		}

		level, err := summarize.ParseLevel(req.Level)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "Invalid level",
				Details: "level must be one of: short, medium, long",
			})
			return
		}

		if !s.deps.Summarizer.Configured() {
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error:   "OpenRouter API key not configured",
				Details: "OPENROUTER_API_KEY environment variable is missing",
			})
			return
		}

		summary, err := s.deps.Summarizer.Summarize(r.Context(), req.Transcript, level)
		if err != nil {
			log.Error().Err(err).Str("level", req.Level).Msg("summarization failed")
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error:      "Failed to generate summary",
				Details:    err.Error(),
				Suggestion: "Please try again",
			})
			return
		}

		writeJSON(w, http.StatusOK, summarizeResponse{
			Summary: summary.Text,
			Level:   string(summary.Level),
			Success: true,
		})
	}
}
