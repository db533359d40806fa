package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kayaomerr/ytsummarizer/records"
)

type recordCreateRequest struct {
	UserID string `json:"userId"`
	Field1 string `json:"field1"`
	Field2 string `json:"field2"`
}

// RecordCreateHandler inserts one record for a user.
func (s *Server) RecordCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "Invalid request body",
				Details: err.Error(),
			})
			return
		}

		if req.UserID == "" || req.Field1 == "" || req.Field2 == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "Missing required parameters",
				Details: "userId, field1 and field2 are required",
			})
			return
		}

		record := records.Record{
			ID:        uuid.NewString(),
			UserID:    req.UserID,
			Field1:    req.Field1,
			Field2:    req.Field2,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.deps.Records.Insert(r.Context(), record); err != nil {
			log.Error().Err(err).Msg("record insert failed")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to save record"})
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"record": record})
	}
}

// RecordListHandler returns one user's records, newest first.
func (s *Server) RecordListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("userId")
		if userID == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing userId"})
			return
		}

		rows, err := s.deps.Records.ListByUser(r.Context(), userID)
		if err != nil {
			log.Error().Err(err).Str("userId", userID).Msg("record list failed")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to list records"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"records": rows})
	}
}
