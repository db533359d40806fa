package server

import (
	"encoding/json"
	"net/http"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// errorResponse is the JSON error envelope shared by the API handlers.
type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	VideoID    string `json:"videoId,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}
