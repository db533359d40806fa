package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/kayaomerr/ytsummarizer/bridge"
)

// AuthorizeHandler redirects the freshly opened authorization window
// to the identity provider's consent screen.
func (s *Server) AuthorizeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.deps.Exchange.AuthCodeURL(), http.StatusFound)
	}
}

// AuthCallbackHandler receives the identity provider's redirect inside
// the authorization window, runs the exchange, and returns the relay
// page that delivers exactly one bridge message to the opener. The
// message is also published on the in-process hub for controllers
// running in the same process as the server.
func (s *Server) AuthCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		errorParam := r.URL.Query().Get("error")

		// Consent denied upstream: relay the error without touching
		// the token endpoint.
		if errorParam != "" {
			msg := bridge.Failure(errorParam)
			s.deps.Hub.Deliver(msg)
			if err := renderRelayPage(w, msg); err != nil {
				log.Error().Err(err).Msg("render relay page")
			}
			return
		}

		// No code and no error is a protocol violation by whoever
		// loaded the URL; there is no opener relationship to relay to.
		if code == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error: "Missing authorization code",
			})
			return
		}

		msg := s.deps.Exchange.Exchange(r.Context(), code)
		s.deps.Hub.Deliver(msg)
		if err := renderRelayPage(w, msg); err != nil {
			log.Error().Err(err).Msg("render relay page")
		}
	}
}
