// Package auth implements the server side of the authorization
// handshake: exchanging the code delivered to the callback for an
// access token, pre-populating the session with one playlist listing,
// and folding the combined outcome into a single bridge message.
package auth

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/kayaomerr/ytsummarizer/bridge"
	"github.com/kayaomerr/ytsummarizer/internal/config"
	"github.com/kayaomerr/ytsummarizer/youtube"
)

// googleEndpoint is the fallback when OIDC discovery against the
// issuer fails; these are Google's published OAuth2 endpoints.
var googleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

// PlaylistLister is the one YouTube call the exchange performs after
// obtaining a token.
type PlaylistLister interface {
	ListMyPlaylists(ctx context.Context, accessToken string) ([]youtube.Playlist, error)
}

// ExchangeService performs the single-use, server-side half of an
// authorization attempt. It holds the confidential client credentials;
// they never reach the browser.
type ExchangeService struct {
	oauth     *oauth2.Config
	playlists PlaylistLister
}

// ExchangeServiceOption modifies an ExchangeService.
type ExchangeServiceOption func(*ExchangeService)

// WithEndpoint pins the OAuth2 endpoints, skipping OIDC discovery
// (primarily for testing against a local token server).
func WithEndpoint(endpoint oauth2.Endpoint) ExchangeServiceOption {
	return func(s *ExchangeService) {
		s.oauth.Endpoint = endpoint
	}
}

// NewExchangeService builds the service, discovering the provider's
// endpoints via OIDC and falling back to the static Google endpoints
// when discovery is unavailable (for example offline startup).
func NewExchangeService(ctx context.Context, cfg config.Config, playlists PlaylistLister, options ...ExchangeServiceOption) (*ExchangeService, error) {
	if playlists == nil {
		return nil, fmt.Errorf("[NewExchangeService] playlists lister is required")
	}

	s := &ExchangeService{
		oauth: &oauth2.Config{
			ClientID:     cfg.GetGoogleClientID(),
			ClientSecret: cfg.GetGoogleClientSecret(),
			RedirectURL:  cfg.GetAppURL() + "/api/auth/callback",
			Scopes:       cfg.GetOAuthScopes(),
			Endpoint:     oauth2.Endpoint{},
		},
		playlists: playlists,
	}
	for _, opt := range options {
		opt(s)
	}

	if s.oauth.Endpoint.TokenURL == "" {
		endpoint := googleEndpoint
		if provider, err := oidc.NewProvider(ctx, cfg.GetIssuerURL()); err == nil {
			endpoint = provider.Endpoint()
		} else {
			log.Warn().Err(err).Str("issuer", cfg.GetIssuerURL()).
				Msg("oidc discovery failed, using static google endpoints")
		}
		s.oauth.Endpoint = endpoint
	}

	return s, nil
}

// AuthCodeURL returns the consent-screen URL the authorization window
// navigates to.
func (s *ExchangeService) AuthCodeURL() string {
	return s.oauth.AuthCodeURL("",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange runs the code-for-token exchange followed by the playlist
// pre-population and returns exactly one terminal bridge message. Any
// failure in either step degrades to a single auth-error; a token
// obtained before a failed playlist fetch is discarded rather than
// surfaced as a partial success.
func (s *ExchangeService) Exchange(ctx context.Context, code string) bridge.Message {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		log.Error().Err(err).Msg("authorization code exchange failed")
		return bridge.Failure(fmt.Sprintf("%s: %v", ErrExchangeFailed, err))
	}

	playlists, err := s.playlists.ListMyPlaylists(ctx, token.AccessToken)
	if err != nil {
		log.Error().Err(err).Msg("playlist pre-population failed")
		return bridge.Failure(fmt.Sprintf("playlist listing failed: %v", err))
	}

	log.Info().Int("playlists", len(playlists)).Msg("authorization exchange completed")
	return bridge.Success(token.AccessToken, playlists)
}
