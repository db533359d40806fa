// Package popup coordinates one authorization attempt between the
// caller and a transient authorization window, using the bridge hub as
// the only channel back from the window's callback.
package popup

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kayaomerr/ytsummarizer/bridge"
	"github.com/kayaomerr/ytsummarizer/youtube"
)

// DefaultPollInterval is how often the controller checks whether the
// user closed the authorization window. Worst-case cancellation
// detection latency equals this interval.
const DefaultPollInterval = time.Second

// Result is the payload of a successful authorization attempt.
type Result struct {
	AccessToken string
	Playlists   []youtube.Playlist
}

// Controller runs authorization attempts. A Controller is stateless
// between attempts; each BeginAuthorization call registers its own
// hub subscription and lifecycle poller and tears both down on every
// exit path.
type Controller struct {
	opener       WindowOpener
	hub          *bridge.Hub
	authorizeURL string
	pollInterval time.Duration
}

// ControllerOption modifies a Controller.
type ControllerOption func(*Controller)

// WithPollInterval overrides the window lifecycle poll interval.
func WithPollInterval(interval time.Duration) ControllerOption {
	return func(c *Controller) {
		c.pollInterval = interval
	}
}

func NewController(opener WindowOpener, hub *bridge.Hub, authorizeURL string, options ...ControllerOption) *Controller {
	c := &Controller{
		opener:       opener,
		hub:          hub,
		authorizeURL: authorizeURL,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// BeginAuthorization opens the authorization window and blocks until
// exactly one of the following happens:
//
//   - an auth-success bridge message arrives: returns the Result
//   - an auth-error bridge message arrives: returns ErrAuthorizationFailed
//   - the user closes the window first: returns ErrUserCancelled
//   - the window cannot be opened: returns ErrPopupBlocked
//   - ctx ends: returns ctx.Err()
//
// The poll timer and the hub subscription race; whichever fires first
// decides the outcome and the loser is suppressed by teardown.
func (c *Controller) BeginAuthorization(ctx context.Context) (*Result, error) {
	att := newAttempt()
	att.to(StateWindowOpening)

	// Subscribe before opening the window so a callback that completes
	// while Open is still in flight cannot slip past the listener.
	messages, unsubscribe := c.hub.Subscribe()
	defer unsubscribe()

	win, err := c.opener.Open(c.authorizeURL)
	if err != nil {
		att.to(StateRejected)
		return nil, fmt.Errorf("%w: %v", ErrPopupBlocked, err)
	}

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	att.to(StateAwaitingResult)
	log.Debug().Str("url", c.authorizeURL).Msg("authorization window opened")

	for {
		select {
		case <-ctx.Done():
			att.to(StateCancelled)
			_ = win.Close()
			return nil, ctx.Err()

		case msg := <-messages:
			switch msg.Kind {
			case bridge.KindAuthSuccess:
				att.to(StateResolved)
				return &Result{AccessToken: msg.AccessToken, Playlists: msg.Playlists}, nil
			case bridge.KindAuthError:
				att.to(StateRejected)
				_ = win.Close()
				return nil, fmt.Errorf("%w: %s", ErrAuthorizationFailed, msg.Error)
			}

		case <-ticker.C:
			if win.Closed() {
				att.to(StateCancelled)
				log.Debug().Msg("authorization window closed by user")
				return nil, ErrUserCancelled
			}
		}
	}
}
