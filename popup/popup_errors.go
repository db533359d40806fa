package popup

import "errors"

var (
	// ErrPopupBlocked means the authorization window could not be
	// opened at all.
	ErrPopupBlocked = errors.New("authorization window blocked")

	// ErrUserCancelled means the user closed the authorization window
	// before a terminal bridge message arrived.
	ErrUserCancelled = errors.New("authorization cancelled by user")

	// ErrAuthorizationFailed means the authorization window reported a
	// failure via an auth-error bridge message. The wrapped error text
	// carries the upstream reason.
	ErrAuthorizationFailed = errors.New("authorization failed")
)
