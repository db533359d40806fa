package auth

import "errors"

var (
	// ErrMissingCode means the callback was invoked without a code or
	// error parameter. This is a protocol violation by the caller, not
	// a runtime failure, and is never relayed over the bridge.
	ErrMissingCode = errors.New("missing authorization code")

	// ErrExchangeFailed means the code-for-token exchange was rejected
	// by the token endpoint.
	ErrExchangeFailed = errors.New("token exchange failed")
)
