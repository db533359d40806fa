package youtube

import "errors"

var (
	ErrUnauthorized        = errors.New("access token rejected")
	ErrNotFound            = errors.New("playlist not found")
	ErrUpstreamUnavailable = errors.New("youtube api unavailable")
)
