package summarize

import "errors"

var (
	// ErrInvalidLevel means the requested level is not one of short,
	// medium, long.
	ErrInvalidLevel = errors.New("invalid summary level")

	// ErrMissingCredential means no OpenRouter API key is configured.
	ErrMissingCredential = errors.New("openrouter api key not configured")

	// ErrUpstreamUnavailable covers transport failures and non-2xx
	// responses from OpenRouter.
	ErrUpstreamUnavailable = errors.New("summarization upstream unavailable")

	// ErrInvalidResponse means OpenRouter answered 200 with a body
	// missing the expected completion.
	ErrInvalidResponse = errors.New("invalid summarization response")
)
