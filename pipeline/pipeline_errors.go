package pipeline

import "errors"

var (
	// ErrNotAuthenticated means a stage that needs an access token was
	// triggered without one.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrMissingTranscript means a summary was requested for a video
	// whose transcript has not been fetched successfully.
	ErrMissingTranscript = errors.New("no transcript fetched for video")
)
