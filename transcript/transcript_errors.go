package transcript

import "errors"

var (
	// ErrNoTranscript means the video exists but has no transcript,
	// either because captions are disabled or none were generated.
	ErrNoTranscript = errors.New("no transcript available")

	// ErrVideoUnavailable means the video does not exist or was removed.
	ErrVideoUnavailable = errors.New("video unavailable")

	// ErrPrivateVideo means the video is private and its transcript
	// cannot be read.
	ErrPrivateVideo = errors.New("private video")

	// ErrUpstreamUnavailable covers transport failures and unexpected
	// upstream responses.
	ErrUpstreamUnavailable = errors.New("transcript upstream unavailable")
)
