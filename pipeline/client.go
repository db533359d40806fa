package pipeline

import (
	"context"

	"github.com/kayaomerr/ytsummarizer/summarize"
	"github.com/kayaomerr/ytsummarizer/youtube"
)

// Client is the API surface the pipeline fetches through. The HTTP
// implementation lives in the apiclient package; tests use a fake.
type Client interface {
	// Videos lists one playlist's items.
	Videos(ctx context.Context, playlistID, accessToken string) ([]youtube.Video, error)

	// Transcript fetches the joined transcript text for one video.
	Transcript(ctx context.Context, videoID string) (string, error)

	// Summary generates one summary of a transcript at a level.
	Summary(ctx context.Context, transcript string, level summarize.Level) (string, error)
}
