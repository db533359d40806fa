package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes - the authorization window's entry and return points
	RouteAuthAuthorize = "/api/auth/authorize"
	RouteAuthCallback  = "/api/auth/callback"

	// Content API Routes
	RouteAPIVideos      = "/api/videos"
	RouteAPITranscripts = "/api/transcripts"
	RouteAPISummarize   = "/api/summarize"

	// Records API Routes
	RouteAPIRecords = "/api/records"
)
