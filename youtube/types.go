package youtube

// Playlist is one playlist owned by the authenticated user. The set of
// playlists is fetched once during login and replaced wholesale on each
// successful login, never merged.
type Playlist struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ItemCount int    `json:"itemCount"`
}

// Video is a single playlist item. Videos are fetched per playlist
// selection and held only in memory.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}
