package model

// HistoryItem is a row in the user's watch-history listing.
type HistoryItem struct {
	ContentID              int     `json:"content_id"`
	Title                  string  `json:"title"`
	ThumbnailHorizontalURL *string `json:"thumbnail_horizontal_url"`
}

// PreferenceItem is a row in the watchlist or favorites listing.
type PreferenceItem struct {
	ContentID              int     `json:"content_id"`
	Title                  string  `json:"title"`
	ThumbnailHorizontalURL *string `json:"thumbnail_horizontal_url"`
}

// HistoryEntry records a playback event against the user's history.
type HistoryEntry struct {
	ContentID        int `json:"content_id"`
	VideoID          int `json:"video_id"`
	TimestampSeconds int `json:"timestamp_seconds"`
}

// Preference list names accepted by the toggle endpoint.
const (
	PreferenceWatchlist = "watchlist"
	PreferenceFavorites = "favorites"
)

// PreferenceToggle flips a content item in or out of a preference list.
type PreferenceToggle struct {
	ContentID      int    `json:"content_id"`
	PreferenceType string `json:"preference_type"`
}
