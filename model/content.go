package model

// ContentItem is a card-level content record shown in home rows and listings.
// Optional fields are nil when the upstream value was missing or invalid.
type ContentItem struct {
	ContentID              int     `json:"content_id"`
	Title                  string  `json:"title"`
	SubTitle               *string `json:"sub_title"`
	ThumbnailHorizontalURL *string `json:"thumbnail_horizontal_url"`
	ThumbnailVerticalURL   *string `json:"thumbnail_vertical_url"`
}

// CategoryContentItem is the shape returned by category and filter listings.
type CategoryContentItem = ContentItem

// HomeSections groups the four curated rows of the home page. Sections the
// upstream omits come back as empty slices, never nil.
type HomeSections struct {
	Slider      []ContentItem `json:"slider"`
	Trending    []ContentItem `json:"trending"`
	Recommended []ContentItem `json:"recommended"`
	NewReleases []ContentItem `json:"new_releases"`
}

// Episode is an individual video belonging to a content item, ordered by
// Sequence (1-based). The same shape describes a content item's current video.
type Episode struct {
	VideoID   int     `json:"video_id"`
	Title     string  `json:"title"`
	SubTitle  *string `json:"sub_title"`
	Sequence  int     `json:"sequence"`
	VideoLink string  `json:"video_link"`
}

// ContentDetail is the full record behind a content page. CurrentVideo is
// always dereferenceable: when the upstream omits it, the zero Episode
// (video id 0, empty link) stands in.
type ContentDetail struct {
	ContentID              int       `json:"content_id"`
	Title                  string    `json:"title"`
	SubTitle               *string   `json:"sub_title"`
	ThumbnailHorizontalURL *string   `json:"thumbnail_horizontal_url"`
	ThumbnailVerticalURL   *string   `json:"thumbnail_vertical_url"`
	Description            *string   `json:"description"`
	CurrentVideo           Episode   `json:"current_video"`
	Episodes               []Episode `json:"episodes"`
	IsLiked                bool      `json:"is_liked"`
	InWatchlist            bool      `json:"in_watchlist"`
}

// VideoDetail is a single-video record.
type VideoDetail struct {
	VideoID   int     `json:"video_id"`
	Title     string  `json:"title"`
	SubTitle  *string `json:"sub_title"`
	VideoLink string  `json:"video_link"`
	Sequence  int     `json:"sequence"`
}
