package api

import (
	"strings"

	"stream-portal/model"
)

// SanitizeField trims value and treats blank strings and the literal text
// "nan" (any casing) as missing, returning nil for them. Otherwise the
// trimmed value keeps its original casing. Upstream exports routinely leak
// "NaN" cells into string columns.
func SanitizeField(value string) *string {
	cleaned := strings.ToLower(strings.TrimSpace(value))
	if cleaned == "" || cleaned == "nan" {
		return nil
	}
	trimmed := strings.TrimSpace(value)
	return &trimmed
}

// rawContentItem mirrors the loose upstream shape before sanitization.
type rawContentItem struct {
	ContentID              int    `json:"content_id"`
	Title                  string `json:"title"`
	SubTitle               string `json:"sub_title"`
	ThumbnailHorizontalURL string `json:"thumbnail_horizontal_url"`
	ThumbnailVerticalURL   string `json:"thumbnail_vertical_url"`
}

type rawEpisode struct {
	VideoID   int    `json:"video_id"`
	Title     string `json:"title"`
	SubTitle  string `json:"sub_title"`
	Sequence  int    `json:"sequence"`
	VideoLink string `json:"video_link"`
}

func sanitizeContentItem(item rawContentItem) model.ContentItem {
	title := item.Title
	if title == "" {
		title = "Untitled"
	}
	return model.ContentItem{
		ContentID:              item.ContentID,
		Title:                  title,
		SubTitle:               SanitizeField(item.SubTitle),
		ThumbnailHorizontalURL: SanitizeField(item.ThumbnailHorizontalURL),
		ThumbnailVerticalURL:   SanitizeField(item.ThumbnailVerticalURL),
	}
}

// sanitizeContentItems always returns a non-nil slice so absent upstream
// arrays serialize as [] rather than null.
func sanitizeContentItems(items []rawContentItem) []model.ContentItem {
	out := make([]model.ContentItem, 0, len(items))
	for _, item := range items {
		out = append(out, sanitizeContentItem(item))
	}
	return out
}

func sanitizeEpisode(ep rawEpisode) model.Episode {
	return model.Episode{
		VideoID:   ep.VideoID,
		Title:     ep.Title,
		SubTitle:  SanitizeField(ep.SubTitle),
		Sequence:  ep.Sequence,
		VideoLink: ep.VideoLink,
	}
}

// toBool coerces the upstream's loosely typed flag values (bool, 0/1,
// strings) the way JavaScript truthiness would.
func toBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	}
	return false
}
