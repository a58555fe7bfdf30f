package api

import (
	"fmt"
	"net/url"
	"strings"
)

// ThumbnailQuality selects a YouTube thumbnail tier.
type ThumbnailQuality string

const (
	ThumbnailDefault ThumbnailQuality = "default"
	ThumbnailMedium  ThumbnailQuality = "medium"
	ThumbnailHigh    ThumbnailQuality = "high"
	ThumbnailMaxRes  ThumbnailQuality = "maxres"
)

var thumbnailSuffixes = map[ThumbnailQuality]string{
	ThumbnailDefault: "default",
	ThumbnailMedium:  "mqdefault",
	ThumbnailHigh:    "hqdefault",
	ThumbnailMaxRes:  "maxresdefault",
}

// ExtractYouTubeID pulls the video ID out of a YouTube link in either the
// short form (https://youtu.be/ID) or the standard form
// (https://www.youtube.com/watch?v=ID). Any other link, or one that does
// not parse, yields "".
func ExtractYouTubeID(link string) string {
	if link == "" {
		return ""
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return ""
	}

	host := parsed.Hostname()
	if host == "youtu.be" {
		return strings.TrimPrefix(parsed.Path, "/")
	}
	if strings.Contains(host, "youtube.com") {
		return parsed.Query().Get("v")
	}
	return ""
}

// YouTubeThumbnail composes the canonical thumbnail image URL for a video
// link at the requested quality. An unrecognized quality falls back to
// maxres; "" when no video ID is derivable from the link.
func YouTubeThumbnail(link string, quality ThumbnailQuality) string {
	videoID := ExtractYouTubeID(link)
	if videoID == "" {
		return ""
	}

	suffix, ok := thumbnailSuffixes[quality]
	if !ok {
		suffix = thumbnailSuffixes[ThumbnailMaxRes]
	}

	return fmt.Sprintf("https://img.youtube.com/vi/%s/%s.jpg", videoID, suffix)
}
