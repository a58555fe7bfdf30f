package api

import (
	"context"
	"fmt"
	"net/url"

	"stream-portal/model"
)

type rawHomeSections struct {
	Slider      []rawContentItem `json:"slider"`
	Trending    []rawContentItem `json:"trending"`
	Recommended []rawContentItem `json:"recommended"`
	NewReleases []rawContentItem `json:"new_releases"`
}

type rawContentDetail struct {
	ContentID              int          `json:"content_id"`
	Title                  string       `json:"title"`
	SubTitle               string       `json:"sub_title"`
	ThumbnailHorizontalURL string       `json:"thumbnail_horizontal_url"`
	ThumbnailVerticalURL   string       `json:"thumbnail_vertical_url"`
	Description            string       `json:"description"`
	CurrentVideo           *rawEpisode  `json:"current_video"`
	Episodes               []rawEpisode `json:"episodes"`
	IsLiked                any          `json:"is_liked"`
	InWatchlist            any          `json:"in_watchlist"`
}

type rawMasterItem struct {
	MasterID     int     `json:"master_id"`
	Title        string  `json:"title"`
	Code         *string `json:"code"`
	ContentCount int     `json:"content_count"`
}

// FetchHomeSections returns the four curated home rows. Sections missing
// from the upstream payload come back as empty slices.
func (c *Client) FetchHomeSections(ctx context.Context) (model.HomeSections, error) {
	var raw rawHomeSections
	if err := c.getJSON(ctx, "/content/home-sections", nil, &raw); err != nil {
		return model.HomeSections{}, err
	}

	return model.HomeSections{
		Slider:      sanitizeContentItems(raw.Slider),
		Trending:    sanitizeContentItems(raw.Trending),
		Recommended: sanitizeContentItems(raw.Recommended),
		NewReleases: sanitizeContentItems(raw.NewReleases),
	}, nil
}

// FetchContentDetail returns the full record for a content item. When the
// upstream omits current_video, the zero Episode stands in so callers never
// need a nil check.
func (c *Client) FetchContentDetail(ctx context.Context, contentID int) (model.ContentDetail, error) {
	var raw rawContentDetail
	if err := c.getJSON(ctx, fmt.Sprintf("/content/%d", contentID), nil, &raw); err != nil {
		return model.ContentDetail{}, err
	}

	title := raw.Title
	if title == "" {
		title = "Untitled"
	}

	detail := model.ContentDetail{
		ContentID:              raw.ContentID,
		Title:                  title,
		SubTitle:               SanitizeField(raw.SubTitle),
		ThumbnailHorizontalURL: SanitizeField(raw.ThumbnailHorizontalURL),
		ThumbnailVerticalURL:   SanitizeField(raw.ThumbnailVerticalURL),
		Description:            SanitizeField(raw.Description),
		Episodes:               make([]model.Episode, 0, len(raw.Episodes)),
		IsLiked:                toBool(raw.IsLiked),
		InWatchlist:            toBool(raw.InWatchlist),
	}

	if raw.CurrentVideo != nil {
		detail.CurrentVideo = sanitizeEpisode(*raw.CurrentVideo)
	}

	for _, ep := range raw.Episodes {
		detail.Episodes = append(detail.Episodes, sanitizeEpisode(ep))
	}

	return detail, nil
}

// FetchVideoDetail returns a single video record.
func (c *Client) FetchVideoDetail(ctx context.Context, videoID int) (model.VideoDetail, error) {
	var raw rawEpisode
	if err := c.getJSON(ctx, fmt.Sprintf("/content/video/%d", videoID), nil, &raw); err != nil {
		return model.VideoDetail{}, err
	}

	return model.VideoDetail{
		VideoID:   raw.VideoID,
		Title:     raw.Title,
		SubTitle:  SanitizeField(raw.SubTitle),
		VideoLink: raw.VideoLink,
		Sequence:  raw.Sequence,
	}, nil
}

// FetchCategories returns the category master list. content_count defaults
// to 0 when the upstream omits it.
func (c *Client) FetchCategories(ctx context.Context) ([]model.MasterCategory, error) {
	var raw []rawMasterItem
	if err := c.getJSON(ctx, "/master/categories", nil, &raw); err != nil {
		return nil, err
	}

	categories := make([]model.MasterCategory, 0, len(raw))
	for _, item := range raw {
		categories = append(categories, model.MasterCategory{
			MasterID:     item.MasterID,
			Title:        item.Title,
			Code:         item.Code,
			ContentCount: item.ContentCount,
		})
	}
	return categories, nil
}

// FetchAudiences returns the audience master list.
func (c *Client) FetchAudiences(ctx context.Context) ([]model.MasterAudience, error) {
	var raw []rawMasterItem
	if err := c.getJSON(ctx, "/master/audiences", nil, &raw); err != nil {
		return nil, err
	}

	audiences := make([]model.MasterAudience, 0, len(raw))
	for _, item := range raw {
		audiences = append(audiences, model.MasterAudience{
			MasterID: item.MasterID,
			Title:    item.Title,
			Code:     item.Code,
		})
	}
	return audiences, nil
}

// FetchLanguages returns the language master list.
func (c *Client) FetchLanguages(ctx context.Context) ([]model.MasterLanguage, error) {
	var raw []rawMasterItem
	if err := c.getJSON(ctx, "/master/languages", nil, &raw); err != nil {
		return nil, err
	}

	languages := make([]model.MasterLanguage, 0, len(raw))
	for _, item := range raw {
		languages = append(languages, model.MasterLanguage{
			MasterID: item.MasterID,
			Title:    item.Title,
			Code:     item.Code,
		})
	}
	return languages, nil
}

// FetchCategoryContent lists the content belonging to one category.
func (c *Client) FetchCategoryContent(ctx context.Context, categoryID int) ([]model.CategoryContentItem, error) {
	var raw []rawContentItem
	if err := c.getJSON(ctx, fmt.Sprintf("/content/categories/%d", categoryID), nil, &raw); err != nil {
		return nil, err
	}
	return sanitizeContentItems(raw), nil
}

// FetchFilteredContent posts a filter request and sanitizes the results.
func (c *Client) FetchFilteredContent(ctx context.Context, filter model.FilterRequest) ([]model.CategoryContentItem, error) {
	var raw []rawContentItem
	if err := c.postJSON(ctx, "/content/filter", filter, nil, &raw); err != nil {
		return nil, err
	}
	return sanitizeContentItems(raw), nil
}

// FetchContentByFilter builds a filter request with exactly one populated
// key matching filterType and a single master reference, then delegates to
// FetchFilteredContent.
func (c *Client) FetchContentByFilter(ctx context.Context, filterType model.FilterType, masterID int) ([]model.CategoryContentItem, error) {
	var filter model.FilterRequest
	ref := []model.FilterRef{{MasterID: masterID}}

	switch filterType {
	case model.FilterCategory:
		filter.Categories = ref
	case model.FilterAudience:
		filter.Audiences = ref
	case model.FilterLanguage:
		filter.Languages = ref
	}

	return c.FetchFilteredContent(ctx, filter)
}

// SearchContent runs a free-text search over the catalog.
func (c *Client) SearchContent(ctx context.Context, query string) ([]model.ContentItem, error) {
	var raw []rawContentItem
	path := "/content/search?q=" + url.QueryEscape(query)
	if err := c.getJSON(ctx, path, nil, &raw); err != nil {
		return nil, err
	}
	return sanitizeContentItems(raw), nil
}
