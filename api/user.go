package api

import (
	"context"

	"stream-portal/model"
)

// FetchProfile returns the authenticated user's account summary.
func (c *Client) FetchProfile(ctx context.Context) (model.UserSummary, error) {
	var user model.UserSummary
	err := c.getJSON(ctx, "/users/me", c.authHeaders(), &user)
	return user, err
}

// FetchHistory returns the user's watch history, newest first per upstream
// ordering.
func (c *Client) FetchHistory(ctx context.Context) ([]model.HistoryItem, error) {
	items := []model.HistoryItem{}
	err := c.getJSON(ctx, "/user/history", c.authHeaders(), &items)
	return items, err
}

// RecordHistory reports a playback event. The server owns dedup and
// ordering; callers treat failures as non-critical and typically ignore
// the returned error.
func (c *Client) RecordHistory(ctx context.Context, entry model.HistoryEntry) error {
	return c.postJSON(ctx, "/user/history", entry, c.authHeaders(), nil)
}

// FetchWatchlist returns the user's bookmarked content.
func (c *Client) FetchWatchlist(ctx context.Context) ([]model.PreferenceItem, error) {
	items := []model.PreferenceItem{}
	err := c.getJSON(ctx, "/user/preferences/watchlist", c.authHeaders(), &items)
	return items, err
}

// FetchFavorites returns the user's favorite content.
func (c *Client) FetchFavorites(ctx context.Context) ([]model.PreferenceItem, error) {
	items := []model.PreferenceItem{}
	err := c.getJSON(ctx, "/user/preferences/favorites", c.authHeaders(), &items)
	return items, err
}

// TogglePreference flips a content item in or out of the named preference
// list. Not idempotent: a doubled call toggles twice.
func (c *Client) TogglePreference(ctx context.Context, toggle model.PreferenceToggle) error {
	return c.postJSON(ctx, "/user/preferences/toggle", toggle, c.authHeaders(), nil)
}
