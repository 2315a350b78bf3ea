package models

import "time"

// ViewAuthor is the viewer-relative author identity on a projected item.
// For an anonymous item viewed by anyone but its author, ID is nil and
// Name is the anonymous label.
type ViewAuthor struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}

// ViewItem is the view-safe projection of a prayer item. IsAuthor is
// advisory for clients rendering author-only controls; the server still
// enforces authorization on every mutation.
type ViewItem struct {
	PrayerItemID   int          `json:"prayerItemId"`
	GroupID        int          `json:"groupId"`
	Author         ViewAuthor   `json:"author"`
	Title          string       `json:"title"`
	Content        string       `json:"content"`
	Category       *string      `json:"category"`
	Status         PrayerStatus `json:"status"`
	IsAnonymous    bool         `json:"isAnonymous"`
	IsAuthor       bool         `json:"isAuthor"`
	HasPrayedToday *bool        `json:"hasPrayedToday,omitempty"`
	DatetimeCreate time.Time    `json:"datetimeCreate"`
	DatetimeUpdate time.Time    `json:"datetimeUpdate"`
}

// PageInfo is the pagination envelope returned alongside listed items.
type PageInfo struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

func NewPageInfo(total, page, limit int) PageInfo {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return PageInfo{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}
