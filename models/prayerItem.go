package models

import "time"

// PrayerStatus is the closed set of states a prayer item can be in.
// Any status may replace any other; there is no forward-only ordering.
type PrayerStatus string

const (
	StatusPraying       PrayerStatus = "praying"
	StatusPartialAnswer PrayerStatus = "partial_answer"
	StatusAnswered      PrayerStatus = "answered"
)

func (s PrayerStatus) Valid() bool {
	switch s {
	case StatusPraying, StatusPartialAnswer, StatusAnswered:
		return true
	}
	return false
}

type PrayerItem struct {
	Prayer_Item_ID   int          `json:"prayerItemId" goqu:"skipinsert"`
	Group_Profile_ID int          `json:"groupId"`
	Author_ID        int          `json:"authorId"`
	Title            string       `json:"title"`
	Content          string       `json:"content"`
	Category         *string      `json:"category"`
	Status           PrayerStatus `json:"status"`
	Is_Anonymous     bool         `json:"isAnonymous"`
	Datetime_Create  time.Time    `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update  time.Time    `json:"datetimeUpdate" goqu:"skipinsert"`
}

// PrayerItemDetail is a prayer item joined with its author's display name.
type PrayerItemDetail struct {
	Prayer_Item_ID   int          `json:"prayerItemId"`
	Group_Profile_ID int          `json:"groupId"`
	Author_ID        int          `json:"authorId"`
	Author_Name      string       `json:"authorName"`
	Title            string       `json:"title"`
	Content          string       `json:"content"`
	Category         *string      `json:"category"`
	Status           PrayerStatus `json:"status"`
	Is_Anonymous     bool         `json:"isAnonymous"`
	Datetime_Create  time.Time    `json:"datetimeCreate"`
	Datetime_Update  time.Time    `json:"datetimeUpdate"`
}

type PrayerItemCreate struct {
	Title        string  `json:"title" binding:"required"`
	Content      string  `json:"content" binding:"required"`
	Category     *string `json:"category"`
	Is_Anonymous *bool   `json:"isAnonymous"`
}

type PrayerStatusUpdate struct {
	Status PrayerStatus `json:"status" binding:"required"`
}
