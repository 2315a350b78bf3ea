package models

import "time"

type PrayerUpdate struct {
	Prayer_Update_ID int       `json:"prayerUpdateId" goqu:"skipinsert"`
	Prayer_Item_ID   int       `json:"prayerItemId"`
	Content          string    `json:"content"`
	Datetime_Create  time.Time `json:"datetimeCreate" goqu:"skipinsert"`
}

type PrayerUpdateCreate struct {
	Content string `json:"content" binding:"required"`
}
