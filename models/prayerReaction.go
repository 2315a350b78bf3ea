package models

import "time"

// PrayerReaction is one "I prayed for this" ledger entry. Reacted_At is
// stamped with the start of the calendar day the reaction was recorded on,
// so the unique constraint on (prayer_item_id, user_profile_id, reacted_at)
// enforces at most one reaction per user per item per day.
type PrayerReaction struct {
	Prayer_Reaction_ID int       `json:"prayerReactionId" goqu:"skipinsert"`
	Prayer_Item_ID     int       `json:"prayerItemId"`
	User_Profile_ID    int       `json:"userId"`
	Reacted_At         time.Time `json:"reactedAt"`
}

// Reactor is one historical reaction joined with the reacting user's
// display name. The same user appears once per day they reacted.
type Reactor struct {
	User_Profile_ID int       `json:"id"`
	Display_Name    string    `json:"name"`
	Reacted_At      time.Time `json:"prayedAt"`
}
