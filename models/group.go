package models

import "time"

type GroupProfile struct {
	Group_Profile_ID  int       `json:"groupProfileId" goqu:"skipinsert"`
	Group_Name        string    `json:"groupName"`
	Group_Description string    `json:"groupDescription"`
	Is_Active         bool      `json:"isActive"`
	Created_By        int       `json:"createdBy"`
	Datetime_Create   time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update   time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type GroupCreate struct {
	Group_Name        string `json:"groupName" binding:"required"`
	Group_Description string `json:"groupDescription"`
}

type GroupJoin struct {
	Invite_Code string `json:"inviteCode" binding:"required"`
}

type GroupInvite struct {
	Group_Invite_ID  int       `json:"groupInviteId" goqu:"skipinsert"`
	Group_Profile_ID int       `json:"groupProfileId"`
	Invite_Code      string    `json:"inviteCode"`
	Created_By       int       `json:"createdBy"`
	Datetime_Create  time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Expires time.Time `json:"datetimeExpires"`
	Is_Active        bool      `json:"isActive"`
}

type GroupInviteCreate struct {
	// Optional: when set, the invite code is also emailed to this address.
	Email string `json:"email"`
}
