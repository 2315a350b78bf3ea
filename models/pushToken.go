package models

type PushToken struct {
	Push_Token_ID   int    `json:"pushTokenId" goqu:"skipinsert"`
	User_Profile_ID int    `json:"userProfileId"`
	Push_Token      string `json:"pushToken"`
	Platform        string `json:"platform"`
}

type PushTokenCreate struct {
	Push_Token string `json:"pushToken" binding:"required"`
	Platform   string `json:"platform" binding:"required"`
}
