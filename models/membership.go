package models

import "time"

// GroupRole is the closed set of roles a user can hold within a group.
// An admin implicitly has every member permission for that group.
type GroupRole string

const (
	RoleMember GroupRole = "member"
	RoleAdmin  GroupRole = "admin"
)

func (r GroupRole) Valid() bool {
	return r == RoleMember || r == RoleAdmin
}

type Membership struct {
	User_Group_ID    int       `json:"userGroupId" goqu:"skipinsert"`
	User_Profile_ID  int       `json:"userId"`
	Group_Profile_ID int       `json:"groupId"`
	Group_Role       GroupRole `json:"role"`
	Is_Active        bool      `json:"isActive"`
	Datetime_Create  time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update  time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

// GroupMember is the membership row joined with the member's profile,
// as returned by the group members listing.
type GroupMember struct {
	User_Profile_ID int       `json:"userProfileId"`
	Display_Name    string    `json:"displayName"`
	Group_Role      GroupRole `json:"role"`
	Datetime_Create time.Time `json:"joinedAt"`
}
