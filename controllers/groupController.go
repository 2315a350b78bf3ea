package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PrayCircle/initializers"
	"github.com/PrayCircle/models"
	"github.com/PrayCircle/services"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// CreateGroup creates a group and makes its creator the group admin.
func CreateGroup(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var newGroup models.GroupCreate
	if err := c.BindJSON(&newGroup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group := models.GroupProfile{
		Group_Name:        newGroup.Group_Name,
		Group_Description: newGroup.Group_Description,
		Is_Active:         true,
		Created_By:        user.User_Profile_ID,
	}

	insert := initializers.DB.Insert("group_profile").
		Rows(group).
		Returning("group_profile_id")

	var insertedID int
	if _, err := insert.Executor().ScanVal(&insertedID); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create group"})
		return
	}

	group.Group_Profile_ID = insertedID

	membership := models.Membership{
		User_Profile_ID:  user.User_Profile_ID,
		Group_Profile_ID: insertedID,
		Group_Role:       models.RoleAdmin,
		Is_Active:        true,
	}

	memberInsert := initializers.DB.Insert("user_group").Rows(membership)
	if _, err := memberInsert.Executor().Exec(); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add creator to group"})
		return
	}

	c.JSON(http.StatusCreated, group)
}

// GetGroup returns a group's profile to one of its members.
func GetGroup(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	groupID, err := strconv.Atoi(c.Param("group_profile_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group profile ID"})
		return
	}

	var group models.GroupProfile
	found, err := initializers.DB.From("group_profile").
		Where(goqu.C("group_profile_id").Eq(groupID)).
		ScanStruct(&group)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch group"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	auth := services.NewAuthorizationService(initializers.DB)
	allowed, err := auth.CanView(user.User_Profile_ID, groupID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this group"})
		return
	}

	c.JSON(http.StatusOK, group)
}

// GetGroupMembers lists a group's active members with their roles.
func GetGroupMembers(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	groupID, err := strconv.Atoi(c.Param("group_profile_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group profile ID"})
		return
	}

	auth := services.NewAuthorizationService(initializers.DB)
	allowed, err := auth.CanView(user.User_Profile_ID, groupID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this group"})
		return
	}

	var members []models.GroupMember
	err = initializers.DB.From("user_group").
		Select(
			goqu.I("user_profile.user_profile_id"),
			goqu.I("user_profile.display_name"),
			goqu.I("user_group.group_role"),
			goqu.I("user_group.datetime_create"),
		).
		InnerJoin(
			goqu.T("user_profile"),
			goqu.On(goqu.Ex{"user_group.user_profile_id": goqu.I("user_profile.user_profile_id")}),
		).
		Where(
			goqu.C("group_profile_id").Table("user_group").Eq(groupID),
			goqu.C("is_active").Table("user_group").IsTrue(),
		).
		ScanStructs(&members)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch group members"})
		return
	}

	if members == nil {
		members = []models.GroupMember{}
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}

// CreateGroupInviteCode generates a single-use invite code for the group.
// Group admins only. If the request names an email address, the code is
// also mailed there.
func CreateGroupInviteCode(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	groupID, err := strconv.Atoi(c.Param("group_profile_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group profile ID"})
		return
	}

	var group models.GroupProfile
	found, err := initializers.DB.From("group_profile").
		Where(goqu.C("group_profile_id").Eq(groupID)).
		ScanStruct(&group)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch group"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	auth := services.NewAuthorizationService(initializers.DB)
	membership, isMember, err := auth.GetMembership(user.User_Profile_ID, groupID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if !isMember || membership.Group_Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only group admins can create invites"})
		return
	}

	var inviteData models.GroupInviteCreate
	if c.Request.ContentLength > 0 {
		if err := c.BindJSON(&inviteData); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	invite := models.GroupInvite{
		Group_Profile_ID: groupID,
		Invite_Code:      generateInviteCode(groupID),
		Created_By:       user.User_Profile_ID,
		Datetime_Expires: time.Now().AddDate(0, 0, 7),
		Is_Active:        true,
	}

	insert := initializers.DB.Insert("group_invite").
		Rows(invite).
		Returning("invite_code")

	var insertedCode string
	if _, err := insert.Executor().ScanVal(&insertedCode); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invite code"})
		return
	}

	if inviteData.Email != "" {
		if emailSvc := services.GetEmailService(); emailSvc != nil {
			if err := emailSvc.SendGroupInviteEmail(inviteData.Email, group.Group_Name, user.Display_Name, insertedCode); err != nil {
				log.Printf("Failed to email invite code: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"inviteCode": insertedCode, "expiresAt": invite.Datetime_Expires})
}

// JoinGroup redeems an invite code, adding the caller as a member.
func JoinGroup(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var joinRequest models.GroupJoin
	if err := c.ShouldBindJSON(&joinRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var invite models.GroupInvite
	found, err := initializers.DB.From("group_invite").
		Where(goqu.Ex{"invite_code": joinRequest.Invite_Code}).
		ScanStruct(&invite)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invite"})
		return
	}
	if !found || !invite.Is_Active {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid invite code"})
		return
	}
	if invite.Datetime_Expires.Before(time.Now()) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invite code has expired"})
		return
	}

	auth := services.NewAuthorizationService(initializers.DB)
	_, alreadyMember, err := auth.GetMembership(user.User_Profile_ID, invite.Group_Profile_ID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if alreadyMember {
		c.JSON(http.StatusConflict, gin.H{"error": "You are already in this group"})
		return
	}

	membership := models.Membership{
		User_Profile_ID:  user.User_Profile_ID,
		Group_Profile_ID: invite.Group_Profile_ID,
		Group_Role:       models.RoleMember,
		Is_Active:        true,
	}

	insert := initializers.DB.Insert("user_group").Rows(membership)
	if _, err := insert.Executor().Exec(); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join group"})
		return
	}

	update := initializers.DB.Update("group_invite").
		Set(goqu.Record{"is_active": false}).
		Where(goqu.C("group_invite_id").Eq(invite.Group_Invite_ID))

	if _, err := update.Executor().Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark invite as used"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Successfully joined group %d", invite.Group_Profile_ID)})
}

func generateInviteCode(id int) string {
	randomBytes := make([]byte, 2)
	if _, err := rand.Read(randomBytes); err != nil {
		panic(err)
	}

	return strings.ToUpper(fmt.Sprintf("%04d-%s", id, hex.EncodeToString(randomBytes)))
}
