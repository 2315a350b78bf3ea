package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PrayCircle/initializers"
	"github.com/PrayCircle/models"
	"github.com/PrayCircle/services"
)

func itemService() *services.PrayerItemService {
	return services.NewPrayerItemService(initializers.DB, services.SystemClock{})
}

// CreateGroupPrayerItem posts a new prayer item into a group.
// POST /groups/:group_profile_id/prayers
func CreateGroupPrayerItem(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	groupID, err := strconv.Atoi(c.Param("group_profile_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group profile ID"})
		return
	}

	var input models.PrayerItemCreate
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := itemService().Create(user.User_Profile_ID, groupID, input)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	// Push to the other members once the item is committed.
	go notifyNewItem(view.PrayerItemID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Prayer item created successfully",
		"prayer":  view,
	})
}

func notifyNewItem(itemID int) {
	if services.GetPushNotificationService() == nil {
		return
	}
	detail, found, err := itemService().FetchDetail(itemID)
	if err != nil || !found {
		return
	}
	services.NotifyGroupOfNewItem(detail)
}

// GetGroupPrayerItems lists a group's prayer items, newest first.
// GET /groups/:group_profile_id/prayers?page=&limit=
func GetGroupPrayerItems(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	groupID, err := strconv.Atoi(c.Param("group_profile_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group profile ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	views, pageInfo, err := itemService().ListByGroup(user.User_Profile_ID, groupID, page, limit)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prayers":    views,
		"total":      pageInfo.Total,
		"page":       pageInfo.Page,
		"limit":      pageInfo.Limit,
		"totalPages": pageInfo.TotalPages,
	})
}

// GetPrayerItem returns one prayer item projected for the caller.
// GET /prayers/:prayer_id
func GetPrayerItem(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	itemID, err := strconv.Atoi(c.Param("prayer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer ID"})
		return
	}

	view, err := itemService().Get(user.User_Profile_ID, itemID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdatePrayerItemStatus changes an item's status.
// PATCH /prayers/:prayer_id/status
func UpdatePrayerItemStatus(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	itemID, err := strconv.Atoi(c.Param("prayer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer ID"})
		return
	}

	var input models.PrayerStatusUpdate
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !input.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}

	view, err := itemService().UpdateStatus(user.User_Profile_ID, itemID, input.Status)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Status updated successfully",
		"prayer":  view,
	})
}

// DeletePrayerItem removes an item and everything attached to it.
// DELETE /prayers/:prayer_id
func DeletePrayerItem(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	itemID, err := strconv.Atoi(c.Param("prayer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer ID"})
		return
	}

	if err := itemService().Delete(user.User_Profile_ID, itemID); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prayer item deleted successfully"})
}
