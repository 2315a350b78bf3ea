package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PrayCircle/initializers"
	"github.com/PrayCircle/models"
	"github.com/PrayCircle/services"
)

func updateService() *services.PrayerUpdateService {
	return services.NewPrayerUpdateService(initializers.DB, services.SystemClock{})
}

// CreatePrayerUpdate posts a progress update on an item. Author-only.
// POST /prayers/:prayer_id/updates
func CreatePrayerUpdate(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	itemID, err := strconv.Atoi(c.Param("prayer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer ID"})
		return
	}

	var input models.PrayerUpdateCreate
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update, err := updateService().Create(user.User_Profile_ID, itemID, input)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Update posted successfully",
		"update":  update,
	})
}

// GetPrayerUpdates lists an item's progress updates, oldest first.
// GET /prayers/:prayer_id/updates
func GetPrayerUpdates(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	itemID, err := strconv.Atoi(c.Param("prayer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer ID"})
		return
	}

	updates, err := updateService().ListForItem(user.User_Profile_ID, itemID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updates": updates})
}

// DeletePrayerUpdate removes a progress update. Author-only.
// DELETE /prayers/:prayer_id/updates/:update_id
func DeletePrayerUpdate(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	itemID, err := strconv.Atoi(c.Param("prayer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer ID"})
		return
	}

	updateID, err := strconv.Atoi(c.Param("update_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update ID"})
		return
	}

	if err := updateService().Delete(user.User_Profile_ID, itemID, updateID); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Update deleted successfully"})
}
