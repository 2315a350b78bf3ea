package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PrayCircle/initializers"
	"github.com/PrayCircle/models"
	"github.com/PrayCircle/services"
)

func reactionService() *services.ReactionService {
	return services.NewReactionService(initializers.DB, services.SystemClock{})
}

// RecordPrayer records that the caller prayed for an item today.
// POST /prayers/:prayer_id/pray
func RecordPrayer(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	itemID, err := strconv.Atoi(c.Param("prayer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer ID"})
		return
	}

	count, detail, err := reactionService().React(user.User_Profile_ID, itemID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	go services.NotifyAuthorOfReaction(detail, user.User_Profile_ID)

	c.JSON(http.StatusOK, gin.H{
		"message":        "Prayer recorded",
		"prayCount":      count,
		"hasPrayedToday": true,
	})
}

// GetPrayerReactors lists everyone who prayed for an item, most recent
// first, one entry per reaction.
// GET /prayers/:prayer_id/pray
func GetPrayerReactors(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	itemID, err := strconv.Atoi(c.Param("prayer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer ID"})
		return
	}

	reactors, err := reactionService().Reactors(user.User_Profile_ID, itemID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reactors": reactors})
}
