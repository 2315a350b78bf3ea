package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PrayCircle/services"
)

// respondDomainError maps a domain error kind to its HTTP status:
// NotFound 404, Forbidden 403, AlreadyReacted 409, everything else 500.
func respondDomainError(c *gin.Context, err error) {
	switch services.KindOf(err) {
	case services.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": services.PublicMessage(err)})
	case services.KindForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": services.PublicMessage(err)})
	case services.KindAlreadyReacted:
		c.JSON(http.StatusConflict, gin.H{"error": services.PublicMessage(err)})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.PublicMessage(err)})
	}
}
