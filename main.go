package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/PrayCircle/controllers"
	"github.com/PrayCircle/initializers"
	"github.com/PrayCircle/middlewares"
	"github.com/PrayCircle/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectDB()
	services.InitPushNotificationService()
	services.InitEmailService()
}

func main() {
	router := gin.Default()

	getKey := func(c *gin.Context) string {
		if gin.Mode() == gin.DebugMode {
			return c.FullPath()
		}
		return c.ClientIP()
	}

	router.POST("/login", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.UserLogin)
	router.POST("/signup", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.UserSignup)
	router.GET("/ping", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.Ping)

	auth := router.Group("/")
	auth.Use(middlewares.CheckAuth)
	auth.Use(middlewares.RateLimitMiddleware(10, 10, getKey))
	{
		// user routes
		auth.GET("/users/me", controllers.GetUserProfile)
		auth.POST("/users/push-token", controllers.StorePushToken)

		// group routes
		auth.POST("/groups", controllers.CreateGroup)
		auth.GET("/groups/:group_profile_id", controllers.GetGroup)
		auth.GET("/groups/:group_profile_id/members", controllers.GetGroupMembers)
		auth.POST("/groups/:group_profile_id/invite", controllers.CreateGroupInviteCode)
		auth.POST("/groups/join", controllers.JoinGroup)

		// prayer item routes
		auth.GET("/groups/:group_profile_id/prayers", controllers.GetGroupPrayerItems)
		auth.POST("/groups/:group_profile_id/prayers", controllers.CreateGroupPrayerItem)
		auth.GET("/prayers/:prayer_id", controllers.GetPrayerItem)
		auth.PATCH("/prayers/:prayer_id/status", controllers.UpdatePrayerItemStatus)
		auth.DELETE("/prayers/:prayer_id", controllers.DeletePrayerItem)

		// reaction routes
		auth.POST("/prayers/:prayer_id/pray", controllers.RecordPrayer)
		auth.GET("/prayers/:prayer_id/pray", controllers.GetPrayerReactors)

		// progress update routes
		auth.GET("/prayers/:prayer_id/updates", controllers.GetPrayerUpdates)
		auth.POST("/prayers/:prayer_id/updates", controllers.CreatePrayerUpdate)
		auth.DELETE("/prayers/:prayer_id/updates/:update_id", controllers.DeletePrayerUpdate)
	}

	if err := router.Run(); err != nil {
		log.Fatal(err)
	}
}
