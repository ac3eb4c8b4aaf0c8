package api

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// RegisterAutomationRoutes registers the cycle trigger. POST is the manual
// trigger; GET exists for external cron services and is gated by a shared
// secret header in production.
func RegisterAutomationRoutes(router *gin.Engine, runner Runner) {
	router.POST("/api/automation/run", func(c *gin.Context) {
		runAutomation(c, runner)
	})
	router.GET("/api/automation/run", func(c *gin.Context) {
		if !cronAuthorized(c) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "unauthorized",
			})
			return
		}
		runAutomation(c, runner)
	})
}

// cronAuthorized gates the GET trigger in production: the X-Cron-Trigger
// header must match a non-empty CRON_SECRET. Outside production the route is
// open for local testing.
func cronAuthorized(c *gin.Context) bool {
	if os.Getenv("APP_ENV") != "production" {
		return true
	}
	secret := os.Getenv("CRON_SECRET")
	return secret != "" && c.GetHeader("X-Cron-Trigger") == secret
}

func runAutomation(c *gin.Context, runner Runner) {
	log.Println("automation cycle triggered over HTTP")

	summary, err := runner.Run(c.Request.Context())
	if err != nil {
		log.Printf("automation cycle failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"result": summary,
	})
}
