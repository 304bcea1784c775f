package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Flight Booking API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
