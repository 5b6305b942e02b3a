package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterHomeRoutes registers the root route.
func RegisterHomeRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "asset-mgmt-app", "status": "running"})
	})
}
