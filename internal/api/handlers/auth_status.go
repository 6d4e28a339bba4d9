package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthStatusHandler reports whether the presented token is still valid and
// who it belongs to.
func AuthStatusHandler(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":  claims.UserID,
		"username": claims.Username,
		"role":     claims.Role,
	})
}
