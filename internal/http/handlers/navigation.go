package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"goparts/internal/access"
	"goparts/internal/http/middleware"
)

// Navigation returns the menu entries visible to the signed-in role.
func (h *Handlers) Navigation(c *gin.Context) {
	role := middleware.GetRole(c)
	c.JSON(http.StatusOK, gin.H{
		"role": role,
		"menu": h.Policy.Menu(access.Role(role)),
	})
}
