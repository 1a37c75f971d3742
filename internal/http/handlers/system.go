package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"goparts/internal/db"
	"goparts/internal/domain"
)

func resourceTables() []string {
	out := []string{}
	for _, r := range domain.Resources() {
		out = append(out, string(r))
	}
	return out
}

// Health reports liveness, and database reachability when a database is configured.
func (h *Handlers) Health(c *gin.Context) {
	if h.DB == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.DB.PingContext(ctx); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
		return
	}

	payload := gin.H{"status": "ok", "database": "ok"}
	if missing := db.MissingTables(ctx, h.DB, resourceTables()); len(missing) > 0 {
		payload["missing_tables"] = missing
	}
	c.JSON(http.StatusOK, payload)
}

func (h *Handlers) Routes(c *gin.Context) {
	if h.engine == nil {
		respondError(c, http.StatusServiceUnavailable, "router_not_ready", "router is not ready")
		return
	}

	routes := h.engine.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method": rt.Method,
			"path":   rt.Path,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
