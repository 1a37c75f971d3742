package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	intconfig "goparts/internal/config"
	h "goparts/internal/http/handlers"
	"goparts/internal/http/middleware"
	"goparts/internal/metrics"
)

// NewRouter mounts the dashboard API. Every resource route is guarded by the policy entry of
// its dashboard page.
func NewRouter(env intconfig.Env, hs *h.Handlers, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		gin.Recovery(),
		middleware.CORS(env.CORSAllowedOrigins),
		metrics.Middleware(),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", metrics.Handler())

	ctrl, policy := hs.Controller, hs.Policy
	home := middleware.GuardPath(ctrl, policy, "/")
	byResource := middleware.GuardResource(ctrl, policy)

	api := r.Group("/api")
	api.Use(middleware.Session(hs.Store, hs.Cookie, logger))
	{
		api.GET("/health", hs.Health)
		api.GET("/routes", home, hs.Routes)

		api.POST("/session", hs.CreateSession)
		api.GET("/session", hs.GetSession)
		api.DELETE("/session", hs.DeleteSession)

		api.GET("/navigation", home, hs.Navigation)
		api.GET("/pagination", home, hs.Pagination)

		api.GET("/orders/summary", middleware.GuardPath(ctrl, policy, "/orders"), hs.OrderSummary)

		api.GET("/:resource", byResource, hs.ListResources)
		api.GET("/:resource/export.pdf", byResource, hs.ExportResource)
		api.GET("/:resource/:id", byResource, hs.GetResource)
		api.PUT("/:resource/:id/status", byResource, hs.UpdateResourceStatus)
		api.DELETE("/:resource/:id", byResource, hs.DeleteResource)
	}

	hs.SetRouter(r)
	return r
}
