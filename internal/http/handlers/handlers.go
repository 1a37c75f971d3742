package handlers

import (
	"context"
	"database/sql"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goparts/internal/access"
	"goparts/internal/domain/models"
	"goparts/internal/http/middleware"
	"goparts/internal/services"
	"goparts/internal/session"
)

// OrderSummarizer is the read model behind the orders dashboard widget.
type OrderSummarizer interface {
	StatusSummary(ctx context.Context) ([]models.OrderStatusCount, error)
}

// Handlers carries the collaborators shared by every endpoint.
type Handlers struct {
	DB         *sql.DB
	Store      session.Store
	Controller *access.Controller
	Policy     *access.Policy
	Resources  services.ResourceStore
	Orders     OrderSummarizer
	Cookie     middleware.CookieConfig
	Neighbors  int
	Logger     *zap.Logger

	engine *gin.Engine
}

// SetRouter stores the active gin engine for /api/routes.
func (h *Handlers) SetRouter(r *gin.Engine) { h.engine = r }

func (h *Handlers) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}

func (h *Handlers) listing(c *gin.Context) services.ListingService {
	return services.ListingService{
		Store:     h.Resources,
		Logger:    h.logger(),
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handlers) export(c *gin.Context) services.ExportService {
	return services.ExportService{
		Store:     h.Resources,
		Logger:    h.logger(),
		RequestID: middleware.GetRequestID(c),
	}
}
