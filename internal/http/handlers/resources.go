package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"goparts/internal/domain"
	"goparts/internal/http/middleware"
	"goparts/internal/pagination"
)

const requestTimeout = 5 * time.Second

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handlers) resource(c *gin.Context) (domain.Resource, bool) {
	r, err := domain.ParseResource(c.Param("resource"))
	if err != nil {
		RespondDomainError(c, err)
		return "", false
	}
	return r, true
}

// pageParams reads page and page_size; the default size comes from the route kind.
func pageParams(c *gin.Context) (int, int) {
	def := 10
	if route, ok := middleware.GetRoute(c); ok {
		def = route.Kind.Info().PageSize
	}
	q := c.Request.URL.Query()
	return pagination.PageFromQuery(q, pagination.PageKey), pagination.PageSizeFromQuery(q, def)
}

func (h *Handlers) ListResources(c *gin.Context) {
	resource, ok := h.resource(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	out, err := h.listing(c).List(ctx, resource, page, pageSize, h.Neighbors)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handlers) GetResource(c *gin.Context) {
	resource, ok := h.resource(c)
	if !ok {
		return
	}
	id, err := paramID(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	item, err := h.listing(c).Get(ctx, resource, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (h *Handlers) UpdateResourceStatus(c *gin.Context) {
	resource, ok := h.resource(c)
	if !ok {
		return
	}
	id, err := paramID(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	var req updateStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.listing(c).UpdateStatus(ctx, resource, id, req.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated", "id": id})
}

func (h *Handlers) DeleteResource(c *gin.Context) {
	resource, ok := h.resource(c)
	if !ok {
		return
	}
	id, err := paramID(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.listing(c).Delete(ctx, resource, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportResource returns the requested page as an inline PDF.
func (h *Handlers) ExportResource(c *gin.Context) {
	resource, ok := h.resource(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	pdfBytes, filename, err := h.export(c).PageReport(ctx, resource, page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *Handlers) OrderSummary(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	summary, err := h.Orders.StatusSummary(ctx)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}
