package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goparts/internal/domain"
	"goparts/internal/http/middleware"
	"goparts/internal/session"
)

type createSessionRequest struct {
	Token string `json:"token" binding:"required"`
}

type sessionResponse struct {
	Valid bool   `json:"valid"`
	Role  string `json:"role,omitempty"`
}

// CreateSession stores an already issued token under a fresh session id and sets the cookie.
// Tokens the controller rejects are dropped again and answered with 401.
func (h *Handlers) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	token := strings.TrimSpace(req.Token)

	if old := middleware.GetSession(c); old != nil && old.ID() != "" {
		if err := h.Store.Delete(c.Request.Context(), old.ID()); err != nil {
			h.logger().Warn("drop previous session failed", zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
		}
	}

	fresh := session.New(c.Request.Context(), h.Store, "", h.logger())
	fresh.OnClear(func() { middleware.ClearSessionCookie(c, h.Cookie) })
	if err := fresh.Adopt(token); err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "could not store session", Err: err})
		return
	}
	if !h.Controller.IsSessionValid(fresh) {
		RespondDomainError(c, domain.Unauthorized("token rejected"))
		return
	}

	middleware.SetSessionCookie(c, h.Cookie, fresh.ID())
	role, _ := h.Controller.CurrentRole(fresh)
	c.JSON(http.StatusCreated, sessionResponse{Valid: true, Role: string(role)})
}

func (h *Handlers) GetSession(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess == nil || !h.Controller.IsSessionValid(sess) {
		c.JSON(http.StatusOK, sessionResponse{Valid: false})
		return
	}
	role, _ := h.Controller.CurrentRole(sess)
	c.JSON(http.StatusOK, sessionResponse{Valid: true, Role: string(role)})
}

// DeleteSession logs out: the stored token and the cookie are both removed.
func (h *Handlers) DeleteSession(c *gin.Context) {
	if sess := middleware.GetSession(c); sess != nil {
		sess.Clear()
	} else {
		middleware.ClearSessionCookie(c, h.Cookie)
	}
	c.Status(http.StatusNoContent)
}
