package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goparts/internal/session"
)

const sessionKey = "session"

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge int // seconds
}

func (cfg CookieConfig) name() string {
	if cfg.Name == "" {
		return "gp_session"
	}
	return cfg.Name
}

// Session resolves the session cookie into a per-request session.Session. Clearing the
// session also expires the cookie.
func Session(store session.Store, cfg CookieConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(cfg.name())
		sess := session.New(c.Request.Context(), store, id, logger)
		sess.OnClear(func() { ClearSessionCookie(c, cfg) })
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// GetSession returns the session bound by Session, or nil outside of it.
func GetSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}

func SetSessionCookie(c *gin.Context, cfg CookieConfig, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.name(), id, cfg.MaxAge, "/", "", cfg.Secure, true)
}

func ClearSessionCookie(c *gin.Context, cfg CookieConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.name(), "", -1, "/", "", cfg.Secure, true)
}
