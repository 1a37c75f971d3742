package access

import (
	"time"

	"go.uber.org/zap"

	"goparts/internal/metrics"
)

// TokenSource is the session storage seen by the controller: one read and an explicit
// clear on expiry.
type TokenSource interface {
	Token() (string, bool)
	Clear()
}

// Controller evaluates session validity and route authorization. It holds no session
// state of its own.
type Controller struct {
	Decoder Decoder
	Now     func() time.Time
	Logger  *zap.Logger
}

func NewController(dec Decoder, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{Decoder: dec, Now: time.Now, Logger: logger}
}

// IsSessionValid is false without a token, with an undecodable token, or when exp < now.
// The last two also clear the stored token.
func (c *Controller) IsSessionValid(src TokenSource) bool {
	_, ok := c.session(src)
	return ok
}

// CurrentRole returns the first role of the token. Only the first one is consulted.
func (c *Controller) CurrentRole(src TokenSource) (Role, bool) {
	raw, ok := src.Token()
	if !ok {
		return "", false
	}
	claims, err := c.Decoder.Decode(raw)
	if err != nil {
		return "", false
	}
	return firstRole(claims)
}

// Authorize checks the session first and the role second.
func (c *Controller) Authorize(route Route, src TokenSource) Decision {
	d := c.authorize(route, src)
	metrics.AccessDecisions.WithLabelValues(d.String()).Inc()
	return d
}

func (c *Controller) authorize(route Route, src TokenSource) Decision {
	claims, ok := c.session(src)
	if !ok {
		return RedirectLogin
	}
	if len(route.AllowedRoles) == 0 {
		return Allow
	}
	role, ok := firstRole(claims)
	if !ok || !route.Allows(role) {
		c.log().Debug("route restricted",
			zap.String("path", route.Path),
			zap.String("role", string(role)),
		)
		return RedirectRestricted
	}
	return Allow
}

func (c *Controller) session(src TokenSource) (Claims, bool) {
	raw, ok := src.Token()
	if !ok || raw == "" {
		return Claims{}, false
	}
	claims, err := c.Decoder.Decode(raw)
	if err != nil {
		c.log().Warn("discarding undecodable session token", zap.Error(err))
		src.Clear()
		return Claims{}, false
	}
	if claims.ExpiresAt < c.now().Unix() {
		src.Clear()
		return Claims{}, false
	}
	return claims, true
}

func (c *Controller) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func firstRole(claims Claims) (Role, bool) {
	if len(claims.Roles) == 0 {
		return "", false
	}
	return claims.Roles[0], true
}

func (c *Controller) log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
