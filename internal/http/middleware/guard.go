package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"goparts/internal/access"
	"goparts/internal/domain"
)

const (
	roleKey  = "role"
	routeKey = "access_route"
)

// Guard authorizes the request against a fixed dashboard route.
func Guard(ctrl *access.Controller, route access.Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorize(c, ctrl, route)
	}
}

// GuardPath looks the route up in the policy once. A path the policy does not cover is
// restricted for everyone.
func GuardPath(ctrl *access.Controller, policy *access.Policy, path string) gin.HandlerFunc {
	route, ok := policy.Lookup(path)
	if !ok {
		return func(c *gin.Context) { deny(c, access.RedirectRestricted) }
	}
	return Guard(ctrl, route)
}

// GuardResource guards /:resource routes with the policy entry of "/<resource>".
func GuardResource(ctrl *access.Controller, policy *access.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := "/" + strings.ToLower(strings.TrimSpace(c.Param("resource")))
		route, ok := policy.Lookup(path)
		if !ok {
			deny(c, access.RedirectRestricted)
			return
		}
		authorize(c, ctrl, route)
	}
}

func authorize(c *gin.Context, ctrl *access.Controller, route access.Route) {
	sess := GetSession(c)
	if sess == nil {
		deny(c, access.RedirectLogin)
		return
	}
	decision := ctrl.Authorize(route, sess)
	if decision != access.Allow {
		deny(c, decision)
		return
	}
	if role, ok := ctrl.CurrentRole(sess); ok {
		c.Set(roleKey, string(role))
	}
	c.Set(routeKey, route)
	c.Next()
}

func deny(c *gin.Context, d access.Decision) {
	denied, code := domain.Unauthorized("session missing or expired"), "unauthorized"
	if d == access.RedirectRestricted {
		denied, code = domain.Forbidden("role not allowed for this page"), "forbidden"
	}
	c.AbortWithStatusJSON(denied.Status, gin.H{
		"error":      denied.Error(),
		"code":       code,
		"redirect":   denied.Redirect,
		"request_id": GetRequestID(c),
	})
}

// GetRole returns the role resolved by a guard.
func GetRole(c *gin.Context) string {
	return c.GetString(roleKey)
}

// GetRoute returns the policy route resolved by a guard.
func GetRoute(c *gin.Context) (access.Route, bool) {
	v, ok := c.Get(routeKey)
	if !ok {
		return access.Route{}, false
	}
	r, ok := v.(access.Route)
	return r, ok
}
