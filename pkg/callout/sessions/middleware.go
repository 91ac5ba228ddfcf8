// Package sessions identifies viewer sessions so an A/B pick stays
// stable across re-renders. The cookie is a session cookie: there is
// no sticky cross-visit bucketing, by design.
package sessions

import (
	"github.com/gin-gonic/gin"

	"github.com/callouthq/callout/pkg/callout/variant"
)

// CookieName is the viewer session cookie
const CookieName = "callout_session"

const contextKey = "callout_session_id"

// Middleware ensures every request carries a viewer session ID,
// minting one when the cookie is absent.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(CookieName)
		if err != nil || id == "" {
			id = variant.NewSessionID()
			// Session cookie: expires with the browser session
			c.SetCookie(CookieName, id, 0, "/", "", false, true)
		}
		c.Set(contextKey, id)
		c.Next()
	}
}

// ID returns the viewer session ID for the current request
func ID(c *gin.Context) string {
	if id, ok := c.Get(contextKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
