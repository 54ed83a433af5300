package handlers

import (
	"net/http"

	"watchlist/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName = "watchlist_session"
	ctxUserKey        = "currentUser"
)

// currentUser resolves the principal from the session cookie once per
// request. A missing, malformed, or stale token simply leaves the request
// anonymous; it is never an error.
func (h *Handler) currentUser(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err == nil && token != "" {
		if userID, err := h.services.ParseSession(token); err == nil {
			if u, err := h.services.UserByID(c.Request.Context(), userID); err == nil && u != nil {
				c.Set(ctxUserKey, u)
			}
		}
	}
	c.Next()
}

// principal returns the authenticated user for this request, or nil.
func principal(c *gin.Context) *models.User {
	if v, ok := c.Get(ctxUserKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

// requireAuth bounces unauthenticated requests to the login page.
func (h *Handler) requireAuth(c *gin.Context) {
	if principal(c) == nil {
		c.Redirect(http.StatusFound, routeLogin)
		c.Abort()
		return
	}
	c.Next()
}

// setSessionCookie installs the signed session token. MaxAge 0 keeps it a
// browser-session cookie; the token carries its own expiry.
func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
}

// clearSessionCookie removes the session cookie unconditionally.
func clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
