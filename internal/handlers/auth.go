package handlers

import (
	"errors"
	"net/http"

	"watchlist/internal/service"

	"github.com/gin-gonic/gin"
)

const errLogin = "failed to process login"

// @Summary      Login form
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /login [get]
func (h *Handler) loginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user":    principal(c),
		"flashes": consumeFlashes(c),
	})
}

// @Summary      Authenticate
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "login name"
// @Param        password  formData  string  true  "password"
// @Success      302
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		queueFlash(c, flashInvalidInput)
		c.Redirect(http.StatusFound, routeLogin)
		return
	}

	token, _, err := h.services.Login(c.Request.Context(), username, password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		queueFlash(c, flashBadCredential)
		c.Redirect(http.StatusFound, routeLogin)
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, errLogin, "auth_login_failed", err, "username", username)
		return
	}

	setSessionCookie(c, token)
	queueFlash(c, flashLoginSuccess)
	c.Redirect(http.StatusFound, routeIndex)
}

// @Summary      End session
// @Tags         auth
// @Produce      json
// @Success      302
// @Router       /logout [get]
// @Security     SessionCookie
func (h *Handler) logout(c *gin.Context) {
	clearSessionCookie(c)
	queueFlash(c, flashGoodBye)
	c.Redirect(http.StatusFound, routeIndex)
}
