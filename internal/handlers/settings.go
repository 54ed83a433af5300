package handlers

import (
	"errors"
	"net/http"

	"watchlist/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	routeSettings   = "/settings"
	errSaveSettings = "failed to save settings"
)

// @Summary      Settings form
// @Tags         settings
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "user, flashes"
// @Router       /settings [get]
// @Security     SessionCookie
func (h *Handler) settingsForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user":    principal(c),
		"flashes": consumeFlashes(c),
	})
}

// @Summary      Update display name
// @Tags         settings
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "new display name"
// @Success      302
// @Router       /settings [post]
// @Security     SessionCookie
func (h *Handler) updateSettings(c *gin.Context) {
	// The form field is named "username" but carries the display name,
	// not the login identifier.
	name := c.PostForm("username")

	user := principal(c)
	err := h.services.Profile.UpdateName(c.Request.Context(), user.ID, name)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		queueFlash(c, flashInvalidInput)
		c.Redirect(http.StatusFound, routeSettings)
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, errSaveSettings, "settings_update_failed", err)
		return
	}

	queueFlash(c, flashSettingsSaved)
	c.Redirect(http.StatusFound, routeIndex)
}
