package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"watchlist/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errListMovies  = "failed to load watchlist"
	errSaveMovie   = "failed to save movie"
	errDeleteMovie = "failed to delete movie"
)

// Affordances the presentation layer may show to an authenticated admin.
var adminActions = []string{"Edit", "Delete", "Settings", "Logout"}

// movieID parses the :id route parameter; a non-numeric id is just an
// unknown page.
func movieID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// @Summary      Watchlist page
// @Tags         watchlist
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "movies, user, flashes"
// @Failure      500  {object}  map[string]string
// @Router       / [get]
func (h *Handler) index(c *gin.Context) {
	ctx := c.Request.Context()

	movies, err := h.services.Watchlist.List(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListMovies, "watchlist_list_failed", err)
		return
	}

	view := gin.H{
		"movies":  movies,
		"user":    principal(c),
		"flashes": consumeFlashes(c),
	}

	// The owner's display name captions the page even for anonymous visitors.
	if owner, err := h.services.Profile.Owner(ctx); err == nil && owner != nil {
		view["owner"] = owner.Name
	}
	if principal(c) != nil {
		view["actions"] = adminActions
	}

	c.JSON(http.StatusOK, view)
}

// @Summary      Create watchlist entry
// @Tags         watchlist
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        title  formData  string  true  "movie title"
// @Param        year   formData  string  true  "release year"
// @Success      302
// @Router       / [post]
func (h *Handler) createMovie(c *gin.Context) {
	// An anonymous submit redirects silently; no flash, no error.
	if principal(c) == nil {
		c.Redirect(http.StatusFound, routeIndex)
		return
	}

	title := c.PostForm("title")
	year := c.PostForm("year")

	_, err := h.services.Watchlist.Create(c.Request.Context(), title, year)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		queueFlash(c, flashInvalidInput)
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, errSaveMovie, "watchlist_create_failed", err, "title", title)
		return
	default:
		queueFlash(c, flashItemCreated)
	}
	c.Redirect(http.StatusFound, routeIndex)
}

// @Summary      Edit form values
// @Tags         watchlist
// @Produce      json
// @Param        id   path      int  true  "movie id"
// @Success      200  {object}  map[string]interface{}  "movie, user, flashes"
// @Failure      404  {object}  map[string]string
// @Router       /movie/edit/{id} [get]
// @Security     SessionCookie
func (h *Handler) editForm(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		h.notFound(c)
		return
	}

	movie, err := h.services.Watchlist.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errListMovies, "watchlist_get_failed", err, "id", id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"movie":   movie,
		"user":    principal(c),
		"flashes": consumeFlashes(c),
	})
}

// @Summary      Edit watchlist entry
// @Tags         watchlist
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id     path      int     true  "movie id"
// @Param        title  formData  string  true  "movie title"
// @Param        year   formData  string  true  "release year"
// @Success      302
// @Failure      404  {object}  map[string]string
// @Router       /movie/edit/{id} [post]
// @Security     SessionCookie
func (h *Handler) editMovie(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		h.notFound(c)
		return
	}
	ctx := c.Request.Context()

	// Resolve before validating, so an unknown id is a 404 rather than a
	// validation flash.
	if _, err := h.services.Watchlist.Get(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errSaveMovie, "watchlist_get_failed", err, "id", id)
		return
	}

	title := c.PostForm("title")
	year := c.PostForm("year")

	err := h.services.Watchlist.Update(ctx, id, title, year)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		queueFlash(c, flashInvalidEdit)
	case errors.Is(err, service.ErrNotFound):
		h.notFound(c)
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, errSaveMovie, "watchlist_update_failed", err, "id", id)
		return
	default:
		queueFlash(c, flashItemChanged)
	}
	c.Redirect(http.StatusFound, routeIndex)
}

// @Summary      Delete watchlist entry
// @Tags         watchlist
// @Produce      json
// @Param        id   path  int  true  "movie id"
// @Success      302
// @Failure      404  {object}  map[string]string
// @Router       /movie/delete/{id} [post]
// @Security     SessionCookie
func (h *Handler) deleteMovie(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		h.notFound(c)
		return
	}

	err := h.services.Watchlist.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		h.notFound(c)
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteMovie, "watchlist_delete_failed", err, "id", id)
		return
	}

	queueFlash(c, flashItemDeleted)
	c.Redirect(http.StatusFound, routeIndex)
}
