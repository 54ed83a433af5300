package handlers

import (
	"net/http"

	"watchlist/internal/logger"
	"watchlist/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Route targets used by redirects.
const (
	routeIndex = "/"
	routeLogin = "/login"
)

// Flash messages surfaced to the presentation layer. Exact wording matters:
// tests and the UI match on these strings.
const (
	flashInvalidInput  = "Invalid Input."
	flashInvalidEdit   = "Invalid Input" // edit flow drops the period
	flashItemCreated   = "Item Created."
	flashItemChanged   = "Item Changed."
	flashItemDeleted   = "Item deleted."
	flashLoginSuccess  = "Login Success."
	flashGoodBye       = "Good Bye."
	flashSettingsSaved = "Settings updated..."
	flashBadCredential = "Invalid username or password."
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.currentUser)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public pages; the create POST checks authentication itself because an
	// anonymous submit redirects silently instead of bouncing to /login.
	for _, path := range []string{"/", "/index"} {
		router.GET(path, h.index)
		router.POST(path, h.createMovie)
	}
	router.GET("/login", h.loginForm)
	router.POST("/login", h.login)

	// Protected pages
	authed := router.Group("/", h.requireAuth)
	{
		authed.GET("/logout", h.logout)
		authed.GET("/settings", h.settingsForm)
		authed.POST("/settings", h.updateSettings)
		authed.GET("/movie/edit/:id", h.editForm)
		authed.POST("/movie/edit/:id", h.editMovie)
		authed.POST("/movie/delete/:id", h.deleteMovie)
	}

	router.NoRoute(h.notFound)

	return router
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// notFound renders the generic 404 view for unmatched routes and unknown ids.
func (h *Handler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "Page Not Found",
		"back":  "Go Back",
	})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
