package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"keybuddy/internal/interfaces/http/handlers"
	"keybuddy/internal/interfaces/http/middleware"
	"keybuddy/internal/interfaces/http/routes"
	"keybuddy/internal/shared/config"
	"keybuddy/internal/shared/logger"
)

// Dependencies carries everything the router needs, wired by the
// server command.
type Dependencies struct {
	ServerConfig config.ServerConfig

	AuthHandler       *handlers.AuthHandler
	UserHandler       *handlers.UserHandler
	CustomerHandler   *handlers.CustomerHandler
	KeySystemHandler  *handlers.KeySystemHandler
	OrderHandler      *handlers.OrderHandler
	DocumentHandler   *handlers.DocumentHandler
	PermissionHandler *handlers.PermissionHandler
	BackupHandler     *handlers.BackupHandler
	SettingHandler    *handlers.SettingHandler
	UserLogHandler    *handlers.UserLogHandler
	VersionHandler    *handlers.VersionHandler

	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware

	Logger logger.Interface
}

// Router owns the Gin engine and route registration.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the engine with the global middleware chain and
// registers every route group under /api/v1.
func NewRouter(deps Dependencies) *Router {
	registerValidations()

	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.Logger(deps.Logger))
	engine.Use(middleware.CORS(deps.ServerConfig.AllowedOrigins))
	engine.Use(middleware.CSRF())

	globalLimiter := middleware.NewRateLimiter(300, time.Minute)
	engine.Use(globalLimiter.Limit())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Login gets a tighter window against password guessing.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	api := engine.Group("/api/v1")
	{
		api.GET("/version", deps.VersionHandler.Get)

		routes.RegisterAuthRoutes(api, deps.AuthHandler, deps.AuthMiddleware, loginLimiter)
		routes.RegisterUserRoutes(api, deps.UserHandler, deps.AuthMiddleware, deps.PermissionMiddleware)
		routes.RegisterCustomerRoutes(api, deps.CustomerHandler, deps.AuthMiddleware, deps.PermissionMiddleware)
		routes.RegisterKeySystemRoutes(api, deps.KeySystemHandler, deps.AuthMiddleware, deps.PermissionMiddleware)
		routes.RegisterOrderRoutes(api, deps.OrderHandler, deps.AuthMiddleware, deps.PermissionMiddleware)
		routes.RegisterDocumentRoutes(api, deps.DocumentHandler, deps.AuthMiddleware, deps.PermissionMiddleware)
		routes.RegisterPermissionRoutes(api, deps.PermissionHandler, deps.AuthMiddleware, deps.PermissionMiddleware)
		routes.RegisterBackupRoutes(api, deps.BackupHandler, deps.AuthMiddleware, deps.PermissionMiddleware)
		routes.RegisterSettingRoutes(api, deps.SettingHandler, deps.AuthMiddleware, deps.PermissionMiddleware)
		routes.RegisterUserLogRoutes(api, deps.UserLogHandler, deps.AuthMiddleware, deps.PermissionMiddleware)
	}

	return &Router{engine: engine}
}

// Engine exposes the underlying Gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
