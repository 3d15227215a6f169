package handler

import (
	"time"

	"github.com/arkhami/duitku/internal/pkg/database"
	"github.com/arkhami/duitku/internal/pkg/middleware"
	"github.com/arkhami/duitku/internal/pkg/models"
	httpHandler "github.com/arkhami/duitku/services/users/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the identity service HTTP handlers
type Handler struct {
	authHandler *httpHandler.AuthHandler
	userHandler *httpHandler.UserHandler
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *httpHandler.AuthHandler,
	userHandler *httpHandler.UserHandler,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the identity endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required); credential endpoints
	// are rate limited per client
	public := e.Group("/users")
	if h.cfg.RateLimit.Enabled && h.redisClient != nil {
		public.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: h.redisClient.GetClient(),
			Key:         "ratelimit:auth",
			Limit:       h.cfg.RateLimit.Limit,
			Period:      time.Duration(h.cfg.RateLimit.Period) * time.Second,
		}))
	}
	public.POST("/register", h.authHandler.Register)
	public.POST("/login", h.authHandler.Login)

	// Protected routes with JWT middleware
	protected := e.Group("/users", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.GET("/me", h.userHandler.Me)
	protected.GET("/verify", h.userHandler.Verify)
}
