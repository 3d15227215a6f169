package handler

import (
	"github.com/arkhami/duitku/internal/pkg/middleware"
	"github.com/arkhami/duitku/internal/pkg/models"
	httpHandler "github.com/arkhami/duitku/services/transactions/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the transaction service HTTP handlers
type Handler struct {
	txnHandler     *httpHandler.TransactionHandler
	summaryHandler *httpHandler.SummaryHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	txnHandler *httpHandler.TransactionHandler,
	summaryHandler *httpHandler.SummaryHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		txnHandler:     txnHandler,
		summaryHandler: summaryHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the transaction endpoints. Everything here
// requires an authenticated caller.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("/transactions", middleware.JWTAuthMiddleware(h.cfg.JWT))

	protected.GET("", h.txnHandler.List)
	protected.POST("", h.txnHandler.Create)
	protected.PUT("/:id", h.txnHandler.Update)
	protected.DELETE("/:id", h.txnHandler.Delete)

	protected.GET("/summary", h.summaryHandler.Summary)
	protected.GET("/summary/monthly", h.summaryHandler.MonthlySummary)
}
