package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/arkhami/duitku/internal/pkg/logger"
	"github.com/arkhami/duitku/internal/pkg/middleware"
	"github.com/arkhami/duitku/internal/utils"
	"github.com/arkhami/duitku/services/transactions"
)

// SummaryHandler handles HTTP requests for dashboard aggregations
type SummaryHandler struct {
	txnUC transactions.TransactionUC
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(txnUC transactions.TransactionUC) *SummaryHandler {
	return &SummaryHandler{
		txnUC: txnUC,
	}
}

// Summary returns the caller's aggregate totals and expense breakdown
func (h *SummaryHandler) Summary(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	summary, err := h.txnUC.Summary(c.Request().Context(), callerID)
	if err != nil {
		logger.Warn("Failed to compute summary", logrus.Fields{
			"error":    err.Error(),
			"owner_id": callerID,
			"endpoint": "Summary",
		})
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Summary retrieved successfully", summary)
}

// MonthlySummary returns the caller's trailing six-month totals
func (h *SummaryHandler) MonthlySummary(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	totals, err := h.txnUC.MonthlySummary(c.Request().Context(), callerID)
	if err != nil {
		logger.Warn("Failed to compute monthly summary", logrus.Fields{
			"error":    err.Error(),
			"owner_id": callerID,
			"endpoint": "MonthlySummary",
		})
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Monthly summary retrieved successfully", totals)
}
