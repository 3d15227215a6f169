package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/arkhami/duitku/internal/pkg/logger"
	"github.com/arkhami/duitku/internal/pkg/middleware"
	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/arkhami/duitku/internal/utils"
	"github.com/arkhami/duitku/services/transactions"
)

// TransactionHandler handles HTTP requests for transaction CRUD
type TransactionHandler struct {
	txnUC transactions.TransactionUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(txnUC transactions.TransactionUC) *TransactionHandler {
	return &TransactionHandler{
		txnUC: txnUC,
	}
}

// List returns the caller's transactions, most recent first
func (h *TransactionHandler) List(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	txns, err := h.txnUC.ListForOwner(c.Request().Context(), callerID)
	if err != nil {
		logger.Warn("Failed to list transactions", logrus.Fields{
			"error":    err.Error(),
			"owner_id": callerID,
			"endpoint": "List",
		})
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", txns)
}

// Create records a new transaction owned by the caller
func (h *TransactionHandler) Create(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	txn, err := h.txnUC.Create(c.Request().Context(), callerID, &req)
	if err != nil {
		logger.Warn("Failed to create transaction", logrus.Fields{
			"error":    err.Error(),
			"owner_id": callerID,
			"endpoint": "Create",
		})
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created successfully", txn)
}

// Update applies a partial update to one of the caller's transactions
func (h *TransactionHandler) Update(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	txnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction id")
	}

	var patch models.TransactionPatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	txn, err := h.txnUC.Update(c.Request().Context(), callerID, txnID, &patch)
	if err != nil {
		logger.Warn("Failed to update transaction", logrus.Fields{
			"error":          err.Error(),
			"owner_id":       callerID,
			"transaction_id": txnID,
			"endpoint":       "Update",
		})
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction updated successfully", txn)
}

// Delete removes one of the caller's transactions
func (h *TransactionHandler) Delete(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	txnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction id")
	}

	if err := h.txnUC.Delete(c.Request().Context(), callerID, txnID); err != nil {
		logger.Warn("Failed to delete transaction", logrus.Fields{
			"error":          err.Error(),
			"owner_id":       callerID,
			"transaction_id": txnID,
			"endpoint":       "Delete",
		})
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction deleted successfully", nil)
}
