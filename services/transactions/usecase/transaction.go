package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/arkhami/duitku/internal/pkg/apperrors"
	"github.com/arkhami/duitku/internal/pkg/logger"
	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// ListForOwner returns the caller's transactions, most recent first
func (uc *TransactionUC) ListForOwner(ctx context.Context, callerID uuid.UUID) ([]models.Transaction, error) {
	return uc.txnRepo.ListByOwner(ctx, callerID)
}

// Create records a new transaction for the caller. The owner is always
// the authenticated caller; the request carries no owner field.
func (uc *TransactionUC) Create(ctx context.Context, callerID uuid.UUID, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	occurredAt := req.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = models.Now()
	}

	txn := &models.Transaction{
		OwnerID:    callerID,
		Title:      req.Title,
		Amount:     req.Amount,
		Kind:       req.Kind,
		Category:   req.Category,
		OccurredAt: occurredAt,
	}

	if err := uc.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	uc.invalidateSummaries(ctx, callerID)
	return txn, nil
}

// Update applies a partial update to one of the caller's transactions.
// Zero-valued patch fields keep the stored value.
func (uc *TransactionUC) Update(ctx context.Context, callerID, transactionID uuid.UUID, patch *models.TransactionPatch) (*models.Transaction, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	txn, err := uc.txnRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(callerID, txn); err != nil {
		return nil, err
	}

	applyPatch(txn, patch)
	txn.UpdatedAt = models.Now()

	if err := uc.txnRepo.Update(ctx, txn); err != nil {
		return nil, err
	}

	uc.invalidateSummaries(ctx, callerID)
	return txn, nil
}

// Delete permanently removes one of the caller's transactions
func (uc *TransactionUC) Delete(ctx context.Context, callerID, transactionID uuid.UUID) error {
	txn, err := uc.txnRepo.GetByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(callerID, txn); err != nil {
		return err
	}

	if err := uc.txnRepo.Delete(ctx, transactionID); err != nil {
		return err
	}

	uc.invalidateSummaries(ctx, callerID)
	return nil
}

// authorizeOwner compares the caller against the loaded record's owner.
// The record must already exist at this point, so a mismatch is
// ErrNotOwner and never masquerades as ErrNotFound.
func authorizeOwner(callerID uuid.UUID, txn *models.Transaction) error {
	if txn.OwnerID != callerID {
		return apperrors.ErrNotOwner
	}
	return nil
}

func validateCreateRequest(req *models.CreateTransactionRequest) error {
	if req.Title == "" {
		return apperrors.Validation("title", "title is required")
	}
	if req.Amount == 0 {
		return apperrors.Validation("amount", "amount is required")
	}
	if req.Amount < 0 {
		return apperrors.Validation("amount", "amount must be positive")
	}
	if req.Kind == "" {
		return apperrors.Validation("kind", "kind is required")
	}
	if !req.Kind.Valid() {
		return apperrors.Validation("kind", "kind must be income or expense")
	}
	if req.Category == "" {
		return apperrors.Validation("category", "category is required")
	}
	return nil
}

func validatePatch(patch *models.TransactionPatch) error {
	if patch.Amount < 0 {
		return apperrors.Validation("amount", "amount must be positive")
	}
	if patch.Kind != "" && !patch.Kind.Valid() {
		return apperrors.Validation("kind", "kind must be income or expense")
	}
	return nil
}

func applyPatch(txn *models.Transaction, patch *models.TransactionPatch) {
	if patch.Title != "" {
		txn.Title = patch.Title
	}
	if patch.Amount != 0 {
		txn.Amount = patch.Amount
	}
	if patch.Kind != "" {
		txn.Kind = patch.Kind
	}
	if patch.Category != "" {
		txn.Category = patch.Category
	}
	if !patch.OccurredAt.IsZero() {
		txn.OccurredAt = patch.OccurredAt
	}
}

// invalidateSummaries drops the caller's cached summaries after a
// mutation. Cache failures are logged, never surfaced; the next read
// recomputes from storage.
func (uc *TransactionUC) invalidateSummaries(ctx context.Context, callerID uuid.UUID) {
	if err := uc.txnRepo.InvalidateSummaries(ctx, callerID); err != nil {
		logger.Warn("Failed to invalidate summary cache", logrus.Fields{
			"owner_id": callerID,
			"error":    err.Error(),
		})
	}
}
