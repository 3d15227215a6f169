package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/arkhami/duitku/internal/pkg/apperrors"
	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/google/uuid"
)

// ListByOwner retrieves all transactions for an owner, most recent
// occurred_at first
func (r *TransactionRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Transaction, error) {
	query := `
		SELECT id, owner_id, title, amount, kind, category, occurred_at, created_at, updated_at
		FROM transactions
		WHERE owner_id = $1
		ORDER BY occurred_at DESC, created_at DESC
	`

	txns := []models.Transaction{}
	err := r.db.SelectContext(ctx, &txns, query, ownerID)
	if err != nil {
		return nil, apperrors.Storage("list transactions", err)
	}

	return txns, nil
}

// GetByID retrieves a transaction by id alone. Ownership is checked by
// the caller against the loaded record, not in the query.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `
		SELECT id, owner_id, title, amount, kind, category, occurred_at, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Storage("get transaction", err)
	}

	return &txn, nil
}

// Create persists a new transaction, assigning id and bookkeeping timestamps
func (r *TransactionRepo) Create(ctx context.Context, txn *models.Transaction) error {
	txn.ID = uuid.New()
	now := time.Now()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	query := `
		INSERT INTO transactions (id, owner_id, title, amount, kind, category,
			occurred_at, created_at, updated_at
		) VALUES (:id, :owner_id, :title, :amount, :kind, :category,
			:occurred_at, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, txn)
	if err != nil {
		return apperrors.Storage("insert transaction", err)
	}

	return nil
}

// Update overwrites a transaction's mutable fields
func (r *TransactionRepo) Update(ctx context.Context, txn *models.Transaction) error {
	query := `
		UPDATE transactions
		SET title = :title, amount = :amount, kind = :kind, category = :category,
			occurred_at = :occurred_at, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, txn)
	if err != nil {
		return apperrors.Storage("update transaction", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("update transaction", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Delete permanently removes a transaction
func (r *TransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return apperrors.Storage("delete transaction", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("delete transaction", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
