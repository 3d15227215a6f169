package transactions

import (
	"context"

	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/arkhami/duitku/services/transactions TransactionRepo

// TransactionRepo represents the transaction repository interface.
// GetByID deliberately loads by id alone, with no owner filter, so the
// usecase can distinguish "not found" from "not yours".
type TransactionRepo interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	Create(ctx context.Context, txn *models.Transaction) error
	Update(ctx context.Context, txn *models.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Summary cache; a miss is reported as apperrors.ErrNotFound
	CachedSummary(ctx context.Context, ownerID uuid.UUID) (*models.Summary, error)
	StoreSummary(ctx context.Context, ownerID uuid.UUID, summary *models.Summary) error
	CachedMonthlySummary(ctx context.Context, ownerID uuid.UUID) ([]models.MonthlyTotal, error)
	StoreMonthlySummary(ctx context.Context, ownerID uuid.UUID, totals []models.MonthlyTotal) error
	InvalidateSummaries(ctx context.Context, ownerID uuid.UUID) error
}
