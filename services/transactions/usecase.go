package transactions

import (
	"context"

	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/arkhami/duitku/services/transactions TransactionUC

// TransactionUC represents the transaction usecase interface. Every
// operation is scoped to the authenticated caller; single-record
// mutations re-check ownership against the loaded record.
type TransactionUC interface {
	ListForOwner(ctx context.Context, callerID uuid.UUID) ([]models.Transaction, error)
	Create(ctx context.Context, callerID uuid.UUID, req *models.CreateTransactionRequest) (*models.Transaction, error)
	Update(ctx context.Context, callerID, transactionID uuid.UUID, patch *models.TransactionPatch) (*models.Transaction, error)
	Delete(ctx context.Context, callerID, transactionID uuid.UUID) error

	Summary(ctx context.Context, callerID uuid.UUID) (*models.Summary, error)
	MonthlySummary(ctx context.Context, callerID uuid.UUID) ([]models.MonthlyTotal, error)
}
