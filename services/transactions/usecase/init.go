package usecase

import (
	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/arkhami/duitku/services/transactions"
)

type TransactionUC struct {
	txnRepo transactions.TransactionRepo
	cfg     *models.Config
}

// NewTransactionUC creates a new transaction usecase instance
func NewTransactionUC(
	txnRepo transactions.TransactionRepo,
	cfg *models.Config,
) *TransactionUC {
	return &TransactionUC{
		txnRepo: txnRepo,
		cfg:     cfg,
	}
}
