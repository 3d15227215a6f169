package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/arkhami/duitku/internal/pkg/apperrors"
	"github.com/arkhami/duitku/internal/pkg/logger"
	"github.com/arkhami/duitku/internal/pkg/models"
)

// monthlyWindow is how many trailing calendar months the monthly series covers
const monthlyWindow = 6

// Summary returns the caller's aggregate totals, served from cache when
// fresh. Cache failures degrade to recomputation from storage.
func (uc *TransactionUC) Summary(ctx context.Context, callerID uuid.UUID) (*models.Summary, error) {
	cached, err := uc.txnRepo.CachedSummary(ctx, callerID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Summary cache read failed, recomputing", logrus.Fields{
			"owner_id": callerID,
			"error":    err.Error(),
		})
	}

	txns, err := uc.txnRepo.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, err
	}

	summary := computeSummary(txns)

	if err := uc.txnRepo.StoreSummary(ctx, callerID, summary); err != nil {
		logger.Warn("Failed to cache summary", logrus.Fields{
			"owner_id": callerID,
			"error":    err.Error(),
		})
	}

	return summary, nil
}

// MonthlySummary returns income and expense totals for the trailing six
// calendar months, oldest first, including months with no activity.
func (uc *TransactionUC) MonthlySummary(ctx context.Context, callerID uuid.UUID) ([]models.MonthlyTotal, error) {
	cached, err := uc.txnRepo.CachedMonthlySummary(ctx, callerID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Monthly summary cache read failed, recomputing", logrus.Fields{
			"owner_id": callerID,
			"error":    err.Error(),
		})
	}

	txns, err := uc.txnRepo.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, err
	}

	totals := computeMonthlyTotals(txns, models.Now())

	if err := uc.txnRepo.StoreMonthlySummary(ctx, callerID, totals); err != nil {
		logger.Warn("Failed to cache monthly summary", logrus.Fields{
			"owner_id": callerID,
			"error":    err.Error(),
		})
	}

	return totals, nil
}

func computeSummary(txns []models.Transaction) *models.Summary {
	summary := &models.Summary{
		ExpenseByCategory: map[string]float64{},
	}

	for _, txn := range txns {
		switch txn.Kind {
		case models.KindIncome:
			summary.TotalIncome += txn.Amount
		case models.KindExpense:
			summary.TotalExpense += txn.Amount
			summary.ExpenseByCategory[txn.Category] += txn.Amount
		}
	}

	summary.Balance = summary.TotalIncome - summary.TotalExpense
	return summary
}

func computeMonthlyTotals(txns []models.Transaction, now time.Time) []models.MonthlyTotal {
	totals := make([]models.MonthlyTotal, 0, monthlyWindow)
	index := map[string]int{}

	// Walk backwards from the current month so the window crosses year
	// boundaries correctly, then emit oldest first.
	for i := monthlyWindow - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		label := month.Format("Jan 2006")
		index[label] = len(totals)
		totals = append(totals, models.MonthlyTotal{Month: label})
	}

	for _, txn := range txns {
		label := txn.OccurredAt.In(now.Location()).Format("Jan 2006")
		pos, ok := index[label]
		if !ok {
			continue
		}
		switch txn.Kind {
		case models.KindIncome:
			totals[pos].Income += txn.Amount
		case models.KindExpense:
			totals[pos].Expense += txn.Amount
		}
	}

	return totals
}
