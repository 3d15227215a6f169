package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkhami/duitku/internal/pkg/apperrors"
	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/arkhami/duitku/services/transactions/mocks"
)

func setupUCTest(t *testing.T) (*TransactionUC, *mocks.MockTransactionRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := NewTransactionUC(mockRepo, &models.Config{})
	return uc, mockRepo
}

func TestListForOwner(t *testing.T) {
	uc, mockRepo := setupUCTest(t)
	callerID := uuid.New()

	stored := []models.Transaction{
		{ID: uuid.New(), OwnerID: callerID, Title: "Salary", Amount: 2500, Kind: models.KindIncome},
	}
	mockRepo.EXPECT().ListByOwner(gomock.Any(), callerID).Return(stored, nil)

	txns, err := uc.ListForOwner(context.Background(), callerID)

	require.NoError(t, err)
	assert.Equal(t, stored, txns)
}

func TestCreate_Success(t *testing.T) {
	uc, mockRepo := setupUCTest(t)
	callerID := uuid.New()
	occurredAt := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)

	req := &models.CreateTransactionRequest{
		Title:      "Groceries",
		Amount:     72.4,
		Kind:       models.KindExpense,
		Category:   "Food",
		OccurredAt: occurredAt,
	}

	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *models.Transaction) error {
			// Ownership always comes from the authenticated caller
			assert.Equal(t, callerID, txn.OwnerID)
			assert.Equal(t, occurredAt, txn.OccurredAt)
			txn.ID = uuid.New()
			return nil
		})
	mockRepo.EXPECT().InvalidateSummaries(gomock.Any(), callerID).Return(nil)

	txn, err := uc.Create(context.Background(), callerID, req)

	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, "Groceries", txn.Title)
	assert.Equal(t, 72.4, txn.Amount)
}

func TestCreate_DefaultsOccurredAt(t *testing.T) {
	uc, mockRepo := setupUCTest(t)
	callerID := uuid.New()

	req := &models.CreateTransactionRequest{
		Title:    "Coffee",
		Amount:   4.5,
		Kind:     models.KindExpense,
		Category: "Food",
	}

	before := time.Now().UTC()
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *models.Transaction) error {
			assert.False(t, txn.OccurredAt.IsZero())
			assert.False(t, txn.OccurredAt.Before(before))
			return nil
		})
	mockRepo.EXPECT().InvalidateSummaries(gomock.Any(), callerID).Return(nil)

	_, err := uc.Create(context.Background(), callerID, req)
	require.NoError(t, err)
}

func TestCreate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		req       *models.CreateTransactionRequest
		wantField string
	}{
		{
			name:      "missing title",
			req:       &models.CreateTransactionRequest{Amount: 10, Kind: models.KindExpense, Category: "Food"},
			wantField: "title",
		},
		{
			name:      "missing amount",
			req:       &models.CreateTransactionRequest{Title: "Coffee", Kind: models.KindExpense, Category: "Food"},
			wantField: "amount",
		},
		{
			name:      "negative amount",
			req:       &models.CreateTransactionRequest{Title: "Coffee", Amount: -5, Kind: models.KindExpense, Category: "Food"},
			wantField: "amount",
		},
		{
			name:      "missing kind",
			req:       &models.CreateTransactionRequest{Title: "Coffee", Amount: 10, Category: "Food"},
			wantField: "kind",
		},
		{
			name:      "unknown kind",
			req:       &models.CreateTransactionRequest{Title: "Coffee", Amount: 10, Kind: "transfer", Category: "Food"},
			wantField: "kind",
		},
		{
			name:      "missing category",
			req:       &models.CreateTransactionRequest{Title: "Coffee", Amount: 10, Kind: models.KindExpense},
			wantField: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No repo expectations: nothing may be persisted
			uc, _ := setupUCTest(t)

			txn, err := uc.Create(context.Background(), uuid.New(), tt.req)

			assert.Nil(t, txn)
			require.Error(t, err)
			var vErr *apperrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestUpdate_Success(t *testing.T) {
	uc, mockRepo := setupUCTest(t)
	callerID := uuid.New()
	txnID := uuid.New()

	stored := &models.Transaction{
		ID:       txnID,
		OwnerID:  callerID,
		Title:    "Rent",
		Amount:   500,
		Kind:     models.KindExpense,
		Category: "Housing",
	}

	mockRepo.EXPECT().GetByID(gomock.Any(), txnID).Return(stored, nil)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *models.Transaction) error {
			assert.Equal(t, "Rent June", txn.Title)
			assert.Equal(t, 550.0, txn.Amount)
			assert.Equal(t, models.KindExpense, txn.Kind)
			return nil
		})
	mockRepo.EXPECT().InvalidateSummaries(gomock.Any(), callerID).Return(nil)

	txn, err := uc.Update(context.Background(), callerID, txnID, &models.TransactionPatch{
		Title:  "Rent June",
		Amount: 550,
	})

	require.NoError(t, err)
	assert.Equal(t, "Rent June", txn.Title)
}

func TestUpdate_ZeroFieldsKeepStoredValues(t *testing.T) {
	uc, mockRepo := setupUCTest(t)
	callerID := uuid.New()
	txnID := uuid.New()

	stored := &models.Transaction{
		ID:       txnID,
		OwnerID:  callerID,
		Title:    "Rent",
		Amount:   500,
		Kind:     models.KindExpense,
		Category: "Housing",
	}

	mockRepo.EXPECT().GetByID(gomock.Any(), txnID).Return(stored, nil)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *models.Transaction) error {
			// Zero amount means keep, not set to zero
			assert.Equal(t, 500.0, txn.Amount)
			assert.Equal(t, "Rent", txn.Title)
			return nil
		})
	mockRepo.EXPECT().InvalidateSummaries(gomock.Any(), callerID).Return(nil)

	txn, err := uc.Update(context.Background(), callerID, txnID, &models.TransactionPatch{
		Category: "Home",
	})

	require.NoError(t, err)
	assert.Equal(t, 500.0, txn.Amount)
	assert.Equal(t, "Home", txn.Category)
}

func TestUpdate_WrongOwner(t *testing.T) {
	uc, mockRepo := setupUCTest(t)
	callerID := uuid.New()
	txnID := uuid.New()

	stored := &models.Transaction{ID: txnID, OwnerID: uuid.New(), Title: "Rent", Amount: 500, Kind: models.KindExpense}

	// Update must never be reached for someone else's record
	mockRepo.EXPECT().GetByID(gomock.Any(), txnID).Return(stored, nil)

	txn, err := uc.Update(context.Background(), callerID, txnID, &models.TransactionPatch{Title: "Stolen"})

	assert.Nil(t, txn)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
}

func TestUpdate_NotFound(t *testing.T) {
	uc, mockRepo := setupUCTest(t)
	txnID := uuid.New()

	mockRepo.EXPECT().GetByID(gomock.Any(), txnID).Return(nil, apperrors.ErrNotFound)

	txn, err := uc.Update(context.Background(), uuid.New(), txnID, &models.TransactionPatch{Title: "X"})

	assert.Nil(t, txn)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrNotOwner)
}

func TestUpdate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		patch *models.TransactionPatch
	}{
		{name: "negative amount", patch: &models.TransactionPatch{Amount: -10}},
		{name: "unknown kind", patch: &models.TransactionPatch{Kind: "transfer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := setupUCTest(t)

			txn, err := uc.Update(context.Background(), uuid.New(), uuid.New(), tt.patch)

			assert.Nil(t, txn)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestDelete_Success(t *testing.T) {
	uc, mockRepo := setupUCTest(t)
	callerID := uuid.New()
	txnID := uuid.New()

	stored := &models.Transaction{ID: txnID, OwnerID: callerID}
	mockRepo.EXPECT().GetByID(gomock.Any(), txnID).Return(stored, nil)
	mockRepo.EXPECT().Delete(gomock.Any(), txnID).Return(nil)
	mockRepo.EXPECT().InvalidateSummaries(gomock.Any(), callerID).Return(nil)

	assert.NoError(t, uc.Delete(context.Background(), callerID, txnID))
}

func TestDelete_WrongOwner(t *testing.T) {
	uc, mockRepo := setupUCTest(t)
	txnID := uuid.New()

	stored := &models.Transaction{ID: txnID, OwnerID: uuid.New()}
	mockRepo.EXPECT().GetByID(gomock.Any(), txnID).Return(stored, nil)

	err := uc.Delete(context.Background(), uuid.New(), txnID)

	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
}

func TestDelete_Twice(t *testing.T) {
	uc, mockRepo := setupUCTest(t)
	callerID := uuid.New()
	txnID := uuid.New()

	stored := &models.Transaction{ID: txnID, OwnerID: callerID}
	first := mockRepo.EXPECT().GetByID(gomock.Any(), txnID).Return(stored, nil)
	mockRepo.EXPECT().Delete(gomock.Any(), txnID).Return(nil)
	mockRepo.EXPECT().InvalidateSummaries(gomock.Any(), callerID).Return(nil)
	mockRepo.EXPECT().GetByID(gomock.Any(), txnID).Return(nil, apperrors.ErrNotFound).After(first)

	require.NoError(t, uc.Delete(context.Background(), callerID, txnID))

	err := uc.Delete(context.Background(), callerID, txnID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDelete_CacheInvalidationFailureIsSwallowed(t *testing.T) {
	uc, mockRepo := setupUCTest(t)
	callerID := uuid.New()
	txnID := uuid.New()

	stored := &models.Transaction{ID: txnID, OwnerID: callerID}
	mockRepo.EXPECT().GetByID(gomock.Any(), txnID).Return(stored, nil)
	mockRepo.EXPECT().Delete(gomock.Any(), txnID).Return(nil)
	mockRepo.EXPECT().InvalidateSummaries(gomock.Any(), callerID).Return(apperrors.Storage("invalidate summaries", assert.AnError))

	assert.NoError(t, uc.Delete(context.Background(), callerID, txnID))
}
