package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arkhami/duitku/internal/pkg/apperrors"
	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

func summaryKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("summary:%s", ownerID)
}

func monthlySummaryKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("summary:monthly:%s", ownerID)
}

// CachedSummary returns the cached dashboard summary for an owner
func (r *TransactionRepo) CachedSummary(ctx context.Context, ownerID uuid.UUID) (*models.Summary, error) {
	raw, err := r.redisClient.Get(ctx, summaryKey(ownerID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Storage("get cached summary", err)
	}

	var summary models.Summary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, apperrors.Storage("decode cached summary", err)
	}

	return &summary, nil
}

// StoreSummary caches the dashboard summary for an owner
func (r *TransactionRepo) StoreSummary(ctx context.Context, ownerID uuid.UUID, summary *models.Summary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return apperrors.Storage("encode summary", err)
	}

	if err := r.redisClient.Set(ctx, summaryKey(ownerID), raw, summaryCacheTTL); err != nil {
		return apperrors.Storage("store summary", err)
	}

	return nil
}

// CachedMonthlySummary returns the cached monthly series for an owner
func (r *TransactionRepo) CachedMonthlySummary(ctx context.Context, ownerID uuid.UUID) ([]models.MonthlyTotal, error) {
	raw, err := r.redisClient.Get(ctx, monthlySummaryKey(ownerID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Storage("get cached monthly summary", err)
	}

	var totals []models.MonthlyTotal
	if err := json.Unmarshal([]byte(raw), &totals); err != nil {
		return nil, apperrors.Storage("decode cached monthly summary", err)
	}

	return totals, nil
}

// StoreMonthlySummary caches the monthly series for an owner
func (r *TransactionRepo) StoreMonthlySummary(ctx context.Context, ownerID uuid.UUID, totals []models.MonthlyTotal) error {
	raw, err := json.Marshal(totals)
	if err != nil {
		return apperrors.Storage("encode monthly summary", err)
	}

	if err := r.redisClient.Set(ctx, monthlySummaryKey(ownerID), raw, summaryCacheTTL); err != nil {
		return apperrors.Storage("store monthly summary", err)
	}

	return nil
}

// InvalidateSummaries drops both cached summaries after a mutation
func (r *TransactionRepo) InvalidateSummaries(ctx context.Context, ownerID uuid.UUID) error {
	if err := r.redisClient.Delete(ctx, summaryKey(ownerID), monthlySummaryKey(ownerID)); err != nil {
		return apperrors.Storage("invalidate summaries", err)
	}
	return nil
}
