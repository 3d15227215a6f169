package usecase

import (
	"context"

	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/google/uuid"
)

// GetByID retrieves a user by id
func (u *UserUC) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return u.userRepo.GetUserByID(ctx, id)
}
