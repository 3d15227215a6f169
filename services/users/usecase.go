package users

import (
	"context"

	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/arkhami/duitku/services/users UserUC

// UserUC represents the identity usecase interface
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
