package usecase

import (
	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/arkhami/duitku/services/users"
)

type UserUC struct {
	userRepo users.UserRepo
	cfg      *models.Config
}

// NewUserUC creates a new identity usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		cfg:      cfg,
	}
}
