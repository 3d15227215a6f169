package repository

import (
	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// UserRepo implements the user repository interface
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}
