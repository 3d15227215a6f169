package repository

import (
	"time"

	"github.com/arkhami/duitku/internal/pkg/database"
	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// summaryCacheTTL bounds how stale a cached dashboard summary can get
const summaryCacheTTL = 5 * time.Minute

// TransactionRepo implements the transaction repository interface
type TransactionRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewTransactionRepo creates a new transaction repository instance
func NewTransactionRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *TransactionRepo {
	return &TransactionRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
