package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/arkhami/duitku/internal/pkg/config"
	"github.com/arkhami/duitku/internal/pkg/database"
	"github.com/arkhami/duitku/internal/pkg/health"
	"github.com/arkhami/duitku/internal/pkg/logger"
	"github.com/arkhami/duitku/internal/pkg/middleware"
	"github.com/arkhami/duitku/internal/pkg/server"
	txnHandler "github.com/arkhami/duitku/services/transactions/handler"
	txnHTTP "github.com/arkhami/duitku/services/transactions/handler/http"
	txnRepo "github.com/arkhami/duitku/services/transactions/repository"
	txnUsecase "github.com/arkhami/duitku/services/transactions/usecase"
	userHandler "github.com/arkhami/duitku/services/users/handler"
	userHTTP "github.com/arkhami/duitku/services/users/handler/http"
	userRepo "github.com/arkhami/duitku/services/users/repository"
	userUsecase "github.com/arkhami/duitku/services/users/usecase"
)

func main() {
	cfg := config.InitConfig(".env")

	appLogger := logger.NewAppLogger(cfg.App.Name, cfg.Logger)
	logger.SetGlobalLogger(appLogger)

	// Postgres
	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to postgres")
	}
	defer pgClient.Close()
	db := pgClient.GetDB()

	// Redis
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to redis")
	}
	defer redisClient.Close()

	// Repositories
	usersRepo := userRepo.NewUserRepo(cfg, db)
	transactionsRepo := txnRepo.NewTransactionRepo(cfg, db, redisClient)

	// Usecases
	usersUC := userUsecase.NewUserUC(usersRepo, cfg)
	transactionsUC := txnUsecase.NewTransactionUC(transactionsRepo, cfg)

	// Handlers
	usersHandler := userHandler.NewHandler(
		userHTTP.NewAuthHandler(usersUC),
		userHTTP.NewUserHandler(usersUC),
		redisClient,
		cfg,
	)
	transactionsHandler := txnHandler.NewHandler(
		txnHTTP.NewTransactionHandler(transactionsUC),
		txnHTTP.NewSummaryHandler(transactionsUC),
		cfg,
	)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	e.Use(echoMiddleware.CORS())

	health.RegisterHealthEndpoints(e, cfg.App.Name)
	usersHandler.RegisterRoutes(e)
	transactionsHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, appLogger, cfg.Server.Port,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Fatal("Server terminated")
	}
}
