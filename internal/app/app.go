package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fixa_backend/database"
	"fixa_backend/internal/config"
	"fixa_backend/internal/handlers"
	"fixa_backend/internal/logger"
	"fixa_backend/internal/repositories"
	"fixa_backend/internal/routes"
	"fixa_backend/internal/services"
	"fixa_backend/internal/validator"
	"fixa_backend/internal/verification"
	"fixa_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	ginRouter, jobService := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	workers.NewJobWorker(jobService).Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter builds the full dependency graph and returns the router plus
// the job service for the background worker.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *services.JobService) {
	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	bidRepo := repositories.NewBidRepository(gormDB)
	creditRepo := repositories.NewCreditRepository(gormDB)
	walletRepo := repositories.NewWalletRepository(gormDB)

	creditService := services.NewCreditService(gormDB, creditRepo)
	walletService := services.NewWalletService(gormDB, walletRepo)
	jobService := services.NewJobService(gormDB, jobRepo, userRepo)
	bidService := services.NewBidService(gormDB, bidRepo, jobRepo, userRepo, creditService, jobService)
	settlementService := services.NewSettlementService(gormDB, jobRepo, userRepo, bidService, walletService, jobService)

	codeStore := verification.NewMemoryStore()
	authService := services.NewAuthService(
		gormDB,
		userRepo,
		creditService,
		codeStore,
		cfg.Credits.WelcomeBonus,
		time.Duration(cfg.Verification.CodeTTL)*time.Second,
	)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:   handlers.NewAuthHandler(base, authService),
		JobHandler:    handlers.NewJobHandler(base, jobService, bidService, settlementService),
		BidHandler:    handlers.NewBidHandler(base, bidService),
		CreditHandler: handlers.NewCreditHandler(base, creditService),
		WalletHandler: handlers.NewWalletHandler(base, walletService),
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery(), requestLogger())

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, jobService
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.HTTPLog(
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
