package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Manoj7ar/float-your-ai-cfo/internal/api"
	"github.com/Manoj7ar/float-your-ai-cfo/internal/api/handlers"
	"github.com/Manoj7ar/float-your-ai-cfo/internal/repository"
	"github.com/Manoj7ar/float-your-ai-cfo/internal/service"
	"github.com/Manoj7ar/float-your-ai-cfo/pkg/auth"
	"github.com/Manoj7ar/float-your-ai-cfo/pkg/config"
	"github.com/Manoj7ar/float-your-ai-cfo/pkg/logger"
	"github.com/Manoj7ar/float-your-ai-cfo/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Float backend")

	// Apply database migrations
	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	accountRepo := repository.NewAccountRepository(db, appLogger)
	invoiceRepo := repository.NewInvoiceRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, accountRepo, jwtManager, appLogger)
	extractor := service.NewGatewayExtractor(&cfg.AI, appLogger)
	invoiceService := service.NewInvoiceService(accountRepo, invoiceRepo, extractor, appLogger)
	webhookService := service.NewWebhookService(accountRepo, txRepo, appLogger)
	dashboardService := service.NewDashboardService(accountRepo, invoiceRepo, txRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, appLogger)
	webhookHandler := handlers.NewWebhookHandler(webhookService, appLogger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, invoiceHandler, webhookHandler, dashboardHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
