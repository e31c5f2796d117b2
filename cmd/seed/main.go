// Command seed provisions a demo user with an account, a handful of
// invoices and synced transactions so the dashboard has data to render
// during local development.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Manoj7ar/float-your-ai-cfo/internal/models"
	"github.com/Manoj7ar/float-your-ai-cfo/internal/repository"
	"github.com/Manoj7ar/float-your-ai-cfo/pkg/auth"
	"github.com/Manoj7ar/float-your-ai-cfo/pkg/config"
	"github.com/Manoj7ar/float-your-ai-cfo/pkg/logger"
	"github.com/Manoj7ar/float-your-ai-cfo/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@float.dev"
	demoPassword = "float-demo-password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	accountRepo := repository.NewAccountRepository(db, appLogger)
	invoiceRepo := repository.NewInvoiceRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	existing, err := userRepo.GetByEmail(ctx, demoEmail)
	if err != nil {
		appLogger.Fatal("Failed to look up demo user", zap.Error(err))
	}
	if existing != nil {
		appLogger.Info("Demo user already seeded", zap.String("email", demoEmail))
		return
	}

	now := time.Now()

	hashedPassword, err := auth.HashPassword(demoPassword)
	if err != nil {
		appLogger.Fatal("Failed to hash password", zap.Error(err))
	}

	user := &models.User{
		ID:        uuid.New(),
		Username:  "demo",
		Email:     demoEmail,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		appLogger.Fatal("Failed to create demo user", zap.Error(err))
	}

	monzoAccountID := "acc_demo_1"
	payrollDue := now.AddDate(0, 0, 12)
	account := &models.Account{
		ID:             uuid.New(),
		UserID:         user.ID,
		BusinessName:   "Float Demo Ltd",
		MonzoAccountID: &monzoAccountID,
		PayrollAmount:  840000,
		PayrollDueDate: &payrollDue,
		PayrollAtRisk:  false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := accountRepo.Create(ctx, account); err != nil {
		appLogger.Fatal("Failed to create demo account", zap.Error(err))
	}

	if err := seedInvoices(ctx, invoiceRepo, account.ID, now); err != nil {
		appLogger.Fatal("Failed to seed invoices", zap.Error(err))
	}
	if err := seedTransactions(ctx, txRepo, account.ID, now); err != nil {
		appLogger.Fatal("Failed to seed transactions", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!",
		zap.String("email", demoEmail),
		zap.String("account_id", account.ID.String()),
	)
}

func seedInvoices(ctx context.Context, repo *repository.InvoiceRepository, accountID uuid.UUID, now time.Time) error {
	strPtr := func(s string) *string { return &s }
	datePtr := func(t time.Time) *time.Time { return &t }

	invoices := []*models.Invoice{
		{
			ClientName:    "Acme Studios",
			ClientEmail:   strPtr("accounts@acmestudios.co.uk"),
			InvoiceNumber: strPtr("INV-2041"),
			Amount:        240000,
			InvoiceDate:   datePtr(now.AddDate(0, -1, 0)),
			DueDate:       datePtr(now.AddDate(0, 0, -14)),
			Status:        models.InvoiceStatusOverdue,
		},
		{
			ClientName:    "Northwind Consulting",
			InvoiceNumber: strPtr("INV-2042"),
			Amount:        185000,
			InvoiceDate:   datePtr(now.AddDate(0, 0, -10)),
			DueDate:       datePtr(now.AddDate(0, 0, 20)),
			Status:        models.InvoiceStatusUnpaid,
		},
		{
			ClientName:    "Brightline Media",
			InvoiceNumber: strPtr("INV-2039"),
			Amount:        96000,
			InvoiceDate:   datePtr(now.AddDate(0, -2, 0)),
			DueDate:       datePtr(now.AddDate(0, -1, 0)),
			Status:        models.InvoiceStatusPaid,
		},
	}

	for _, inv := range invoices {
		inv.ID = uuid.New()
		inv.AccountID = accountID
		inv.CreatedAt = now
		inv.UpdatedAt = now
		if err := repo.Create(ctx, inv); err != nil {
			return err
		}
	}

	return nil
}

func seedTransactions(ctx context.Context, repo *repository.TransactionRepository, accountID uuid.UUID, now time.Time) error {
	transactions := []*models.Transaction{
		{ID: "tx_demo_001", Amount: 620000, MerchantName: "Brightline Media", Category: "income", Description: "Invoice INV-2039", IsIncome: true, Created: now.AddDate(0, 0, -21)},
		{ID: "tx_demo_002", Amount: -12500, MerchantName: "AWS", Category: "bills", Description: "Cloud hosting", Created: now.AddDate(0, 0, -7)},
		{ID: "tx_demo_003", Amount: -450, MerchantName: "Coffee Co", Category: "eating_out", Description: "Coffee Co", Created: now.AddDate(0, 0, -2)},
		{ID: "tx_demo_004", Amount: -84000, MerchantName: "WeWork", Category: "bills", Description: "Office space", Created: now.AddDate(0, 0, -1)},
	}

	for _, tx := range transactions {
		tx.AccountID = accountID
		tx.CreatedAt = now
		if err := repo.Create(ctx, tx); err != nil {
			if errors.Is(err, repository.ErrDuplicateTransaction) {
				continue
			}
			return err
		}
	}

	return nil
}
