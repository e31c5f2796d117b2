package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Manoj7ar/float-your-ai-cfo/internal/dto"
	"github.com/Manoj7ar/float-your-ai-cfo/internal/models"
	"github.com/Manoj7ar/float-your-ai-cfo/internal/repository"

	"go.uber.org/zap"
)

const eventTransactionCreated = "transaction.created"

// WebhookResult classifies how an incoming event was absorbed. Every result
// is a success from the provider's point of view.
type WebhookResult int

const (
	ResultSynced WebhookResult = iota
	ResultSkipped
	ResultDuplicate
	ResultUnhandled
)

// WebhookService ingests provider-pushed transaction events. Idempotency
// comes from the transactions primary key, not from any coordination here.
type WebhookService struct {
	accountRepo AccountRepository
	txRepo      TransactionRepository
	now         func() time.Time
	logger      *zap.Logger
}

func NewWebhookService(accountRepo AccountRepository, txRepo TransactionRepository, logger *zap.Logger) *WebhookService {
	return &WebhookService{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		now:         time.Now,
		logger:      logger,
	}
}

// ProcessEvent runs the linear decision chain for one webhook delivery.
// Unknown event types, unprovisioned accounts and duplicate deliveries are
// all absorbed as success; only real persistence failures surface as errors.
func (s *WebhookService) ProcessEvent(ctx context.Context, event *dto.WebhookEvent) (WebhookResult, error) {
	if event.Type != eventTransactionCreated {
		s.logger.Info("Unhandled webhook type", zap.String("type", event.Type))
		return ResultUnhandled, nil
	}

	txn := event.Data

	account, err := s.accountRepo.GetByMonzoAccountID(ctx, txn.AccountID)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve account: %w", err)
	}
	if account == nil {
		// Expected while webhook delivery races account provisioning
		s.logger.Warn("No account found for Monzo account", zap.String("monzo_account_id", txn.AccountID))
		return ResultSkipped, nil
	}

	merchantName := txn.Description
	if txn.Merchant != nil && txn.Merchant.Name != "" {
		merchantName = txn.Merchant.Name
	}
	if merchantName == "" {
		merchantName = "Unknown"
	}

	category := txn.Category
	if category == "" {
		category = "general"
	}

	description := txn.Description
	if description == "" && txn.Merchant != nil {
		description = txn.Merchant.Name
	}

	created := txn.Created
	if created.IsZero() {
		created = s.now()
	}

	tx := &models.Transaction{
		ID:           txn.ID,
		AccountID:    account.ID,
		Amount:       txn.Amount,
		MerchantName: merchantName,
		Category:     category,
		Description:  description,
		IsIncome:     txn.Amount > 0,
		Created:      created,
		CreatedAt:    s.now(),
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		if errors.Is(err, repository.ErrDuplicateTransaction) {
			return ResultDuplicate, nil
		}
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	s.logger.Info("Transaction synced",
		zap.String("transaction_id", tx.ID),
		zap.Int64("amount", tx.Amount),
		zap.String("merchant_name", tx.MerchantName),
	)

	return ResultSynced, nil
}
