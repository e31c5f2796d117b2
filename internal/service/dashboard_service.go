package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Manoj7ar/float-your-ai-cfo/internal/dto"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DashboardService serves the read path behind the KPI cards: invoice lists,
// recent transactions and the aggregated summary.
type DashboardService struct {
	accountRepo AccountRepository
	invoiceRepo InvoiceRepository
	txRepo      TransactionRepository
	logger      *zap.Logger
}

func NewDashboardService(
	accountRepo AccountRepository,
	invoiceRepo InvoiceRepository,
	txRepo TransactionRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		accountRepo: accountRepo,
		invoiceRepo: invoiceRepo,
		txRepo:      txRepo,
		logger:      logger,
	}
}

func (s *DashboardService) ListInvoices(ctx context.Context, userID uuid.UUID) ([]dto.InvoiceResponse, error) {
	account, err := s.accountRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}
	if account == nil {
		return nil, ErrNoAccount
	}

	invoices, err := s.invoiceRepo.ListByAccountID(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		responses[i] = mapInvoiceToResponse(inv)
	}

	return responses, nil
}

func (s *DashboardService) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]dto.TransactionResponse, error) {
	account, err := s.accountRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}
	if account == nil {
		return nil, ErrNoAccount
	}

	transactions, err := s.txRepo.ListByAccountID(ctx, account.ID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TransactionResponse, len(transactions))
	for i, tx := range transactions {
		responses[i] = dto.TransactionResponse{
			ID:           tx.ID,
			Amount:       tx.Amount,
			MerchantName: tx.MerchantName,
			Category:     tx.Category,
			Description:  tx.Description,
			IsIncome:     tx.IsIncome,
			Created:      tx.Created.Format(time.RFC3339),
		}
	}

	return responses, nil
}

// Summary aggregates the KPI figures: live balance from synced transactions,
// outstanding invoice totals and payroll coverage.
func (s *DashboardService) Summary(ctx context.Context, userID uuid.UUID) (*dto.DashboardSummary, error) {
	account, err := s.accountRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}
	if account == nil {
		return nil, ErrNoAccount
	}

	balance, err := s.txRepo.BalanceByAccountID(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	totals, err := s.invoiceRepo.TotalsByAccountID(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummary{
		Balance:          balance,
		PayrollAmount:    account.PayrollAmount,
		PayrollDueDate:   formatISODate(account.PayrollDueDate),
		PayrollAtRisk:    account.PayrollAtRisk,
		PayrollCoverage:  balance - account.PayrollAmount,
		TotalOutstanding: totals.TotalOutstanding,
		UnpaidCount:      totals.UnpaidCount,
		OverdueCount:     totals.OverdueCount,
	}, nil
}
