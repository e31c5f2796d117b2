package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Manoj7ar/float-your-ai-cfo/internal/dto"
	"github.com/Manoj7ar/float-your-ai-cfo/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNoAccount reports that the caller has no account provisioned.
var ErrNoAccount = errors.New("no account found")

const unknownClientName = "Unknown Client"

// InvoiceService turns uploaded invoice documents into invoice rows scoped
// to the caller's account.
type InvoiceService struct {
	accountRepo AccountRepository
	invoiceRepo InvoiceRepository
	extractor   InvoiceExtractor
	now         func() time.Time
	logger      *zap.Logger
}

func NewInvoiceService(
	accountRepo AccountRepository,
	invoiceRepo InvoiceRepository,
	extractor InvoiceExtractor,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		accountRepo: accountRepo,
		invoiceRepo: invoiceRepo,
		extractor:   extractor,
		now:         time.Now,
		logger:      logger,
	}
}

// ExtractFromUpload runs the full extraction chain: resolve the caller's
// account, send the document to the model, classify the payment status and
// insert exactly one invoice row. Any failure aborts with nothing written.
func (s *InvoiceService) ExtractFromUpload(ctx context.Context, userID uuid.UUID, content []byte, contentType, fileName string) (*dto.ExtractInvoiceResponse, error) {
	account, err := s.accountRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}
	if account == nil {
		return nil, ErrNoAccount
	}

	extracted, err := s.extractor.ExtractInvoice(ctx, content, contentType, fileName)
	if err != nil {
		return nil, err
	}

	now := s.now()
	inv := &models.Invoice{
		ID:            uuid.New(),
		AccountID:     account.ID,
		ClientName:    unknownClientName,
		ClientEmail:   extracted.ClientEmail,
		ClientPhone:   extracted.ClientPhone,
		InvoiceNumber: extracted.InvoiceNumber,
		Status:        models.InvoiceStatusUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if extracted.ClientName != nil && *extracted.ClientName != "" {
		inv.ClientName = *extracted.ClientName
	}
	if extracted.Amount != nil {
		inv.Amount = *extracted.Amount
	}
	inv.InvoiceDate = parseISODate(extracted.InvoiceDate)
	inv.DueDate = parseISODate(extracted.DueDate)

	// Overdue only when the due date is strictly in the past
	if inv.DueDate != nil && inv.DueDate.Before(now) {
		inv.Status = models.InvoiceStatusOverdue
	}

	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.logger.Info("Invoice created from extraction",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("account_id", account.ID.String()),
		zap.Int64("amount", inv.Amount),
		zap.String("status", string(inv.Status)),
	)

	return &dto.ExtractInvoiceResponse{
		Success:   true,
		Invoice:   mapInvoiceToResponse(inv),
		Extracted: *extracted,
	}, nil
}

func parseISODate(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	date, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil
	}
	return &date
}

func formatISODate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format("2006-01-02")
	return &formatted
}

func mapInvoiceToResponse(inv *models.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:            inv.ID.String(),
		AccountID:     inv.AccountID.String(),
		ClientName:    inv.ClientName,
		ClientEmail:   inv.ClientEmail,
		ClientPhone:   inv.ClientPhone,
		InvoiceNumber: inv.InvoiceNumber,
		Amount:        inv.Amount,
		InvoiceDate:   formatISODate(inv.InvoiceDate),
		DueDate:       formatISODate(inv.DueDate),
		Status:        string(inv.Status),
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
	}
}
