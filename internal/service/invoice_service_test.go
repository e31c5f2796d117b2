package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Manoj7ar/float-your-ai-cfo/internal/dto"
	"github.com/Manoj7ar/float-your-ai-cfo/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestInvoiceService_ExtractFromUpload(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()
	account := &models.Account{ID: accountID, UserID: userID, BusinessName: "Acme Ltd"}
	fixedNow := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	content := []byte("%PDF-1.4 fake")

	newService := func(accountRepo *MockAccountRepository, invoiceRepo *MockInvoiceRepository, extractor *MockInvoiceExtractor) *InvoiceService {
		svc := NewInvoiceService(accountRepo, invoiceRepo, extractor, zap.NewNop())
		svc.now = func() time.Time { return fixedNow }
		return svc
	}

	t.Run("successful extraction with future due date", func(t *testing.T) {
		accountRepo := new(MockAccountRepository)
		invoiceRepo := new(MockInvoiceRepository)
		extractor := new(MockInvoiceExtractor)

		accountRepo.On("GetByUserID", ctx, userID).Return(account, nil)
		extractor.On("ExtractInvoice", ctx, content, "application/pdf", "invoice.pdf").Return(&dto.ExtractedInvoice{
			ClientName: strPtr("Acme"),
			Amount:     int64Ptr(240000),
			DueDate:    strPtr("2026-04-01"),
		}, nil)

		var createdInvoice *models.Invoice
		invoiceRepo.On("Create", ctx, mock.AnythingOfType("*models.Invoice")).Run(func(args mock.Arguments) {
			createdInvoice = args.Get(1).(*models.Invoice)
		}).Return(nil)

		svc := newService(accountRepo, invoiceRepo, extractor)
		resp, err := svc.ExtractFromUpload(ctx, userID, content, "application/pdf", "invoice.pdf")
		require.NoError(t, err)

		assert.True(t, resp.Success)
		assert.Equal(t, "Acme", resp.Invoice.ClientName)
		assert.Equal(t, int64(240000), resp.Invoice.Amount)
		assert.Equal(t, "unpaid", resp.Invoice.Status)

		require.NotNil(t, createdInvoice)
		assert.Equal(t, accountID, createdInvoice.AccountID)
		assert.Equal(t, models.InvoiceStatusUnpaid, createdInvoice.Status)
		require.NotNil(t, createdInvoice.DueDate)
		assert.Equal(t, "2026-04-01", createdInvoice.DueDate.Format("2006-01-02"))

		accountRepo.AssertExpectations(t)
		invoiceRepo.AssertExpectations(t)
		extractor.AssertExpectations(t)
	})

	t.Run("past due date classifies as overdue", func(t *testing.T) {
		accountRepo := new(MockAccountRepository)
		invoiceRepo := new(MockInvoiceRepository)
		extractor := new(MockInvoiceExtractor)

		accountRepo.On("GetByUserID", ctx, userID).Return(account, nil)
		extractor.On("ExtractInvoice", ctx, content, "application/pdf", "old.pdf").Return(&dto.ExtractedInvoice{
			ClientName: strPtr("Globex"),
			Amount:     int64Ptr(5000),
			DueDate:    strPtr("2020-01-01"),
		}, nil)
		invoiceRepo.On("Create", ctx, mock.MatchedBy(func(inv *models.Invoice) bool {
			return inv.Status == models.InvoiceStatusOverdue
		})).Return(nil)

		svc := newService(accountRepo, invoiceRepo, extractor)
		resp, err := svc.ExtractFromUpload(ctx, userID, content, "application/pdf", "old.pdf")
		require.NoError(t, err)
		assert.Equal(t, "overdue", resp.Invoice.Status)

		invoiceRepo.AssertExpectations(t)
	})

	t.Run("missing fields fall back to defaults", func(t *testing.T) {
		accountRepo := new(MockAccountRepository)
		invoiceRepo := new(MockInvoiceRepository)
		extractor := new(MockInvoiceExtractor)

		accountRepo.On("GetByUserID", ctx, userID).Return(account, nil)
		extractor.On("ExtractInvoice", ctx, content, "image/png", "blurry.png").Return(&dto.ExtractedInvoice{}, nil)

		var createdInvoice *models.Invoice
		invoiceRepo.On("Create", ctx, mock.AnythingOfType("*models.Invoice")).Run(func(args mock.Arguments) {
			createdInvoice = args.Get(1).(*models.Invoice)
		}).Return(nil)

		svc := newService(accountRepo, invoiceRepo, extractor)
		resp, err := svc.ExtractFromUpload(ctx, userID, content, "image/png", "blurry.png")
		require.NoError(t, err)

		assert.Equal(t, "Unknown Client", createdInvoice.ClientName)
		assert.Equal(t, int64(0), createdInvoice.Amount)
		assert.Nil(t, createdInvoice.InvoiceDate)
		assert.Nil(t, createdInvoice.DueDate)
		assert.Equal(t, models.InvoiceStatusUnpaid, createdInvoice.Status)
		assert.Equal(t, "unpaid", resp.Invoice.Status)
	})

	t.Run("empty client name falls back to default", func(t *testing.T) {
		accountRepo := new(MockAccountRepository)
		invoiceRepo := new(MockInvoiceRepository)
		extractor := new(MockInvoiceExtractor)

		accountRepo.On("GetByUserID", ctx, userID).Return(account, nil)
		extractor.On("ExtractInvoice", ctx, content, "application/pdf", "invoice.pdf").Return(&dto.ExtractedInvoice{
			ClientName: strPtr(""),
			Amount:     int64Ptr(100),
		}, nil)
		invoiceRepo.On("Create", ctx, mock.MatchedBy(func(inv *models.Invoice) bool {
			return inv.ClientName == "Unknown Client"
		})).Return(nil)

		svc := newService(accountRepo, invoiceRepo, extractor)
		_, err := svc.ExtractFromUpload(ctx, userID, content, "application/pdf", "invoice.pdf")
		require.NoError(t, err)
		invoiceRepo.AssertExpectations(t)
	})

	t.Run("unparsable due date leaves status unpaid", func(t *testing.T) {
		accountRepo := new(MockAccountRepository)
		invoiceRepo := new(MockInvoiceRepository)
		extractor := new(MockInvoiceExtractor)

		accountRepo.On("GetByUserID", ctx, userID).Return(account, nil)
		extractor.On("ExtractInvoice", ctx, content, "application/pdf", "invoice.pdf").Return(&dto.ExtractedInvoice{
			ClientName: strPtr("Acme"),
			Amount:     int64Ptr(100),
			DueDate:    strPtr("next Tuesday"),
		}, nil)
		invoiceRepo.On("Create", ctx, mock.MatchedBy(func(inv *models.Invoice) bool {
			return inv.DueDate == nil && inv.Status == models.InvoiceStatusUnpaid
		})).Return(nil)

		svc := newService(accountRepo, invoiceRepo, extractor)
		_, err := svc.ExtractFromUpload(ctx, userID, content, "application/pdf", "invoice.pdf")
		require.NoError(t, err)
		invoiceRepo.AssertExpectations(t)
	})

	t.Run("no account for user", func(t *testing.T) {
		accountRepo := new(MockAccountRepository)
		invoiceRepo := new(MockInvoiceRepository)
		extractor := new(MockInvoiceExtractor)

		accountRepo.On("GetByUserID", ctx, userID).Return(nil, nil)

		svc := newService(accountRepo, invoiceRepo, extractor)
		_, err := svc.ExtractFromUpload(ctx, userID, content, "application/pdf", "invoice.pdf")
		assert.ErrorIs(t, err, ErrNoAccount)

		extractor.AssertNotCalled(t, "ExtractInvoice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		invoiceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("extraction failure aborts without insert", func(t *testing.T) {
		accountRepo := new(MockAccountRepository)
		invoiceRepo := new(MockInvoiceRepository)
		extractor := new(MockInvoiceExtractor)

		accountRepo.On("GetByUserID", ctx, userID).Return(account, nil)
		extractor.On("ExtractInvoice", ctx, content, "application/pdf", "invoice.pdf").Return(nil, ErrUnparsableReply)

		svc := newService(accountRepo, invoiceRepo, extractor)
		_, err := svc.ExtractFromUpload(ctx, userID, content, "application/pdf", "invoice.pdf")
		assert.ErrorIs(t, err, ErrUnparsableReply)

		invoiceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("insert failure surfaces", func(t *testing.T) {
		accountRepo := new(MockAccountRepository)
		invoiceRepo := new(MockInvoiceRepository)
		extractor := new(MockInvoiceExtractor)

		accountRepo.On("GetByUserID", ctx, userID).Return(account, nil)
		extractor.On("ExtractInvoice", ctx, content, "application/pdf", "invoice.pdf").Return(&dto.ExtractedInvoice{
			ClientName: strPtr("Acme"),
			Amount:     int64Ptr(100),
		}, nil)
		invoiceRepo.On("Create", ctx, mock.AnythingOfType("*models.Invoice")).Return(errors.New("connection reset"))

		svc := newService(accountRepo, invoiceRepo, extractor)
		_, err := svc.ExtractFromUpload(ctx, userID, content, "application/pdf", "invoice.pdf")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create invoice")
	})
}
