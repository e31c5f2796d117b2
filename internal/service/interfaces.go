package service

import (
	"context"

	"github.com/Manoj7ar/float-your-ai-cfo/internal/dto"
	"github.com/Manoj7ar/float-your-ai-cfo/internal/models"
	"github.com/Manoj7ar/float-your-ai-cfo/internal/repository"

	"github.com/google/uuid"
)

// UserRepository defines the persistence operations the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// AccountRepository resolves and creates the tenant accounts that scope all
// invoices and transactions. Lookups return (nil, nil) when no account
// matches.
type AccountRepository interface {
	Create(ctx context.Context, acc *models.Account) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Account, error)
	GetByMonzoAccountID(ctx context.Context, monzoAccountID string) (*models.Account, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *models.Invoice) error
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*models.Invoice, error)
	TotalsByAccountID(ctx context.Context, accountID uuid.UUID) (*repository.InvoiceTotals, error)
}

// TransactionRepository persists provider-pushed transactions. Create returns
// repository.ErrDuplicateTransaction on re-delivered events.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	ListByAccountID(ctx context.Context, accountID uuid.UUID, limit int) ([]*models.Transaction, error)
	BalanceByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error)
}

// InvoiceExtractor turns an uploaded document into structured invoice fields
// via an external multimodal model.
type InvoiceExtractor interface {
	ExtractInvoice(ctx context.Context, content []byte, contentType, fileName string) (*dto.ExtractedInvoice, error)
}
