package repository

import (
	"context"

	"github.com/Manoj7ar/float-your-ai-cfo/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var invoiceColumns = []string{
	"id", "account_id", "client_name", "client_email", "client_phone",
	"invoice_number", "amount", "invoice_date", "due_date", "status",
	"created_at", "updated_at",
}

type InvoiceRepository struct {
	db     Querier
	logger *zap.Logger
}

func NewInvoiceRepository(db Querier, logger *zap.Logger) *InvoiceRepository {
	return &InvoiceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *models.Invoice) error {
	query := squirrel.Insert("invoices").
		Columns(invoiceColumns...).
		Values(
			inv.ID, inv.AccountID, inv.ClientName, inv.ClientEmail, inv.ClientPhone,
			inv.InvoiceNumber, inv.Amount, inv.InvoiceDate, inv.DueDate, inv.Status,
			inv.CreatedAt, inv.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *InvoiceRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*models.Invoice, error) {
	query := squirrel.Select(invoiceColumns...).
		From("invoices").
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		var inv models.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.AccountID, &inv.ClientName, &inv.ClientEmail, &inv.ClientPhone,
			&inv.InvoiceNumber, &inv.Amount, &inv.InvoiceDate, &inv.DueDate, &inv.Status,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, err
		}
		invoices = append(invoices, &inv)
	}

	return invoices, rows.Err()
}

// InvoiceTotals aggregates the non-paid invoices behind the dashboard KPIs.
type InvoiceTotals struct {
	TotalOutstanding int64
	UnpaidCount      int
	OverdueCount     int
}

func (r *InvoiceRepository) TotalsByAccountID(ctx context.Context, accountID uuid.UUID) (*InvoiceTotals, error) {
	query := squirrel.Select(
		"COALESCE(SUM(amount) FILTER (WHERE status <> 'paid'), 0)",
		"COUNT(*) FILTER (WHERE status <> 'paid')",
		"COUNT(*) FILTER (WHERE status = 'overdue')",
	).
		From("invoices").
		Where(squirrel.Eq{"account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var totals InvoiceTotals
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&totals.TotalOutstanding, &totals.UnpaidCount, &totals.OverdueCount,
	)
	if err != nil {
		return nil, err
	}

	return &totals, nil
}
