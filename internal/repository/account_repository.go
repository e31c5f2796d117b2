package repository

import (
	"context"
	"errors"

	"github.com/Manoj7ar/float-your-ai-cfo/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var accountColumns = []string{
	"id", "user_id", "business_name", "monzo_account_id",
	"payroll_amount", "payroll_due_date", "payroll_at_risk",
	"created_at", "updated_at",
}

type AccountRepository struct {
	db     Querier
	logger *zap.Logger
}

func NewAccountRepository(db Querier, logger *zap.Logger) *AccountRepository {
	return &AccountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *AccountRepository) Create(ctx context.Context, acc *models.Account) error {
	query := squirrel.Insert("accounts").
		Columns(accountColumns...).
		Values(
			acc.ID, acc.UserID, acc.BusinessName, acc.MonzoAccountID,
			acc.PayrollAmount, acc.PayrollDueDate, acc.PayrollAtRisk,
			acc.CreatedAt, acc.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// GetByUserID returns the caller's account, or (nil, nil) when the user has
// no account provisioned.
func (r *AccountRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Account, error) {
	query := squirrel.Select(accountColumns...).
		From("accounts").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	return r.getOne(ctx, query)
}

// GetByMonzoAccountID resolves the account a webhook event belongs to, or
// (nil, nil) when the provider account is not connected here.
func (r *AccountRepository) GetByMonzoAccountID(ctx context.Context, monzoAccountID string) (*models.Account, error) {
	query := squirrel.Select(accountColumns...).
		From("accounts").
		Where(squirrel.Eq{"monzo_account_id": monzoAccountID}).
		PlaceholderFormat(squirrel.Dollar)

	return r.getOne(ctx, query)
}

func (r *AccountRepository) getOne(ctx context.Context, query squirrel.SelectBuilder) (*models.Account, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var acc models.Account
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&acc.ID, &acc.UserID, &acc.BusinessName, &acc.MonzoAccountID,
		&acc.PayrollAmount, &acc.PayrollDueDate, &acc.PayrollAtRisk,
		&acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &acc, nil
}
