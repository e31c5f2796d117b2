package repository

import (
	"context"
	"errors"

	"github.com/Manoj7ar/float-your-ai-cfo/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var transactionColumns = []string{
	"id", "account_id", "amount", "merchant_name", "category",
	"description", "is_income", "created", "created_at",
}

type TransactionRepository struct {
	db     Querier
	logger *zap.Logger
}

func NewTransactionRepository(db Querier, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a transaction keyed by its provider identifier. Returns
// ErrDuplicateTransaction when a row with the same identifier already exists.
func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns(transactionColumns...).
		Values(
			tx.ID, tx.AccountID, tx.Amount, tx.MerchantName, tx.Category,
			tx.Description, tx.IsIncome, tx.Created, tx.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateTransaction
		}
		return err
	}

	return nil
}

func (r *TransactionRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID, limit int) ([]*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("created DESC").
		Limit(uint64(limit)).
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

	var transactions []*models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.AccountID, &tx.Amount, &tx.MerchantName, &tx.Category,
			&tx.Description, &tx.IsIncome, &tx.Created, &tx.CreatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}

// BalanceByAccountID sums all signed transaction amounts for the account.
func (r *TransactionRepository) BalanceByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error) {
	query := squirrel.Select("COALESCE(SUM(amount), 0)").
		From("transactions").
		Where(squirrel.Eq{"account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&balance); err != nil {
		return 0, err
	}

	return balance, nil
}
