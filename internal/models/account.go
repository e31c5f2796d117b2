package models

import (
	"time"

	"github.com/google/uuid"
)

// Account is the tenant every invoice and transaction is scoped to. There is
// exactly one account per user; MonzoAccountID routes incoming webhook events
// to it once the user has connected their bank.
type Account struct {
	ID             uuid.UUID  `db:"id"`
	UserID         uuid.UUID  `db:"user_id"`
	BusinessName   string     `db:"business_name"`
	MonzoAccountID *string    `db:"monzo_account_id"`
	PayrollAmount  int64      `db:"payroll_amount"`
	PayrollDueDate *time.Time `db:"payroll_due_date"`
	PayrollAtRisk  bool       `db:"payroll_at_risk"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}
