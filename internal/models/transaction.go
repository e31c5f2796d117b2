package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is a bank transaction pushed by the provider. The ID is the
// provider's own transaction identifier and doubles as the primary key, so
// re-delivered events dedupe on insert. Amount is signed minor units,
// positive = income.
type Transaction struct {
	ID           string    `db:"id"`
	AccountID    uuid.UUID `db:"account_id"`
	Amount       int64     `db:"amount"`
	MerchantName string    `db:"merchant_name"`
	Category     string    `db:"category"`
	Description  string    `db:"description"`
	IsIncome     bool      `db:"is_income"`
	Created      time.Time `db:"created"`
	CreatedAt    time.Time `db:"created_at"`
}
