package models

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "unpaid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice amounts are integer minor currency units (cents).
type Invoice struct {
	ID            uuid.UUID     `db:"id"`
	AccountID     uuid.UUID     `db:"account_id"`
	ClientName    string        `db:"client_name"`
	ClientEmail   *string       `db:"client_email"`
	ClientPhone   *string       `db:"client_phone"`
	InvoiceNumber *string       `db:"invoice_number"`
	Amount        int64         `db:"amount"`
	InvoiceDate   *time.Time    `db:"invoice_date"`
	DueDate       *time.Time    `db:"due_date"`
	Status        InvoiceStatus `db:"status"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}
