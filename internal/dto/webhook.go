package dto

import "time"

// WebhookEvent is the envelope Monzo pushes to the webhook endpoint.
type WebhookEvent struct {
	Type string           `json:"type"`
	Data TransactionEvent `json:"data"`
}

// TransactionEvent is the payload of a transaction.created event. Amount is
// signed minor units (pence), positive = money in.
type TransactionEvent struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	Amount      int64     `json:"amount"`
	Merchant    *Merchant `json:"merchant"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
}

type Merchant struct {
	Name string `json:"name"`
}
