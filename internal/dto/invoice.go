package dto

// ExtractedInvoice is the raw field set the extraction model returns. Every
// field except the amount is a string or null in the model's reply; the
// amount is a positive integer in minor currency units.
type ExtractedInvoice struct {
	ClientName    *string `json:"client_name"`
	ClientEmail   *string `json:"client_email"`
	ClientPhone   *string `json:"client_phone"`
	InvoiceNumber *string `json:"invoice_number"`
	Amount        *int64  `json:"amount"`
	InvoiceDate   *string `json:"invoice_date"`
	DueDate       *string `json:"due_date"`
}

type InvoiceResponse struct {
	ID            string  `json:"id"`
	AccountID     string  `json:"account_id"`
	ClientName    string  `json:"client_name"`
	ClientEmail   *string `json:"client_email"`
	ClientPhone   *string `json:"client_phone"`
	InvoiceNumber *string `json:"invoice_number"`
	Amount        int64   `json:"amount"`
	InvoiceDate   *string `json:"invoice_date"`
	DueDate       *string `json:"due_date"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

type ExtractInvoiceResponse struct {
	Success   bool             `json:"success"`
	Invoice   InvoiceResponse  `json:"invoice"`
	Extracted ExtractedInvoice `json:"extracted"`
}
