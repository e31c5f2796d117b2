package dto

type TransactionResponse struct {
	ID           string `json:"id"`
	Amount       int64  `json:"amount"`
	MerchantName string `json:"merchant_name"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	IsIncome     bool   `json:"is_income"`
	Created      string `json:"created"`
}

// DashboardSummary backs the KPI cards: balance, payroll coverage,
// outstanding invoices. All amounts are minor currency units.
type DashboardSummary struct {
	Balance          int64   `json:"balance"`
	PayrollAmount    int64   `json:"payroll_amount"`
	PayrollDueDate   *string `json:"payroll_due_date"`
	PayrollAtRisk    bool    `json:"payroll_at_risk"`
	PayrollCoverage  int64   `json:"payroll_coverage"`
	TotalOutstanding int64   `json:"total_outstanding"`
	UnpaidCount      int     `json:"unpaid_count"`
	OverdueCount     int     `json:"overdue_count"`
}
