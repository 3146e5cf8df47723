package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a billable record tied to exactly one company.
type Invoice struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"` // nil until the invoice is paid
}

// InvoiceWithCompany is the detail view of an invoice with its owning company
// embedded. Company is nil when the company row could not be read, which only
// happens if it disappears between the two lookups.
type InvoiceWithCompany struct {
	Invoice
	Company *Company
}
