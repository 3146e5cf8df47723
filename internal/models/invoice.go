package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a row of the invoices table. The id, paid, add_date and
// paid_date columns are store-defaulted on insert and read back via RETURNING.
type Invoice struct {
	ID       int64           `db:"id"`
	CompCode string          `db:"comp_code"`
	Amt      decimal.Decimal `db:"amt"`
	Paid     bool            `db:"paid"`
	AddDate  time.Time       `db:"add_date"`
	PaidDate *time.Time      `db:"paid_date"`
}
