package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar-date layout used everywhere: in user input,
// in the ledger file, and in rendered output. No timezone.
const DateFormat = "2006-01-02"

// Expense is one dated, categorized entry in the ledger.
type Expense struct {
	Date        time.Time
	Category    string // free-form grouping label, never empty
	Amount      decimal.Decimal
	Description string // may be empty
}

// DateString returns the expense date formatted as YYYY-MM-DD.
func (e Expense) DateString() string {
	return e.Date.Format(DateFormat)
}
