package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/model"
)

var (
	// ErrInvalidDate reports a date that does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
	// ErrInvalidAmount reports an amount that is not a positive number.
	ErrInvalidAmount = errors.New("invalid amount, expected a positive number")
	// ErrEmptyCategory reports a blank category label.
	ErrEmptyCategory = errors.New("category must not be empty")
)

// ParseDate parses a YYYY-MM-DD calendar date. Out-of-range components
// ("2024-13-40") are rejected along with wrong layouts.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(model.DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ParseAmount parses a positive decimal amount. Both dot and comma decimal
// separators are accepted ("10.50" and "10,50" are equivalent).
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	return amount, nil
}

// NewExpense validates raw user input and builds an Expense from it.
func NewExpense(date, category, amount, description string) (model.Expense, error) {
	d, err := ParseDate(date)
	if err != nil {
		return model.Expense{}, err
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return model.Expense{}, ErrEmptyCategory
	}

	amt, err := ParseAmount(amount)
	if err != nil {
		return model.Expense{}, err
	}

	return model.Expense{
		Date:        d,
		Category:    category,
		Amount:      amt,
		Description: strings.TrimSpace(description),
	}, nil
}
