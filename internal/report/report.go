// Package report derives summary statistics from a sequence of expenses.
// All functions are read-only over their input.
package report

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/model"
)

// ErrNoExpenses reports an aggregation that is undefined on zero total
// spend, such as percentage shares.
var ErrNoExpenses = errors.New("no expenses recorded")

// CategoryTotal is the aggregate for one category label.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
	Average  decimal.Decimal
}

// CategoryShare is one category's fraction of total spend, in [0, 1].
type CategoryShare struct {
	Category string
	Fraction decimal.Decimal
}

// Summary bundles total spend with per-category aggregates.
type Summary struct {
	Total      decimal.Decimal
	Categories []CategoryTotal
}

// Total returns the sum of amounts over all expenses, zero when empty.
func Total(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// ByCategory sums amounts grouped by category label. Categories appear in
// order of first appearance in the input.
func ByCategory(expenses []model.Expense) []CategoryTotal {
	index := make(map[string]int)
	var totals []CategoryTotal

	for _, e := range expenses {
		i, seen := index[e.Category]
		if !seen {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryTotal{Category: e.Category})
		}
		totals[i].Total = totals[i].Total.Add(e.Amount)
		totals[i].Count++
	}

	for i := range totals {
		count := decimal.NewFromInt(int64(totals[i].Count))
		totals[i].Average = totals[i].Total.DivRound(count, 2)
	}
	return totals
}

// Summarize computes the full aggregate view of a sequence of expenses.
func Summarize(expenses []model.Expense) Summary {
	return Summary{
		Total:      Total(expenses),
		Categories: ByCategory(expenses),
	}
}

// Percentages returns each category's share of total spend as a fraction.
// It fails with ErrNoExpenses when total spend is zero, since the shares
// are undefined.
func (s Summary) Percentages() ([]CategoryShare, error) {
	if !s.Total.IsPositive() {
		return nil, ErrNoExpenses
	}

	shares := make([]CategoryShare, len(s.Categories))
	for i, ct := range s.Categories {
		shares[i] = CategoryShare{
			Category: ct.Category,
			Fraction: ct.Total.Div(s.Total),
		}
	}
	return shares, nil
}
