package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/model"
)

// ErrMalformedLedger reports a ledger file whose JSON does not decode to the
// expected array-of-records shape.
var ErrMalformedLedger = errors.New("malformed ledger file")

// record is the wire shape of one expense in the ledger JSON array.
// Pointers distinguish an absent field from a present-but-zero one so the
// decode boundary can reject objects missing required keys.
type record struct {
	Date        *string      `json:"date"`
	Category    *string      `json:"category"`
	Amount      *json.Number `json:"amount"`
	Description *string      `json:"description"`
}

// ReadExpenses decodes a JSON array of expense records. Every object must
// carry a valid YYYY-MM-DD date, a non-empty category, and a numeric amount;
// description defaults to empty when absent.
func ReadExpenses(r io.Reader) ([]model.Expense, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLedger, err)
	}

	expenses := make([]model.Expense, 0, len(records))
	for i, rec := range records {
		e, err := unmarshalRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedLedger, i, err)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// WriteExpenses encodes expenses as an indented JSON array, in order.
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	records := make([]record, len(expenses))
	for i, e := range expenses {
		records[i] = marshalRecord(e)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	return nil
}

func marshalRecord(e model.Expense) record {
	date := e.DateString()
	amount := json.Number(e.Amount.String())
	desc := e.Description
	return record{Date: &date, Category: &e.Category, Amount: &amount, Description: &desc}
}

func unmarshalRecord(rec record) (model.Expense, error) {
	if rec.Date == nil {
		return model.Expense{}, errors.New("missing date")
	}
	if rec.Category == nil {
		return model.Expense{}, errors.New("missing category")
	}
	if rec.Amount == nil {
		return model.Expense{}, errors.New("missing amount")
	}

	date, err := ParseDate(*rec.Date)
	if err != nil {
		return model.Expense{}, err
	}

	amount, err := decimal.NewFromString(rec.Amount.String())
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing amount %q: %v", rec.Amount.String(), err)
	}
	if amount.IsNegative() {
		return model.Expense{}, fmt.Errorf("negative amount %s", amount)
	}

	category := *rec.Category
	if category == "" {
		return model.Expense{}, errors.New("empty category")
	}

	var desc string
	if rec.Description != nil {
		desc = *rec.Description
	}

	return model.Expense{Date: date, Category: category, Amount: amount, Description: desc}, nil
}
