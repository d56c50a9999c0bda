package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/outlay-dev/outlay/internal/model"
)

// CSVHeader is the header row for exported expense CSVs.
const CSVHeader = "date,category,amount,description"

const (
	csvNumFields = 4
	colDate      = 0
	colCategory  = 1
	colAmount    = 2
	colDesc      = 3
)

// WriteCSV writes expenses as CSV (including header), in ledger order.
// Amounts are formatted with two decimal places.
func WriteCSV(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(CSVHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range expenses {
		if err := cw.Write(marshalCSVRow(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func marshalCSVRow(e model.Expense) []string {
	row := make([]string, csvNumFields)
	row[colDate] = e.DateString()
	row[colCategory] = e.Category
	row[colAmount] = e.Amount.StringFixed(2)
	row[colDesc] = e.Description
	return row
}
