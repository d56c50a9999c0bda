package commands

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/config"
	"github.com/outlay-dev/outlay/internal/report"
)

func newSummaryCommand() *cobra.Command {
	var ledgerPath string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show total and per-category spend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve()
			if err != nil {
				return err
			}
			path := ledgerPath
			if path == "" {
				path = cfg.Ledger.Path
			}

			st, err := loadStore(path, false)
			if err != nil {
				return err
			}

			sum := report.Summarize(st.Expenses())
			return writeSummary(cmd.OutOrStdout(), sum, cfg.Display.Currency)
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger file (defaults to configured path)")

	return cmd
}

var oneHundred = decimal.NewFromInt(100)

// writeSummary renders a text summary: total spend, then one line per
// category with its total, entry count, and share of the total.
func writeSummary(w io.Writer, sum report.Summary, currency string) error {
	shares, err := sum.Percentages()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Total expenses: %s%s\n\n", currency, sum.Total.StringFixed(2))
	fmt.Fprintln(w, "Expenses by category:")
	for i, ct := range sum.Categories {
		pct := shares[i].Fraction.Mul(oneHundred)
		fmt.Fprintf(w, "  %-20s %s%s (%d entries, %s%%)\n",
			ct.Category, currency, ct.Total.StringFixed(2), ct.Count, pct.StringFixed(1))
	}
	return nil
}
