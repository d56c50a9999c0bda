package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/config"
	"github.com/outlay-dev/outlay/internal/model"
)

func newAddCommand() *cobra.Command {
	var date string
	var category string
	var amount string
	var description string
	var ledgerPath string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve()
			if err != nil {
				return err
			}
			path := ledgerPath
			if path == "" {
				path = cfg.Ledger.Path
			}

			st, err := loadStore(path, true)
			if err != nil {
				return err
			}

			if err := st.Add(date, category, amount, description); err != nil {
				return err
			}
			if err := st.Save(path); err != nil {
				return err
			}

			e := st.Expenses()[st.Len()-1]
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s%s for %s on %s\n",
				cfg.Display.Currency, e.Amount.StringFixed(2), e.Category, e.DateString())
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format(model.DateFormat), "expense date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "expense category (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&amount, "amount", "", "expense amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&description, "description", "", "optional description")
	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger file (defaults to configured path)")

	return cmd
}
