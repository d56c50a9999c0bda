package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/config"
)

func newListCommand() *cobra.Command {
	var ledgerPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded expenses in ledger order",
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

			out := cmd.OutOrStdout()
			if st.Len() == 0 {
				fmt.Fprintln(out, "No expenses recorded.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tCATEGORY\tAMOUNT\tDESCRIPTION")
			for _, e := range st.Expenses() {
				fmt.Fprintf(tw, "%s\t%s\t%s%s\t%s\n",
					e.DateString(), e.Category, cfg.Display.Currency, e.Amount.StringFixed(2), e.Description)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger file (defaults to configured path)")

	return cmd
}
