package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/config"
	"github.com/outlay-dev/outlay/internal/ledger"
)

func newExportCommand() *cobra.Command {
	var ledgerPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as CSV",
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

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating export file %s: %w", outPath, err)
			}
			defer f.Close()

			if err := ledger.WriteCSV(f, st.Expenses()); err != nil {
				return fmt.Errorf("writing export %s: %w", outPath, err)
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d expenses to %s\n", st.Len(), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger file (defaults to configured path)")
	cmd.Flags().StringVar(&outPath, "out", "expenses.csv", "output CSV file")

	return cmd
}
