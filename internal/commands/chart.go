package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/chart"
	"github.com/outlay-dev/outlay/internal/config"
	"github.com/outlay-dev/outlay/internal/report"
)

func newChartCommand() *cobra.Command {
	var ledgerPath string
	var outPath string

	registry := chart.DefaultRegistry()

	cmd := &cobra.Command{
		Use:   "chart <kind>",
		Short: "Render an expense chart as HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer := registry.Get(args[0])
			if renderer == nil {
				return fmt.Errorf("unknown chart kind %q, want one of: %s",
					args[0], strings.Join(registry.Kinds(), ", "))
			}

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

			out := outPath
			if out == "" {
				out = filepath.Join(cfg.Charts.OutputDir, renderer.Kind()+".html")
			}
			if err := writeChart(renderer, out, sum); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Chart written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger file (defaults to configured path)")
	cmd.Flags().StringVar(&outPath, "out", "", "output HTML file (defaults to the configured chart dir)")

	return cmd
}

// writeChart renders the summary to an HTML file, creating parent
// directories as needed. The chart is rendered in memory first so a
// render failure leaves no half-written file behind.
func writeChart(renderer chart.Renderer, path string, sum report.Summary) error {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, sum); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating chart dir: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing chart file %s: %w", path, err)
	}

	logger.Debug().Str("path", path).Str("kind", renderer.Kind()).Msg("chart rendered")
	return nil
}
