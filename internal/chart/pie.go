package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/outlay-dev/outlay/internal/report"
)

// PieRenderer draws the percentage distribution of spend by category.
type PieRenderer struct{}

// Kind returns the renderer name.
func (r *PieRenderer) Kind() string { return "pie" }

// Render writes a self-contained HTML pie chart. It fails with
// ErrNoExpenses when total spend is zero, since the shares are undefined.
func (r *PieRenderer) Render(w io.Writer, s report.Summary) error {
	if !s.Total.IsPositive() {
		return report.ErrNoExpenses
	}

	items := make([]opts.PieData, len(s.Categories))
	for i, ct := range s.Categories {
		items[i] = opts.PieData{Name: ct.Category, Value: ct.Total.InexactFloat64()}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Percentage of Expenses by Category"}),
	)
	pie.AddSeries("expenses", items).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
	)

	if err := pie.Render(w); err != nil {
		return fmt.Errorf("rendering pie chart: %w", err)
	}
	return nil
}
