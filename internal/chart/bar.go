package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/outlay-dev/outlay/internal/report"
)

// BarRenderer draws total spend per category.
type BarRenderer struct{}

// Kind returns the renderer name.
func (r *BarRenderer) Kind() string { return "bar" }

// Render writes a self-contained HTML bar chart of category totals.
func (r *BarRenderer) Render(w io.Writer, s report.Summary) error {
	if !s.Total.IsPositive() {
		return report.ErrNoExpenses
	}

	categories := make([]string, len(s.Categories))
	values := make([]opts.BarData, len(s.Categories))
	for i, ct := range s.Categories {
		categories[i] = ct.Category
		values[i] = opts.BarData{Value: ct.Total.InexactFloat64()}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Expenses by Category"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Category", AxisLabel: &opts.AxisLabel{Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Amount"}),
	)
	bar.SetXAxis(categories).AddSeries("amount", values)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("rendering bar chart: %w", err)
	}
	return nil
}
