// Package plot renders chart images from budget result types. Like the
// renderer it only consumes computed summaries; every function writes one
// PNG image to the given writer.
package plot

import (
	"fmt"
	"io"
	"math"

	"github.com/etnz/budget"
	"github.com/wcharczuk/go-chart/v2"
)

// CategoryPie renders a pie chart of the absolute amount per category.
func CategoryPie(w io.Writer, title string, s *budget.CategorySummary) error {
	if s.Len() == 0 {
		return fmt.Errorf("cannot plot %q: no categories", title)
	}
	var values []chart.Value
	for _, ct := range s.Sorted() {
		values = append(values, chart.Value{
			Label: ct.Category,
			Value: math.Abs(ct.Amount.AsFloat()),
		})
	}
	pie := chart.PieChart{
		Title:  title,
		Width:  512,
		Height: 512,
		Values: values,
	}
	return pie.Render(chart.PNG, w)
}

// CategoryBar renders a bar chart of the contribution percentage per
// category.
func CategoryBar(w io.Writer, title string, s *budget.CategorySummary) error {
	if s.Len() == 0 {
		return fmt.Errorf("cannot plot %q: no categories", title)
	}
	if s.Total().IsZero() {
		return fmt.Errorf("cannot plot %q: class total is zero, contributions are undefined", title)
	}
	var bars []chart.Value
	for _, ct := range s.Sorted() {
		bars = append(bars, chart.Value{
			Label: ct.Category,
			Value: float64(ct.Contribution),
		})
	}
	bar := chart.BarChart{
		Title:    title,
		Width:    1024,
		Height:   512,
		BarWidth: 40,
		Bars:     bars,
	}
	return bar.Render(chart.PNG, w)
}

// SeriesLines renders the income and expenses of every recorded period as
// line series on a shared axis.
func SeriesLines(w io.Writer, s *budget.Series) error {
	if len(s.Rows) == 0 {
		return fmt.Errorf("cannot plot summary series: no rows")
	}
	xs, ticks := periodAxis(periods(s.Rows))

	income := make([]float64, len(s.Rows))
	expenses := make([]float64, len(s.Rows))
	for i, row := range s.Rows {
		income[i] = row.Income.AsFloat()
		expenses[i] = row.Expenses.AsFloat()
	}

	graph := chart.Chart{
		Width:  1024,
		Height: 512,
		XAxis:  chart.XAxis{Ticks: ticks},
		YAxis:  chart.YAxis{Name: "$"},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "Income [$]", XValues: xs, YValues: income},
			chart.ContinuousSeries{Name: "Expenses [$]", XValues: xs, YValues: expenses},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}

// NetWorthTrend renders the derived net worth on the primary axis and the
// savings percentage on the secondary axis. Periods whose savings
// percentage is the undefined sentinel are left out of the secondary
// series.
func NetWorthTrend(w io.Writer, n *budget.NetWorthSeries) error {
	if len(n.Points) == 0 {
		return fmt.Errorf("cannot plot net worth trend: no points")
	}
	labels := make([]string, len(n.Points))
	for i, p := range n.Points {
		labels[i] = p.Period
	}
	xs, ticks := periodAxis(labels)

	netWorth := make([]float64, len(n.Points))
	for i, p := range n.Points {
		netWorth[i] = p.NetWorth.AsFloat()
	}

	series := []chart.Series{
		chart.ContinuousSeries{Name: "Net worth [$]", XValues: xs, YValues: netWorth},
	}

	var pctX, pctY []float64
	for i, row := range n.Rows {
		if row.SavingsPct.IsUndefined() || row.SavingsPct.IsNaN() {
			continue
		}
		pctX = append(pctX, xs[i])
		pctY = append(pctY, float64(row.SavingsPct))
	}
	if len(pctY) > 0 {
		series = append(series, chart.ContinuousSeries{
			Name:    "pct-savings [%]",
			YAxis:   chart.YAxisSecondary,
			XValues: pctX,
			YValues: pctY,
		})
	}

	graph := chart.Chart{
		Width:          1024,
		Height:         512,
		XAxis:          chart.XAxis{Ticks: ticks},
		YAxis:          chart.YAxis{Name: "$"},
		YAxisSecondary: chart.YAxis{Name: "%"},
		Series:         series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}

func periods(rows []budget.SeriesRow) []string {
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Period
	}
	return labels
}

// periodAxis spreads the period labels over a numeric x axis, in insertion
// order.
func periodAxis(labels []string) ([]float64, []chart.Tick) {
	xs := make([]float64, len(labels))
	ticks := make([]chart.Tick, len(labels))
	for i, label := range labels {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: label}
	}
	return xs, ticks
}
