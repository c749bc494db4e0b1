package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/budget"
	md "github.com/nao1215/markdown"
)

// SeriesMarkdown renders the year-to-date report: totals over all recorded
// periods followed by the derived net worth trend.
func SeriesMarkdown(totals *budget.SeriesTotals, trend *budget.NetWorthSeries) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Year-to-Date Summary")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Income"),
			md.Bold(totals.Income.String()),
		},
		Rows: [][]string{
			{"Total Expenses", totals.Expenses.String()},
			{"Net Savings", totals.NetSavings.String()},
			{"Net Savings as % of Income", totals.SavingsPct.String()},
		},
	}
	if totals.HasSavings {
		table.Rows = append(table.Rows,
			[]string{"Utilized Savings", totals.Utilized.String()},
			[]string{"Unutilized Savings", totals.Unutilized.String()},
			[]string{"Savings Utilization Ratio", totals.UtilizationPct.String()},
		)
	}
	doc.Table(table)

	doc.H2("Net Worth Trend")
	doc.Table(netWorthTable(trend))

	pct, _ := trend.PercentChange()
	doc.PlainText(fmt.Sprintf("%%-change in net worth: %s", pct.SignedString()))

	return doc.String()
}

func netWorthTable(trend *budget.NetWorthSeries) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Time period", "Net Worth"},
		Rows: [][]string{
			{"Start", trend.Initial.String()},
		},
	}
	for _, p := range trend.Points {
		table.Rows = append(table.Rows, []string{p.Period, p.NetWorth.String()})
	}
	return table
}
