// Package renderer builds markdown reports from budget result types.
// Rendering is a pure function of the computed summaries; it never touches
// files or recomputes any metric.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/budget"
	md "github.com/nao1215/markdown"
)

// PeriodMarkdown renders one period's budget report.
func PeriodMarkdown(s *budget.PeriodSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Budget Report for %s", s.Period))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Income"),
			md.Bold(s.TotalIncome.String()),
		},
		Rows: [][]string{
			{"Total Expenses", s.TotalExpenses.String()},
			{"Net Savings", s.NetSavings.String()},
		},
	}
	if s.HasBalance {
		table.Rows = append(table.Rows,
			[]string{"Starting Balance", s.StartingBalance.String()},
			[]string{"Net Worth", s.NetWorth.String()},
		)
	}
	table.Rows = append(table.Rows,
		[]string{"Net Savings as % of Income", s.SavingsPct.String()},
	)
	if s.HasSavings {
		table.Rows = append(table.Rows,
			[]string{"Utilized Savings", s.UtilizedSavings.String()},
			[]string{"Unutilized Savings", s.UnutilizedSavings.String()},
			[]string{"Savings Utilization Ratio", s.UtilizationPct.String()},
		)
	}
	doc.Table(table)

	renderCategories(doc, s.Income)
	renderCategories(doc, s.Expenses)
	if s.HasSavings {
		renderCategories(doc, s.Savings)
	}

	return doc.String()
}

// renderCategories renders one class's category breakdown, sorted by name.
func renderCategories(doc *md.Markdown, s *budget.CategorySummary) {
	doc.H2("Category-wise " + s.Class().Title())

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Category", "Amount", "Contribution"},
		Rows:   [][]string{},
	}
	for _, ct := range s.Sorted() {
		table.Rows = append(table.Rows, []string{
			ct.Category,
			ct.Amount.String(),
			ct.Contribution.String(),
		})
	}
	doc.Table(table)
}
