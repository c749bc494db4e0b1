package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/budget"
	"github.com/etnz/budget/plot"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

// tallyCmd holds the flags for the 'tally' subcommand.
type tallyCmd struct {
	incomeFirst bool
	skipRows    int
	skipFooter  int
	symbols     string
	noPlots     bool
}

func (*tallyCmd) Name() string { return "tally" }
func (*tallyCmd) Synopsis() string {
	return "tally one period's transactions export into a budget report"
}
func (*tallyCmd) Usage() string {
	return `bgt tally <transactions-file> <period> <report-file> [starting-balance]

  Reads a transactions export holding an expense and an income column
  block, writes the period's budget report, appends the period to the
  running summary file and renders the category pie charts.
`
}

func (c *tallyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.incomeFirst, "income-first", false, "The income block precedes the expense block in the export.")
	f.IntVar(&c.skipRows, "skip-rows", 3, "Lines to skip before the export's header row.")
	f.IntVar(&c.skipFooter, "skip-footer", 0, "Lines to discard at the bottom of the export.")
	f.StringVar(&c.symbols, "currency-symbols", `[$,]`, "Pattern stripped from amount cells before parsing.")
	f.BoolVar(&c.noPlots, "no-plots", false, "Do not render chart images.")
}

func (c *tallyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 3 || len(args) > 4 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	txFile, period, reportFile := args[0], args[1], args[2]

	balance := budget.M(0, "USD")
	if len(args) == 4 {
		var err error
		if balance, err = parseAmountArg("starting balance", args[3]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	export, err := budget.ReadExportFile(txFile, budget.ExportOptions{
		HeaderSkip:      c.skipRows,
		FooterSkip:      c.skipFooter,
		CurrencySymbols: c.symbols,
		IncomeFirst:     c.incomeFirst,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	income, err := budget.Categorize(export.Income)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	expenses, err := budget.Categorize(export.Expenses)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	summary, err := budget.NewPeriodSummary(period, income, expenses, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	summary.WithStartingBalance(balance)
	logDiags(summary.Diags)

	report := renderer.PeriodMarkdown(summary)
	if err := os.WriteFile(reportFile, []byte(report), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "cannot write report %q: %v\n", reportFile, err)
		return subcommands.ExitFailure
	}
	if err := budget.AppendSummary(*summaryFile, summary); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !c.noPlots {
		savePlot("PiePlot_Expenses_"+period+".png", func(w io.Writer) error {
			return plot.CategoryPie(w, "Expenses", expenses)
		})
		savePlot("PiePlot_Income_"+period+".png", func(w io.Writer) error {
			return plot.CategoryPie(w, "Income", income)
		})
	}

	printMarkdown(report)
	return subcommands.ExitSuccess
}
