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

// collateCmd holds the flags for the 'collate' subcommand.
type collateCmd struct {
	skipRows   int
	skipFooter int
	symbols    string
	noPlots    bool
}

func (*collateCmd) Name() string { return "collate" }
func (*collateCmd) Synopsis() string {
	return "collate one or more savings-tracking exports into a period report"
}
func (*collateCmd) Usage() string {
	return `bgt collate <period> <report-file> <transactions-file>...

  Reads transactions exports holding expense, income and savings column
  blocks, merges them into one period, writes the period's budget report
  with savings utilization, appends the period to the running summary
  file and renders the category bar charts.
`
}

func (c *collateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.skipRows, "skip-rows", 3, "Lines to skip before each export's header row.")
	f.IntVar(&c.skipFooter, "skip-footer", 0, "Lines to discard at the bottom of each export.")
	f.StringVar(&c.symbols, "currency-symbols", `[$,]`, "Pattern stripped from amount cells before parsing.")
	f.BoolVar(&c.noPlots, "no-plots", false, "Do not render chart images.")
}

func (c *collateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 3 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	period, reportFile, txFiles := args[0], args[1], args[2:]

	opts := budget.ExportOptions{
		HeaderSkip:      c.skipRows,
		FooterSkip:      c.skipFooter,
		CurrencySymbols: c.symbols,
	}

	var merged *budget.Export
	for _, txFile := range txFiles {
		export, err := budget.ReadExportFile(txFile, opts)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if merged == nil {
			merged = export
			continue
		}
		if err := merged.Merge(export); err != nil {
			fmt.Fprintf(os.Stderr, "export %q does not match the layout of %q: %v\n", txFile, txFiles[0], err)
			return subcommands.ExitFailure
		}
	}

	grpIncome, err := budget.Categorize(merged.Income)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	grpExpenses, err := budget.Categorize(merged.Expenses)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	grpSavings, err := budget.Categorize(merged.Savings)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	summary, err := budget.NewPeriodSummary(period, grpIncome, grpExpenses, grpSavings)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
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
		for _, s := range []*budget.CategorySummary{grpIncome, grpExpenses, grpSavings} {
			title := s.Class().Title()
			savePlot("Plot_"+title+"_"+period+".png", func(w io.Writer) error {
				return plot.CategoryBar(w, title, s)
			})
		}
	}

	printMarkdown(report)
	return subcommands.ExitSuccess
}
