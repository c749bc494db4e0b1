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

// networthCmd holds the flags for the 'networth' subcommand.
type networthCmd struct {
	reportFile string
	noPlots    bool
}

func (*networthCmd) Name() string { return "networth" }
func (*networthCmd) Synopsis() string {
	return "derive the year-to-date totals and net worth trend from the summary series"
}
func (*networthCmd) Usage() string {
	return `bgt networth <initial-net-worth> [summary-file]

  Reads the running summary file, aggregates the year-to-date totals,
  derives every period's cumulative net worth from the initial value and
  writes the trend report and plots.
`
}

func (c *networthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.reportFile, "o", "Summary_report.txt", "File to write the trend report to.")
	f.BoolVar(&c.noPlots, "no-plots", false, "Do not render chart images.")
}

func (c *networthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	initial, err := parseAmountArg("initial net worth", args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	path := *summaryFile
	if len(args) == 2 {
		path = args[1]
	}

	series, err := budget.ReadSeries(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	totals := series.Totals()
	trend := series.NetWorth(initial)

	diags := totals.Diags
	_, pctDiags := trend.PercentChange()
	diags.Merge(pctDiags)
	logDiags(diags)

	report := renderer.SeriesMarkdown(totals, trend)
	if err := os.WriteFile(c.reportFile, []byte(report), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "cannot write report %q: %v\n", c.reportFile, err)
		return subcommands.ExitFailure
	}

	if !c.noPlots {
		savePlot("Plot_incexp_summary.png", func(w io.Writer) error {
			return plot.SeriesLines(w, series)
		})
		savePlot("Plot_networth_savingspct.png", func(w io.Writer) error {
			return plot.NetWorthTrend(w, trend)
		})
	}

	printMarkdown(report)
	return subcommands.ExitSuccess
}
