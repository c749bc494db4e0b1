// Package cmd implements the CLI application to tally budget sheets.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/budget"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&tallyCmd{}, "reports")
	c.Register(&collateCmd{}, "reports")
	c.Register(&networthCmd{}, "trends")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var summaryFile = flag.String("summary-file", envDefault("BUDGET_SUMMARY_FILE", "budget_summary.csv"),
	"Path to the running summary series file")

var loadEnv sync.Once

// envDefault resolves a flag default from the environment, loading a .env
// file once if one is present.
func envDefault(key, fallback string) string {
	loadEnv.Do(func() { _ = godotenv.Load() })
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// printMarkdown renders markdown content to the terminal.
func printMarkdown(content string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(content)
		return
	}
	out, err := r.Render(content)
	if err != nil {
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}

// logDiags surfaces the advisory warnings a computation returned.
func logDiags(diags budget.Diagnostics) {
	for _, d := range diags {
		log.Println("warning:", d)
	}
}

// parseAmountArg parses a numeric positional argument such as a starting
// balance.
func parseAmountArg(field, value string) (budget.Money, error) {
	m, err := budget.ParseMoney(value, nil, "USD")
	if err != nil {
		return budget.Money{}, &budget.ValueError{Field: field, Value: value, Err: err}
	}
	return m, nil
}

// savePlot writes one chart image, logging instead of failing: plots are
// side artifacts of a report run.
func savePlot(path string, render func(io.Writer) error) {
	f, err := os.Create(path)
	if err != nil {
		log.Printf("warning: cannot create plot %q: %v", path, err)
		return
	}
	defer f.Close()
	if err := render(f); err != nil {
		log.Printf("warning: cannot render plot %q: %v", path, err)
	}
}
