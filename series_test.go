package budget

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// tallied builds a basic period summary with the given totals.
func tallied(t *testing.T, period string, income, expenses float64) *PeriodSummary {
	t.Helper()
	inc := categorized(t, Income, TransactionRecord{Category: "Salary", Amount: usd(income)})
	exp := categorized(t, Expense, TransactionRecord{Category: "Rent", Amount: usd(expenses)})
	s, err := NewPeriodSummary(period, inc, exp, nil)
	if err != nil {
		t.Fatalf("NewPeriodSummary() failed: %v", err)
	}
	return s.WithStartingBalance(usd(0))
}

func TestAppendSummary_CreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")

	if err := AppendSummary(path, tallied(t, "2019-01", 5000, 3000)); err != nil {
		t.Fatalf("AppendSummary() failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading summary file failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 2 {
		t.Fatalf("summary file has %d lines, want header + 1 row: %q", len(lines), content)
	}
	if want := "Time period,Income [$],Expenses [$],Savings [$],Net Worth [$],pct-savings [%]"; lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
	if want := "2019-01,5000.00,3000.00,2000.00,2000.00,40.00"; lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}

func TestAppendSummary_AppendOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")

	// appending the same period twice produces two rows, no dedup
	for range 2 {
		if err := AppendSummary(path, tallied(t, "2019-01", 5000, 3000)); err != nil {
			t.Fatalf("AppendSummary() failed: %v", err)
		}
	}

	series, err := ReadSeries(path)
	if err != nil {
		t.Fatalf("ReadSeries() failed: %v", err)
	}
	if len(series.Rows) != 2 {
		t.Fatalf("series has %d rows, want 2", len(series.Rows))
	}
	if series.Rows[0].Period != "2019-01" || series.Rows[1].Period != "2019-01" {
		t.Errorf("duplicated period rows = %q, %q", series.Rows[0].Period, series.Rows[1].Period)
	}
}

func TestAppendSummary_SchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")

	if err := AppendSummary(path, tallied(t, "2019-01", 5000, 3000)); err != nil {
		t.Fatalf("AppendSummary() failed: %v", err)
	}

	// a summary with savings tracking persists under the other schema
	withSavings, err := NewPeriodSummary("2019-02",
		categorized(t, Income, TransactionRecord{Category: "Salary", Amount: usd(5000)}),
		categorized(t, Expense, TransactionRecord{Category: "Rent", Amount: usd(3000)}),
		categorized(t, Savings, TransactionRecord{Category: "Deposits", Amount: usd(1000)}),
	)
	if err != nil {
		t.Fatalf("NewPeriodSummary() failed: %v", err)
	}

	var schemaErr *SchemaError
	if err := AppendSummary(path, withSavings); !errors.As(err, &schemaErr) {
		t.Errorf("AppendSummary() error = %v, want SchemaError", err)
	}
}

func TestSeries_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")

	summaries := []*PeriodSummary{
		tallied(t, "2019-01", 5000, 3000),
		tallied(t, "2019-02", 5200, 4100),
	}
	for _, s := range summaries {
		if err := AppendSummary(path, s); err != nil {
			t.Fatalf("AppendSummary() failed: %v", err)
		}
	}

	series, err := ReadSeries(path)
	if err != nil {
		t.Fatalf("ReadSeries() failed: %v", err)
	}
	if series.Schema != BasicSchema {
		t.Errorf("Schema = %v, want BasicSchema", series.Schema)
	}
	for i, s := range summaries {
		row := series.Rows[i]
		if row.Period != s.Period {
			t.Errorf("row %d period = %q, want %q", i, row.Period, s.Period)
		}
		if !row.Income.Equal(s.TotalIncome) {
			t.Errorf("row %d income = %s, want %s", i, row.Income, s.TotalIncome)
		}
		if !row.Savings.Equal(s.NetSavings) {
			t.Errorf("row %d savings = %s, want %s", i, row.Savings, s.NetSavings)
		}
		if !row.SavingsPct.Equal(s.SavingsPct) {
			t.Errorf("row %d pct = %v, want %v", i, row.SavingsPct, s.SavingsPct)
		}
	}
}

func TestDecodeSeries_UndefinedSentinelSurvives(t *testing.T) {
	src := strings.Join([]string{
		"Time period,Income [$],Expenses [$],Savings [$],Net Worth [$],pct-savings [%]",
		"2019-01,-200.00,100.00,-300.00,-300.00,-Inf",
		"",
	}, "\n")

	series, err := DecodeSeries(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeSeries() failed: %v", err)
	}
	if !series.Rows[0].SavingsPct.IsUndefined() {
		t.Errorf("SavingsPct = %v, want the Undefined sentinel", series.Rows[0].SavingsPct)
	}
}

func TestDecodeSeries_Errors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		want any
	}{
		{
			name: "unknown header",
			src:  "Month,Cash In,Cash Out\n",
			want: new(*SchemaError),
		},
		{
			name: "empty file",
			src:  "",
			want: new(*SchemaError),
		},
		{
			name: "short row",
			src:  "Time period,Income [$],Expenses [$],Savings [$],Net Worth [$],pct-savings [%]\n2019-01,1.00\n",
			want: new(*SchemaError),
		},
		{
			name: "non-numeric amount",
			src:  "Time period,Income [$],Expenses [$],Savings [$],Net Worth [$],pct-savings [%]\n2019-01,abc,1.00,1.00,1.00,1.00\n",
			want: new(*ParseError),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSeries(strings.NewReader(tc.src))
			if err == nil {
				t.Fatal("DecodeSeries() succeeded, want error")
			}
			if !errors.As(err, tc.want) {
				t.Errorf("DecodeSeries() error = %v (%T), want %T", err, err, tc.want)
			}
		})
	}
}

func TestReadSeries_NotFound(t *testing.T) {
	_, err := ReadSeries(filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadSeries() error = %v, want fs.ErrNotExist", err)
	}
}

func TestNetWorth_Cumulative(t *testing.T) {
	series := &Series{Schema: BasicSchema, Rows: []SeriesRow{
		{Period: "2019-01", Income: usd(5000), Expenses: usd(3000)},
		{Period: "2019-02", Income: usd(5200), Expenses: usd(4100)},
		{Period: "2019-03", Income: usd(4800), Expenses: usd(5100)},
	}}

	n := series.NetWorth(usd(10000))

	want := []Money{usd(12000), usd(13100), usd(12800)}
	for i, p := range n.Points {
		if !p.NetWorth.Equal(want[i]) {
			t.Errorf("point %d net worth = %s, want %s", i, p.NetWorth, want[i])
		}
	}
	if !n.Final().Equal(usd(12800)) {
		t.Errorf("Final() = %s, want %s", n.Final(), usd(12800))
	}

	// the derivation is idempotent
	again := series.NetWorth(usd(10000))
	if !reflect.DeepEqual(n.Points, again.Points) {
		t.Error("recomputing the net worth series yields different points")
	}

	pct, diags := n.PercentChange()
	if !pct.Equal(Percent(28)) {
		t.Errorf("PercentChange() = %v, want 28.00%%", pct)
	}
	if len(diags) != 0 {
		t.Errorf("PercentChange() diags = %v, want none", diags)
	}
}

func TestPercentChange_ZeroInitial(t *testing.T) {
	series := &Series{Rows: []SeriesRow{{Period: "2019-01", Income: usd(100)}}}

	pct, diags := series.NetWorth(usd(0)).PercentChange()
	if !pct.IsUndefined() {
		t.Errorf("PercentChange() = %v, want the Undefined sentinel", pct)
	}
	if len(diags) != 1 {
		t.Errorf("diags = %v, want one advisory warning", diags)
	}
}

func TestSeries_Totals(t *testing.T) {
	series := &Series{Schema: SavingsSchema, Rows: []SeriesRow{
		{Period: "2019-01", Income: usd(5000), Expenses: usd(3000), Savings: usd(1000)},
		{Period: "2019-02", Income: usd(5000), Expenses: usd(4000), Savings: usd(500)},
	}}

	totals := series.Totals()

	if !totals.Income.Equal(usd(10000)) {
		t.Errorf("Income = %s, want %s", totals.Income, usd(10000))
	}
	if !totals.NetSavings.Equal(usd(3000)) {
		t.Errorf("NetSavings = %s, want %s", totals.NetSavings, usd(3000))
	}
	if !totals.Utilized.Equal(usd(1500)) {
		t.Errorf("Utilized = %s, want %s", totals.Utilized, usd(1500))
	}
	if !totals.Unutilized.Equal(usd(1500)) {
		t.Errorf("Unutilized = %s, want %s", totals.Unutilized, usd(1500))
	}
	if !totals.SavingsPct.Equal(Percent(30)) {
		t.Errorf("SavingsPct = %v, want 30.00%%", totals.SavingsPct)
	}
	if !totals.UtilizationPct.Equal(Percent(50)) {
		t.Errorf("UtilizationPct = %v, want 50.00%%", totals.UtilizationPct)
	}
	if len(totals.Diags) != 0 {
		t.Errorf("Diags = %v, want none", totals.Diags)
	}
}

func TestSeries_Totals_Degenerate(t *testing.T) {
	series := &Series{Schema: SavingsSchema, Rows: []SeriesRow{
		{Period: "2019-01", Income: usd(1000), Expenses: usd(2000), Savings: usd(100)},
	}}

	totals := series.Totals()

	if !totals.UtilizationPct.IsUndefined() {
		t.Errorf("UtilizationPct = %v, want the Undefined sentinel", totals.UtilizationPct)
	}
	if len(totals.Diags) != 1 {
		t.Errorf("Diags = %v, want one advisory warning", totals.Diags)
	}
}
