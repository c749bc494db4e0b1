package budget

// The summary series is the running, append-only record of every tallied
// period. It lives in a flat tabular file with a fixed header written once,
// on the first append; every later run appends exactly one row. Re-running
// a period appends a duplicate row: the series never dedups.

// SeriesSchema identifies the column schema of a summary series file.
type SeriesSchema int

const (
	// BasicSchema tracks income, expenses, net savings and net worth.
	BasicSchema SeriesSchema = iota
	// SavingsSchema additionally tracks utilized and unutilized savings
	// and the savings utilization ratio, instead of net worth.
	SavingsSchema
)

// Header returns the fixed header row of the schema.
func (s SeriesSchema) Header() []string {
	if s == SavingsSchema {
		return []string{"Time period", "Income [$]", "Expenses [$]",
			"Utilized savings [$]", "Unutilized savings [$]",
			"pct-savings [%]", "Savings utilization ratio [%]"}
	}
	return []string{"Time period", "Income [$]", "Expenses [$]",
		"Savings [$]", "Net Worth [$]", "pct-savings [%]"}
}

// matchSchema identifies the schema a header row belongs to.
func matchSchema(header []string) (SeriesSchema, bool) {
	for _, s := range []SeriesSchema{BasicSchema, SavingsSchema} {
		if equalHeader(header, s.Header()) {
			return s, true
		}
	}
	return BasicSchema, false
}

func equalHeader(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SeriesRow is one period's scalar summary as persisted in the series.
type SeriesRow struct {
	Period   string
	Income   Money
	Expenses Money
	// Savings holds net savings under BasicSchema, utilized savings under
	// SavingsSchema.
	Savings        Money
	Unutilized     Money // SavingsSchema only
	NetWorth       Money // BasicSchema only
	SavingsPct     Percent
	UtilizationPct Percent // SavingsSchema only
}

// Series is the parsed content of a summary series file.
type Series struct {
	Schema SeriesSchema
	Rows   []SeriesRow
}

// NetWorthPoint is one period's derived cumulative net worth.
type NetWorthPoint struct {
	Period   string
	NetWorth Money
}

// NetWorthSeries is the series history with the derived cumulative net
// worth column.
type NetWorthSeries struct {
	Initial Money
	Points  []NetWorthPoint
	Rows    []SeriesRow // the source rows, in insertion order
}

// NetWorth derives the cumulative net worth trend from the series:
// each period's net worth is the initial net worth plus the running
// cumulative income minus the running cumulative expenses. The derivation
// is a pure function of the series and can be recomputed any number of
// times with the same result.
func (s *Series) NetWorth(initial Money) *NetWorthSeries {
	n := &NetWorthSeries{Initial: initial, Rows: s.Rows}
	running := initial
	for _, row := range s.Rows {
		running = running.Add(row.Income).Sub(row.Expenses)
		n.Points = append(n.Points, NetWorthPoint{Period: row.Period, NetWorth: running})
	}
	return n
}

// Final returns the last derived net worth, or the initial value for an
// empty series.
func (n *NetWorthSeries) Final() Money {
	if len(n.Points) == 0 {
		return n.Initial
	}
	return n.Points[len(n.Points)-1].NetWorth
}

// PercentChange returns the period-over-period percentage change of the
// final net worth relative to the initial value. Undefined, with an
// advisory diagnostic, when the initial value is zero.
func (n *NetWorthSeries) PercentChange() (Percent, Diagnostics) {
	var diags Diagnostics
	if n.Initial.IsZero() {
		diags.Warnf("initial net worth is zero: percentage change is undefined")
		return Undefined, diags
	}
	return n.Final().Sub(n.Initial).PercentOf(n.Initial), diags
}

// SeriesTotals is the year-to-date aggregate over all rows of a series.
type SeriesTotals struct {
	Income     Money
	Expenses   Money
	NetSavings Money

	SavingsPct Percent // Undefined when total income is non-positive

	Utilized       Money
	Unutilized     Money
	UtilizationPct Percent // Undefined when net savings is non-positive
	HasSavings     bool

	Diags Diagnostics
}

// Totals aggregates all rows of the series, applying the same degenerate
// percentage rules as the period aggregator.
func (s *Series) Totals() *SeriesTotals {
	t := &SeriesTotals{HasSavings: s.Schema == SavingsSchema}
	for _, row := range s.Rows {
		t.Income = t.Income.Add(row.Income)
		t.Expenses = t.Expenses.Add(row.Expenses)
		if t.HasSavings {
			t.Utilized = t.Utilized.Add(row.Savings)
		}
	}
	t.NetSavings = t.Income.Sub(t.Expenses)

	if t.Income.IsPositive() {
		t.SavingsPct = t.NetSavings.PercentOf(t.Income)
	} else {
		t.Diags.Warnf("total income over all periods is not positive (%s): savings percentage is undefined", t.Income)
		t.SavingsPct = Undefined
	}
	if t.HasSavings {
		t.Unutilized = t.NetSavings.Sub(t.Utilized)
		if t.NetSavings.IsPositive() {
			t.UtilizationPct = t.Utilized.PercentOf(t.NetSavings)
		} else {
			t.Diags.Warnf("net savings over all periods is not positive (%s): utilization ratio is undefined", t.NetSavings)
			t.UtilizationPct = Undefined
		}
	}
	return t
}
