package budget

// PeriodSummary is one period's financial summary, computed from the
// categorized classes of that period's transactions.
type PeriodSummary struct {
	Period string

	TotalIncome   Money
	TotalExpenses Money
	// NetSavings is the excess of income over expenses.
	NetSavings Money

	// SavingsPct is net savings as a percentage of income.
	// Undefined when income is non-positive.
	SavingsPct Percent

	// UtilizedSavings is the portion of net savings recorded as moved to a
	// savings category; meaningful only when HasSavings.
	UtilizedSavings   Money
	UnutilizedSavings Money
	// UtilizationPct is utilized savings as a percentage of net savings.
	// Undefined when net savings is non-positive.
	UtilizationPct Percent
	HasSavings     bool

	// NetWorth is the starting balance carried into this period plus net
	// savings; meaningful only when HasBalance.
	StartingBalance Money
	NetWorth        Money
	HasBalance      bool

	Income   *CategorySummary
	Expenses *CategorySummary
	Savings  *CategorySummary // nil without a savings block

	// Diags carries the advisory warnings emitted while computing the
	// degenerate percentage cases.
	Diags Diagnostics
}

// NewPeriodSummary aggregates categorized income and expenses (and an
// optional savings class, which may be nil) into one period's summary.
//
// The two percentage metrics degrade to the Undefined sentinel, with an
// advisory diagnostic, when their denominator is non-positive: the values
// stay computable but are not financially meaningful.
func NewPeriodSummary(period string, income, expenses, savings *CategorySummary) (*PeriodSummary, error) {
	if income == nil {
		return nil, &SchemaError{Want: []string{"income"}}
	}
	if expenses == nil {
		return nil, &SchemaError{Want: []string{"expenses"}}
	}

	s := &PeriodSummary{
		Period:        period,
		TotalIncome:   income.Total(),
		TotalExpenses: expenses.Total(),
		Income:        income,
		Expenses:      expenses,
	}
	s.NetSavings = s.TotalIncome.Sub(s.TotalExpenses)

	if s.TotalIncome.IsPositive() {
		s.SavingsPct = s.NetSavings.PercentOf(s.TotalIncome)
	} else {
		s.Diags.Warnf("total income for %s is not positive (%s): savings percentage is undefined", period, s.TotalIncome)
		s.SavingsPct = Undefined
	}

	if savings != nil {
		s.HasSavings = true
		s.Savings = savings
		s.UtilizedSavings = savings.Total()
		s.UnutilizedSavings = s.NetSavings.Sub(s.UtilizedSavings)
		if s.NetSavings.IsPositive() {
			s.UtilizationPct = s.UtilizedSavings.PercentOf(s.NetSavings)
		} else {
			s.Diags.Warnf("net savings for %s is not positive (%s): utilization ratio is undefined", period, s.NetSavings)
			s.UtilizationPct = Undefined
		}
	}
	return s, nil
}

// WithStartingBalance records the balance carried into the period and
// derives the period's closing net worth from it.
func (s *PeriodSummary) WithStartingBalance(balance Money) *PeriodSummary {
	s.StartingBalance = balance
	s.NetWorth = balance.Add(s.NetSavings)
	s.HasBalance = true
	return s
}
