package budget

import (
	"math"
	"slices"
	"strings"
)

// CategoryTotal is the aggregate of one category within a class.
type CategoryTotal struct {
	Category string
	Amount   Money
	// Contribution is the category's percentage share of the absolute
	// value of the class total. NaN when the class total is zero.
	Contribution Percent
}

// CategorySummary maps each category of a record set to its total amount
// and contribution. Categories retain first-seen order; use Sorted for the
// name-ordered view reports print.
type CategorySummary struct {
	class  Class
	totals []CategoryTotal
	index  map[string]int
	total  Money // sign-preserving class total
}

// Categorize groups a record set by category, sums amounts per category and
// computes each category's percentage share of the absolute class total.
//
// A record set without a column binding (the zero value, or one whose
// source table had no category column) cannot be grouped; this is a schema
// violation reported to the caller, never a silent empty result.
func Categorize(rs *RecordSet) (*CategorySummary, error) {
	if rs == nil {
		return nil, &SchemaError{Want: []string{"Category", "Amount"}}
	}
	if cat, amt := rs.Columns(); cat == "" || amt == "" {
		return nil, &SchemaError{Want: []string{"Category", "Amount"}, Got: nonEmpty(cat, amt)}
	}

	s := &CategorySummary{class: rs.Class(), index: make(map[string]int)}
	for _, r := range rs.Records() {
		i, ok := s.index[r.Category]
		if !ok {
			i = len(s.totals)
			s.index[r.Category] = i
			s.totals = append(s.totals, CategoryTotal{Category: r.Category})
		}
		s.totals[i].Amount = s.totals[i].Amount.Add(r.Amount)
		s.total = s.total.Add(r.Amount)
	}

	abs := s.total.Abs()
	for i := range s.totals {
		if abs.IsZero() {
			s.totals[i].Contribution = Percent(math.NaN())
			continue
		}
		s.totals[i].Contribution = s.totals[i].Amount.PercentOf(abs)
	}
	return s, nil
}

func nonEmpty(ss ...string) []string {
	var out []string
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (s *CategorySummary) Class() Class { return s.class }
func (s *CategorySummary) Len() int     { return len(s.totals) }

// Total returns the sign-preserving total amount of the class.
func (s *CategorySummary) Total() Money { return s.total }

// Get returns the aggregate for a category name.
func (s *CategorySummary) Get(category string) (CategoryTotal, bool) {
	i, ok := s.index[category]
	if !ok {
		return CategoryTotal{}, false
	}
	return s.totals[i], true
}

// Categories returns the aggregates in first-seen order.
func (s *CategorySummary) Categories() []CategoryTotal { return s.totals }

// Sorted returns the aggregates sorted by category name.
func (s *CategorySummary) Sorted() []CategoryTotal {
	sorted := slices.Clone(s.totals)
	slices.SortFunc(sorted, func(a, b CategoryTotal) int {
		return strings.Compare(a.Category, b.Category)
	})
	return sorted
}
