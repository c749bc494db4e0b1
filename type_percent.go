package budget

import (
	"fmt"
	"math"
)

type Percent float64

// Undefined is the sentinel value reported when a percentage's denominator
// is non-positive and the ratio is not financially meaningful.
var Undefined = Percent(math.Inf(-1))

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	if p.IsUndefined() || q.IsUndefined() {
		return p.IsUndefined() == q.IsUndefined()
	}
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// IsUndefined reports whether p is the Undefined sentinel.
func (p Percent) IsUndefined() bool { return math.IsInf(float64(p), -1) }

// IsNaN reports whether p is not-a-number, the contribution of a category
// within a class whose total is zero.
func (p Percent) IsNaN() bool { return math.IsNaN(float64(p)) }

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Fixed returns the plain numeric representation rounded to two decimal
// places, the form persisted in the summary series file.
func (p Percent) Fixed() string { return fmt.Sprintf("%.2f", float64(p)) }
