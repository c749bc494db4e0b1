package budget

// Class is the logical class of a transaction record. It is determined by
// the position of the record's column block within the source export, not
// by the record's content.
type Class int

const (
	Expense Class = iota
	Income
	Savings
)

func (c Class) String() string {
	switch c {
	case Expense:
		return "expenses"
	case Income:
		return "income"
	case Savings:
		return "savings"
	default:
		return "unknown"
	}
}

// Title returns the class name as used in report headings.
func (c Class) Title() string {
	switch c {
	case Expense:
		return "Expenses"
	case Income:
		return "Income"
	case Savings:
		return "Savings"
	default:
		return "Unknown"
	}
}
