package budget

// TransactionRecord is a single entry of a transactions export: a category
// name and a signed amount. Its class is carried by the enclosing
// RecordSet.
type TransactionRecord struct {
	Category string
	Amount   Money
}

// RecordSet is an ordered collection of transaction records of one class.
//
// A RecordSet remembers the column binding it was built from (the export
// column names mapped to the Category and Amount fields at decode time).
// The zero value has no binding and cannot be categorized.
type RecordSet struct {
	class       Class
	categoryCol string
	amountCol   string
	records     []TransactionRecord
}

// NewRecordSet creates an empty record set of the given class, bound to the
// named source columns.
func NewRecordSet(class Class, categoryCol, amountCol string) *RecordSet {
	return &RecordSet{class: class, categoryCol: categoryCol, amountCol: amountCol}
}

func (rs *RecordSet) Class() Class { return rs.class }
func (rs *RecordSet) Len() int     { return len(rs.records) }

// Columns returns the source column names bound to the Category and Amount
// fields, or ("", "") for an unbound set.
func (rs *RecordSet) Columns() (category, amount string) {
	return rs.categoryCol, rs.amountCol
}

// Append adds a record to the set.
func (rs *RecordSet) Append(r TransactionRecord) {
	rs.records = append(rs.records, r)
}

// Records returns the records in insertion order.
func (rs *RecordSet) Records() []TransactionRecord { return rs.records }

// Total returns the sign-preserving sum of all amounts in the set.
func (rs *RecordSet) Total() Money {
	var total Money
	for _, r := range rs.records {
		total = total.Add(r.Amount)
	}
	return total
}

// Merge appends all records of o, keeping o's relative order. Both sets
// must be of the same class; merging record sets of different classes is a
// programming error and panics.
func (rs *RecordSet) Merge(o *RecordSet) {
	if o == nil {
		return
	}
	if rs.class != o.class {
		panic("cannot merge record sets of classes " + rs.class.String() + " and " + o.class.String())
	}
	rs.records = append(rs.records, o.records...)
}
