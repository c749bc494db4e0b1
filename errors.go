package budget

import (
	"fmt"
	"strings"
)

// The decoding and aggregation pipeline fails immediately on the first
// detected violation; no partial aggregation is attempted. Missing input
// files are reported by wrapping the underlying fs.ErrNotExist, so callers
// test for them with errors.Is.

// StructureError reports an export whose header does not contain the
// expected repeated column blocks.
type StructureError struct {
	Header []string // the header row that was actually seen
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("malformed export header: %s", e.Reason)
}

// ParseError reports a cell that could not be converted to a number after
// currency symbols were stripped.
type ParseError struct {
	Column string
	Row    int // 1-based row number in the source table, 0 when unknown
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("cannot parse %q column value %q at row %d: %v", e.Column, e.Value, e.Row, e.Err)
	}
	return fmt.Sprintf("cannot parse value %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports a record set or summary table that does not carry the
// expected columns.
type SchemaError struct {
	Want []string
	Got  []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema mismatch: want columns [%s], got [%s]",
		strings.Join(e.Want, ", "), strings.Join(e.Got, ", "))
}

// ValueError reports a scalar argument (such as a starting balance) that is
// not a valid number.
type ValueError struct {
	Field string
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }
