package budget

import "fmt"

// Diagnostics collects advisory messages produced alongside a result.
// Computations never write to a process-wide warning stream; they return
// their warnings as values and the caller decides to log, surface or
// ignore them.
type Diagnostics []string

// Warnf records an advisory message.
func (d *Diagnostics) Warnf(format string, args ...any) {
	*d = append(*d, fmt.Sprintf(format, args...))
}

// Merge appends all messages from o.
func (d *Diagnostics) Merge(o Diagnostics) {
	*d = append(*d, o...)
}
