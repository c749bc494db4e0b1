package budget

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

// this file decodes a transactions export into typed record sets.
//
// An export is a table holding two or three side-by-side column blocks, one
// per transaction class, each repeating the same canonical column names.
// The blocks are located by an explicit scan of the header row and bound to
// column-index ranges; suffix conventions used by spreadsheet tools for
// duplicated names never enter the data path.

// ExportOptions configures the decoding of a transactions export.
// The zero value uses the canonical "Category" and "Amount" column names,
// dollar currency symbols, and the expenses-before-income block order.
type ExportOptions struct {
	HeaderSkip int // lines to skip before the header row
	FooterSkip int // lines to discard at the bottom of the table

	CategoryColumn string // canonical category column name, default "Category"
	AmountColumn   string // canonical amount column name, default "Amount"

	CurrencySymbols string // pattern stripped from amount cells, default `[$,]`
	Currency        string // ISO code of parsed amounts, default "USD"

	// IncomeFirst declares that the income block precedes the expense block
	// in a two-block export. Ignored when a third (savings) block is
	// present: three-block exports are always expenses, income, savings.
	IncomeFirst bool
}

func (o ExportOptions) withDefaults() ExportOptions {
	if o.CategoryColumn == "" {
		o.CategoryColumn = "Category"
	}
	if o.AmountColumn == "" {
		o.AmountColumn = "Amount"
	}
	if o.CurrencySymbols == "" {
		o.CurrencySymbols = `[$,]`
	}
	if o.Currency == "" {
		o.Currency = "USD"
	}
	return o
}

// Export holds the typed record sets decoded from one transactions export.
type Export struct {
	Expenses *RecordSet
	Income   *RecordSet
	Savings  *RecordSet // nil when the export has only two blocks
}

// blockCount returns the number of column blocks the export was decoded
// from.
func (e *Export) blockCount() int {
	if e.Savings != nil {
		return 3
	}
	return 2
}

// Merge appends all records of o into e, class by class. Both exports must
// have been decoded from the same block layout: merging a two-block export
// with a three-block one fails with a StructureError.
func (e *Export) Merge(o *Export) error {
	if e.blockCount() != o.blockCount() {
		return &StructureError{
			Reason: fmt.Sprintf("cannot merge a %d-block export into a %d-block one", o.blockCount(), e.blockCount()),
		}
	}
	e.Expenses.Merge(o.Expenses)
	e.Income.Merge(o.Income)
	if e.Savings != nil {
		e.Savings.Merge(o.Savings)
	}
	return nil
}

// ReadExportFile decodes the transactions export at path, dispatching on
// the file extension (.xlsx spreadsheets, tabular text otherwise).
// A missing file is reported by wrapping the underlying fs.ErrNotExist.
func ReadExportFile(path string, opts ExportOptions) (*Export, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cannot open transactions export %q: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return DecodeExportXLSX(path, opts)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open transactions export %q: %w", path, err)
		}
		defer f.Close()
		return DecodeExport(f, opts)
	}
}

// DecodeExport decodes a transactions export in tabular text format from r.
func DecodeExport(r io.Reader, opts ExportOptions) (*Export, error) {
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1 // blocks may leave trailing cells empty
	rows, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read transactions export: %w", err)
	}
	return decodeRows(rows, opts)
}

// DecodeExportXLSX decodes a transactions export from the first sheet of a
// spreadsheet file.
func DecodeExportXLSX(path string, opts ExportOptions) (*Export, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open transactions export %q: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("cannot read transactions export %q: %w", path, err)
	}
	return decodeRows(rows, opts)
}

// block binds one column group of the export to the canonical columns.
type block struct {
	category int
	amount   int
}

// bindBlocks locates the repeated canonical columns in the header row and
// pairs them into blocks, in order of appearance.
func bindBlocks(header []string, opts ExportOptions) ([]block, error) {
	var cats, amts []int
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case opts.CategoryColumn:
			cats = append(cats, i)
		case opts.AmountColumn:
			amts = append(amts, i)
		}
	}
	if len(cats) != len(amts) {
		return nil, &StructureError{
			Header: header,
			Reason: fmt.Sprintf("found %d %q but %d %q columns", len(cats), opts.CategoryColumn, len(amts), opts.AmountColumn),
		}
	}
	if len(cats) < 2 || len(cats) > 3 {
		return nil, &StructureError{
			Header: header,
			Reason: fmt.Sprintf("found %d %q column block(s), want 2 or 3", len(cats), opts.CategoryColumn),
		}
	}
	blocks := make([]block, len(cats))
	for i := range cats {
		blocks[i] = block{category: cats[i], amount: amts[i]}
	}
	return blocks, nil
}

// blockClasses assigns a transaction class to each block position.
func blockClasses(n int, incomeFirst bool) []Class {
	if n == 3 {
		return []Class{Expense, Income, Savings}
	}
	if incomeFirst {
		return []Class{Income, Expense}
	}
	return []Class{Expense, Income}
}

func decodeRows(rows [][]string, opts ExportOptions) (*Export, error) {
	opts = opts.withDefaults()

	if len(rows) <= opts.HeaderSkip {
		return nil, &StructureError{Reason: fmt.Sprintf("table has %d row(s), header expected at row %d", len(rows), opts.HeaderSkip+1)}
	}
	header := rows[opts.HeaderSkip]
	data := rows[opts.HeaderSkip+1:]
	if opts.FooterSkip >= len(data) {
		data = nil
	} else if opts.FooterSkip > 0 {
		data = data[:len(data)-opts.FooterSkip]
	}

	blocks, err := bindBlocks(header, opts)
	if err != nil {
		return nil, err
	}
	symbols, err := regexp.Compile(opts.CurrencySymbols)
	if err != nil {
		return nil, fmt.Errorf("invalid currency symbol pattern %q: %w", opts.CurrencySymbols, err)
	}

	classes := blockClasses(len(blocks), opts.IncomeFirst)
	sets := make([]*RecordSet, len(blocks))
	for i, class := range classes {
		sets[i] = NewRecordSet(class, opts.CategoryColumn, opts.AmountColumn)
	}

	for ri, row := range data {
		for bi, b := range blocks {
			category := strings.TrimSpace(cell(row, b.category))
			amount := strings.TrimSpace(cell(row, b.amount))
			// rows with a missing category or amount are extraneous and dropped
			if category == "" || amount == "" {
				continue
			}
			m, err := ParseMoney(amount, symbols, opts.Currency)
			if err != nil {
				var perr *ParseError
				if errors.As(err, &perr) {
					perr.Column = opts.AmountColumn
					perr.Row = opts.HeaderSkip + ri + 2 // 1-based row in the source table
				}
				return nil, err
			}
			sets[bi].Append(TransactionRecord{Category: category, Amount: m})
		}
	}

	export := &Export{}
	for i, class := range classes {
		switch class {
		case Expense:
			export.Expenses = sets[i]
		case Income:
			export.Income = sets[i]
		case Savings:
			export.Savings = sets[i]
		}
	}
	return export, nil
}

// cell returns the i-th cell of a possibly ragged row.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
