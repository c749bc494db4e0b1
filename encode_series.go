package budget

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
)

// this file handles the summary series file format: tabular text with a
// fixed header, created on the first append and append-only thereafter.

// schemaOf returns the series schema a period summary persists under.
func schemaOf(s *PeriodSummary) SeriesSchema {
	if s.HasSavings {
		return SavingsSchema
	}
	return BasicSchema
}

// seriesRowOf formats a period summary as a series row of the schema.
func seriesRowOf(s *PeriodSummary, schema SeriesSchema) []string {
	if schema == SavingsSchema {
		return []string{s.Period, s.TotalIncome.Fixed(), s.TotalExpenses.Fixed(),
			s.UtilizedSavings.Fixed(), s.UnutilizedSavings.Fixed(),
			s.SavingsPct.Fixed(), s.UtilizationPct.Fixed()}
	}
	return []string{s.Period, s.TotalIncome.Fixed(), s.TotalExpenses.Fixed(),
		s.NetSavings.Fixed(), s.NetWorth.Fixed(), s.SavingsPct.Fixed()}
}

// AppendSummary appends one period summary to the series file at path.
//
// An absent file is created with the schema's fixed header before the first
// data row is written; a present file is verified against that header and a
// mismatch (for instance a file written with savings tracking enabled being
// appended to without it) fails with a SchemaError. Appending the same
// period twice produces two rows.
func AppendSummary(path string, s *PeriodSummary) error {
	schema := schemaOf(s)

	_, statErr := os.Stat(path)
	creating := errors.Is(statErr, fs.ErrNotExist)
	if statErr != nil && !creating {
		return fmt.Errorf("cannot stat summary file %q: %w", path, statErr)
	}
	if !creating {
		if err := verifySeriesHeader(path, schema); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open summary file %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if creating {
		if err := w.Write(schema.Header()); err != nil {
			return fmt.Errorf("cannot write summary header: %w", err)
		}
	}
	if err := w.Write(seriesRowOf(s, schema)); err != nil {
		return fmt.Errorf("cannot write summary row: %w", err)
	}
	w.Flush()
	return w.Error()
}

func verifySeriesHeader(path string, schema SeriesSchema) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open summary file %q: %w", path, err)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	header, err := rd.Read()
	if err != nil {
		return fmt.Errorf("cannot read summary header of %q: %w", path, err)
	}
	if !equalHeader(header, schema.Header()) {
		return &SchemaError{Want: schema.Header(), Got: header}
	}
	return nil
}

// ReadSeries reads the summary series file at path. A missing file is
// reported by wrapping the underlying fs.ErrNotExist.
func ReadSeries(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open summary file %q: %w", path, err)
	}
	defer f.Close()
	return DecodeSeries(f)
}

// DecodeSeries decodes a summary series from r. The header must match one
// of the known schemas exactly; mixing rows from different schemas fails
// with a SchemaError.
func DecodeSeries(r io.Reader) (*Series, error) {
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1
	records, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read summary file: %w", err)
	}
	if len(records) == 0 {
		return nil, &SchemaError{Want: BasicSchema.Header()}
	}

	schema, ok := matchSchema(records[0])
	if !ok {
		return nil, &SchemaError{Want: SavingsSchema.Header(), Got: records[0]}
	}
	header := schema.Header()

	s := &Series{Schema: schema}
	for i, record := range records[1:] {
		if len(record) != len(header) {
			return nil, &SchemaError{Want: header, Got: record}
		}
		rowNum := i + 2 // 1-based, after the header
		row := SeriesRow{Period: record[0]}
		if row.Income, err = parseSeriesMoney(record[1], header[1], rowNum); err != nil {
			return nil, err
		}
		if row.Expenses, err = parseSeriesMoney(record[2], header[2], rowNum); err != nil {
			return nil, err
		}
		if row.Savings, err = parseSeriesMoney(record[3], header[3], rowNum); err != nil {
			return nil, err
		}
		if schema == SavingsSchema {
			if row.Unutilized, err = parseSeriesMoney(record[4], header[4], rowNum); err != nil {
				return nil, err
			}
			if row.SavingsPct, err = parseSeriesPercent(record[5], header[5], rowNum); err != nil {
				return nil, err
			}
			if row.UtilizationPct, err = parseSeriesPercent(record[6], header[6], rowNum); err != nil {
				return nil, err
			}
		} else {
			if row.NetWorth, err = parseSeriesMoney(record[4], header[4], rowNum); err != nil {
				return nil, err
			}
			if row.SavingsPct, err = parseSeriesPercent(record[5], header[5], rowNum); err != nil {
				return nil, err
			}
		}
		s.Rows = append(s.Rows, row)
	}
	return s, nil
}

func parseSeriesMoney(cell, column string, row int) (Money, error) {
	m, err := ParseMoney(cell, nil, "USD")
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Column = column
			perr.Row = row
		}
		return Money{}, err
	}
	return m, nil
}

func parseSeriesPercent(cell, column string, row int) (Percent, error) {
	// percentages may hold the -Inf sentinel, which decimals cannot carry
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, &ParseError{Column: column, Row: row, Value: cell, Err: err}
	}
	return Percent(v), nil
}
