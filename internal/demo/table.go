package demo

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const (
	timeColumn  = "Time"
	valueColumn = "Value"
)

var errColumnLength = errors.New("demo: column length does not match time axis")

// Table holds one row per sample: the timestamp, the raw input and one
// smoothed output per filter.
type Table struct {
	Time   []float64
	Value  []float64
	names  []string
	series [][]float64
}

// NewTable creates a table over the given time axis and raw input with empty
// columns for each named filter.
func NewTable(time, value []float64, names ...string) (*Table, error) {
	if len(time) != len(value) {
		return nil, fmt.Errorf("%w: value has %d rows, time has %d", errColumnLength, len(value), len(time))
	}

	t := &Table{
		Time:   time,
		Value:  value,
		names:  append([]string(nil), names...),
		series: make([][]float64, len(names)),
	}
	for i := range t.series {
		t.series[i] = make([]float64, len(time))
	}

	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Time) }

// Names returns the filter column names in order.
func (t *Table) Names() []string { return append([]string(nil), t.names...) }

// Columns returns the header: Time, Value, then each filter column.
func (t *Table) Columns() []string {
	return append([]string{timeColumn, valueColumn}, t.names...)
}

// Series returns the column with the given name, including Time and Value.
func (t *Table) Series(name string) ([]float64, bool) {
	switch name {
	case timeColumn:
		return t.Time, true
	case valueColumn:
		return t.Value, true
	}

	for i, n := range t.names {
		if n == name {
			return t.series[i], true
		}
	}

	return nil, false
}

// Row returns row i in Columns order.
func (t *Table) Row(i int) []float64 {
	row := make([]float64, 0, 2+len(t.series))
	row = append(row, t.Time[i], t.Value[i])
	for _, s := range t.series {
		row = append(row, s[i])
	}

	return row
}

// WriteCSV writes a header row followed by one record per sample.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns()); err != nil {
		return fmt.Errorf("demo: write csv header: %w", err)
	}

	record := make([]string, 2+len(t.series))
	for i := 0; i < t.Len(); i++ {
		for j, v := range t.Row(i) {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("demo: write csv row %d: %w", i, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// ReadCSV parses a table written by WriteCSV.
func ReadCSV(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("demo: read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, errors.New("demo: csv has no header")
	}

	header := records[0]
	if len(header) < 2 || header[0] != timeColumn || header[1] != valueColumn {
		return nil, fmt.Errorf("demo: csv header must start with %s,%s: %v", timeColumn, valueColumn, header)
	}

	rows := records[1:]
	cols := make([][]float64, len(header))
	for j := range cols {
		cols[j] = make([]float64, len(rows))
	}

	for i, rec := range rows {
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("demo: csv row %d column %s: %w", i+1, header[j], err)
			}
			cols[j][i] = v
		}
	}

	t, err := NewTable(cols[0], cols[1], header[2:]...)
	if err != nil {
		return nil, err
	}
	copy(t.series, cols[2:])

	return t, nil
}
