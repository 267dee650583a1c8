// Package tabular reads delimited text tables with a header row and resolves
// columns by name. Both source datasets go through it.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Schema errors. Both are fatal for a run.
var (
	ErrMissingColumn = errors.New("missing column")
	ErrSchema        = errors.New("schema error")
)

// Table is a header-indexed view over a delimited stream.
type Table struct {
	r      *csv.Reader
	header map[string]int
	line   int
}

// Open reads the header row from r using comma as the field delimiter.
func Open(r io.Reader, comma rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.LazyQuotes = true

	head, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty table", ErrSchema)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(head))
	for i, name := range head {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return &Table{r: reader, header: idx, line: 1}, nil
}

// Column returns the index of the first column named by any of names.
func (t *Table) Column(names ...string) (int, error) {
	for _, n := range names {
		if i, ok := t.header[n]; ok {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(names, " / "))
}

// Next returns the next data row, or io.EOF when the table is exhausted.
func (t *Table) Next() (Row, error) {
	rec, err := t.r.Read()
	if err != nil {
		if err == io.EOF {
			return Row{}, io.EOF
		}
		return Row{}, fmt.Errorf("%w: line %d: %v", ErrSchema, t.line+1, err)
	}
	t.line++
	return Row{fields: rec, Line: t.line}, nil
}

// Row is a single data row. Line is 1-based and counts the header.
type Row struct {
	fields []string
	Line   int
}

// String returns the cell at column i, or "" when the row is short.
func (r Row) String(i int) string {
	if i < 0 || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// Float parses the cell at column i. Empty and non-numeric cells are schema errors.
func (r Row) Float(i int, column string) (float64, error) {
	s := strings.TrimSpace(r.String(i))
	if s == "" {
		return 0, fmt.Errorf("%w: line %d: empty %s", ErrSchema, r.Line, column)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s=%q is not a number", ErrSchema, r.Line, column, s)
	}
	return v, nil
}
