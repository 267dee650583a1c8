package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/japaniel/dailyword/pkg/tabular"
)

// ErrMalformedDefinitions is returned when a definitions cell is not a list of strings.
var ErrMalformedDefinitions = errors.New("malformed definitions")

// Record is one headword of the definitions dataset.
type Record struct {
	Headword string
	// Definitions is the raw cell, a textual list of strings such as
	// "['sens 1', 'sens 2']". It is parsed by ParseList when aggregated.
	Definitions string
}

// Load reads the comma-delimited definitions dataset.
func Load(r io.Reader) ([]Record, error) {
	tbl, err := tabular.Open(r, ',')
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	wordCol, err := tbl.Column("Mot")
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	defsCol, err := tbl.Column("Définitions", "définitions")
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}

	var records []Record
	for {
		row, err := tbl.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dictionary: %w", err)
		}
		records = append(records, Record{
			Headword:    row.String(wordCol),
			Definitions: row.String(defsCol),
		})
	}
	return records, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Parse returns the definitions of r as a list.
func (r Record) Parse() ([]string, error) {
	defs, err := ParseList(r.Definitions)
	if err != nil {
		return nil, fmt.Errorf("headword %q: %w", r.Headword, err)
	}
	return defs, nil
}
