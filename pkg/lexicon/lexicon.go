// Package lexicon loads the Lexique frequency table and turns it into
// scored, singular common-noun entries.
package lexicon

import (
	"fmt"
	"io"
	"os"

	"github.com/japaniel/dailyword/pkg/tabular"
)

// Lexique column names.
const (
	colWord          = "ortho"
	colPhonetic      = "phon"
	colLemma         = "lemme"
	colCategory      = "cgram"
	colGender        = "genre"
	colNumber        = "nombre"
	colFreqLemFilms  = "freqlemfilms2"
	colFreqFilms     = "freqfilms2"
	colFreqLemLivres = "freqlemlivres"
	colFreqLivres    = "freqlivres"
)

// Grammatical values used by the filter.
const (
	CategoryNoun = "NOM"
	NumberPlural = "p"
	Masculine    = "m"
	Feminine     = "f"
)

// Record is one Lexique row: a (word, category, inflection) observation.
type Record struct {
	Word     string
	Phonetic string
	Lemma    string
	Category string
	Gender   string // "m", "f" or "" when unspecified
	Number   string // "s", "p" or ""

	// Frequencies per million words.
	FreqLemmaFilms float64
	FreqFilms      float64
	FreqLemmaBooks float64
	FreqBooks      float64
}

// Load parses a tab-delimited Lexique table.
func Load(r io.Reader) ([]Record, error) {
	tbl, err := tabular.Open(r, '\t')
	if err != nil {
		return nil, fmt.Errorf("open lexique: %w", err)
	}

	cols := map[string]int{}
	for _, name := range []string{
		colWord, colPhonetic, colLemma, colCategory, colGender, colNumber,
		colFreqLemFilms, colFreqFilms, colFreqLemLivres, colFreqLivres,
	} {
		i, err := tbl.Column(name)
		if err != nil {
			return nil, fmt.Errorf("lexique: %w", err)
		}
		cols[name] = i
	}

	var records []Record
	for {
		row, err := tbl.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("lexique: %w", err)
		}

		rec := Record{
			Word:     row.String(cols[colWord]),
			Phonetic: row.String(cols[colPhonetic]),
			Lemma:    row.String(cols[colLemma]),
			Category: row.String(cols[colCategory]),
			Gender:   row.String(cols[colGender]),
			Number:   row.String(cols[colNumber]),
		}
		for _, f := range []struct {
			col string
			dst *float64
		}{
			{colFreqLemFilms, &rec.FreqLemmaFilms},
			{colFreqFilms, &rec.FreqFilms},
			{colFreqLemLivres, &rec.FreqLemmaBooks},
			{colFreqLivres, &rec.FreqBooks},
		} {
			v, err := row.Float(cols[f.col], f.col)
			if err != nil {
				return nil, fmt.Errorf("lexique: %w", err)
			}
			*f.dst = v
		}
		records = append(records, rec)
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
