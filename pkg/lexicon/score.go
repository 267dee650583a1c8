package lexicon

import (
	"math"
	"sort"
	"unicode/utf8"
)

// Weights is the weighting scheme of the composite frequency score.
type Weights struct {
	LemmaFilms float64
	Films      float64
	LemmaBooks float64
	Books      float64
}

// DefaultWeights favours the book corpus 3:1 over the film subtitles corpus.
func DefaultWeights() Weights {
	return Weights{LemmaFilms: 1, Films: 1, LemmaBooks: 3, Books: 3}
}

// Sum is the divisor of the weighted average.
func (w Weights) Sum() float64 {
	return w.LemmaFilms + w.Films + w.LemmaBooks + w.Books
}

// Options controls Score.
type Options struct {
	Weights       Weights
	MinWordLength int
}

// Key identifies a word form. Empty fields stand for missing values.
type Key struct {
	Word     string
	Gender   string
	Lemma    string
	Phonetic string
}

// Less orders keys field by field, placing empty values last.
func (k Key) Less(o Key) bool {
	for _, p := range [][2]string{
		{k.Word, o.Word},
		{k.Gender, o.Gender},
		{k.Lemma, o.Lemma},
		{k.Phonetic, o.Phonetic},
	} {
		a, b := p[0], p[1]
		if a == b {
			continue
		}
		if a == "" {
			return false
		}
		if b == "" {
			return true
		}
		return a < b
	}
	return false
}

// Entry is a scored lexicon form.
type Entry struct {
	Key
	FreqIndex float64
}

// FreqIndex computes the weighted composite score of r, rounded to 3 decimals.
func (w Weights) FreqIndex(r Record) float64 {
	sum := w.LemmaFilms*r.FreqLemmaFilms +
		w.Films*r.FreqFilms +
		w.LemmaBooks*r.FreqLemmaBooks +
		w.Books*r.FreqBooks
	return round3(sum / w.Sum())
}

// round3 rounds half to even like numpy's round.
func round3(v float64) float64 {
	return math.RoundToEven(v*1000) / 1000
}

// Keep reports whether r is a singular common noun of acceptable length.
func (o Options) Keep(r Record) bool {
	return r.Category == CategoryNoun &&
		r.Number != NumberPlural &&
		utf8.RuneCountInString(r.Word) >= o.MinWordLength
}

// Score filters records and returns one entry per key holding the mean
// score of its rows, ordered by key.
func Score(records []Record, opts Options) []Entry {
	type acc struct {
		sum float64
		n   int
	}
	groups := make(map[Key]*acc)
	var keys []Key

	for _, r := range records {
		if !opts.Keep(r) {
			continue
		}
		k := Key{Word: r.Word, Gender: r.Gender, Lemma: r.Lemma, Phonetic: r.Phonetic}
		a, ok := groups[k]
		if !ok {
			a = &acc{}
			groups[k] = a
			keys = append(keys, k)
		}
		a.sum += opts.Weights.FreqIndex(r)
		a.n++
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		a := groups[k]
		out = append(out, Entry{Key: k, FreqIndex: a.sum / float64(a.n)})
	}
	return out
}
