package wordlist

import (
	"fmt"
	"sort"

	"github.com/japaniel/dailyword/pkg/dictionary"
	"github.com/japaniel/dailyword/pkg/lexicon"
)

// Aggregated is one word form with every definition it collected.
type Aggregated struct {
	lexicon.Key
	FreqIndex   float64
	Definitions []string
}

// Aggregate drops exact duplicate rows, then folds rows sharing a key into
// one: the lowest score wins and definition lists are concatenated in row
// order. A definitions cell that is not a list literal aborts the fold.
func Aggregate(rows []Joined) ([]Aggregated, error) {
	seen := make(map[Joined]struct{}, len(rows))
	groups := make(map[lexicon.Key]*Aggregated)
	var keys []lexicon.Key

	for _, row := range rows {
		if _, dup := seen[row]; dup {
			continue
		}
		seen[row] = struct{}{}

		defs, err := dictionary.Record{Headword: row.Headword, Definitions: row.Definitions}.Parse()
		if err != nil {
			return nil, fmt.Errorf("aggregate: %w", err)
		}

		g, ok := groups[row.Key]
		if !ok {
			g = &Aggregated{Key: row.Key, FreqIndex: row.FreqIndex, Definitions: []string{}}
			groups[row.Key] = g
			keys = append(keys, row.Key)
		}
		g.FreqIndex = min(g.FreqIndex, row.FreqIndex)
		g.Definitions = append(g.Definitions, defs...)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	out := make([]Aggregated, 0, len(keys))
	for _, k := range keys {
		out = append(out, *groups[k])
	}
	return out, nil
}
