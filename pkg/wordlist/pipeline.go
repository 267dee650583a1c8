package wordlist

import (
	"slices"

	"github.com/japaniel/dailyword/pkg/dictionary"
	"github.com/japaniel/dailyword/pkg/lexicon"
)

// Stats counts rows surviving each stage of Build.
type Stats struct {
	LexiconRecords    int
	DictionaryRecords int
	Scored            int
	Joined            int
	Aggregated        int
	Aligned           int // feminine rows that took masculine definitions
	Words             int
}

// Build runs every stage in order and returns the sorted word table.
func Build(lex []lexicon.Record, dict []dictionary.Record, opts Options) ([]Word, Stats, error) {
	stats := Stats{LexiconRecords: len(lex), DictionaryRecords: len(dict)}

	scored := lexicon.Score(lex, opts.Lexicon)
	stats.Scored = len(scored)

	joined := Join(scored, dictionary.NewIndex(dict))
	stats.Joined = len(joined)

	aggregated, err := Aggregate(joined)
	if err != nil {
		return nil, stats, err
	}
	stats.Aggregated = len(aggregated)

	aligned := AlignGender(aggregated)
	stats.Aligned = countAligned(aggregated, aligned)

	words := Clean(aligned, opts)
	Sort(words)
	stats.Words = len(words)

	return words, stats, nil
}

func countAligned(before, after []Aggregated) int {
	n := 0
	for i := range before {
		if before[i].Gender == lexicon.Feminine && !slices.Equal(before[i].Definitions, after[i].Definitions) {
			n++
		}
	}
	return n
}

