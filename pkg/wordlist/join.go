package wordlist

import (
	"github.com/japaniel/dailyword/pkg/dictionary"
	"github.com/japaniel/dailyword/pkg/lexicon"
)

// Joined is a scored lexicon entry matched with one dictionary headword.
type Joined struct {
	lexicon.Entry
	Headword    string
	Definitions string // raw list literal
}

// Join inner-joins entries with the dictionary on the lowercased word.
// Entries without a headword and headwords without an entry are dropped;
// a key present several times on the dictionary side yields one row per match.
func Join(entries []lexicon.Entry, idx *dictionary.Index) []Joined {
	var out []Joined
	for _, e := range entries {
		for _, r := range idx.Lookup(e.Word) {
			out = append(out, Joined{
				Entry:       e,
				Headword:    r.Headword,
				Definitions: r.Definitions,
			})
		}
	}
	return out
}
