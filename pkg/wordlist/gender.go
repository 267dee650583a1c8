package wordlist

import (
	"slices"

	"github.com/japaniel/dailyword/pkg/lexicon"
)

// AlignGender gives feminine rows the definitions of the masculine row that
// shares their lemma. The dataset often defines a feminine noun only as
// "féminin de X". When several masculine rows share a lemma the last one in
// key order wins. Masculine and unspecified rows are returned unchanged.
func AlignGender(rows []Aggregated) []Aggregated {
	masculine := make(map[string][]string)
	for _, r := range rows {
		if r.Gender == lexicon.Masculine {
			masculine[r.Lemma] = r.Definitions
		}
	}

	out := make([]Aggregated, len(rows))
	for i, r := range rows {
		if r.Gender == lexicon.Feminine {
			if defs, ok := masculine[r.Lemma]; ok {
				r.Definitions = slices.Clone(defs)
			}
		}
		out[i] = r
	}
	return out
}
