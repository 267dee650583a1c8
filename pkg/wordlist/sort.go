package wordlist

import (
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Sort orders words by their canonical decomposition so accented letters sit
// next to their base letter ("élève" after "eleve", before "zèbre").
// The sort is stable.
func Sort(words []Word) {
	keys := make([]string, len(words))
	for i, w := range words {
		keys[i] = norm.NFD.String(w.Word)
	}
	sort.Stable(byDecomposed{words: words, keys: keys})
}

type byDecomposed struct {
	words []Word
	keys  []string
}

func (s byDecomposed) Len() int           { return len(s.words) }
func (s byDecomposed) Less(i, j int) bool { return s.keys[i] < s.keys[j] }
func (s byDecomposed) Swap(i, j int) {
	s.words[i], s.words[j] = s.words[j], s.words[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}
