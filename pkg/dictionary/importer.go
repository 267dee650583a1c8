package dictionary

import "strings"

// Index maps a case-insensitive headword key to the records sharing it.
type Index struct {
	byKey map[string][]Record
}

// NewIndex builds an in-memory index of the provided dictionary. Records
// keep their original headword; only the lookup key is lowercased.
func NewIndex(records []Record) *Index {
	idx := make(map[string][]Record, len(records))
	for _, r := range records {
		k := Key(r.Headword)
		idx[k] = append(idx[k], r)
	}
	return &Index{byKey: idx}
}

// Key is the comparison key shared by both sides of the join.
func Key(word string) string {
	return strings.ToLower(word)
}

// Lookup returns every record whose headword matches word case-insensitively,
// in source order. Duplicate headwords all match.
func (ix *Index) Lookup(word string) []Record {
	return ix.byKey[Key(word)]
}

// Len returns the number of distinct keys.
func (ix *Index) Len() int {
	return len(ix.byKey)
}
