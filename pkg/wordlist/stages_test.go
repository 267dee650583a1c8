package wordlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/dailyword/pkg/dictionary"
	"github.com/japaniel/dailyword/pkg/lexicon"
)

func entry(word, gender, lemma, phon string, freq float64) lexicon.Entry {
	return lexicon.Entry{Key: lexicon.Key{Word: word, Gender: gender, Lemma: lemma, Phonetic: phon}, FreqIndex: freq}
}

func TestJoin(t *testing.T) {
	entries := []lexicon.Entry{
		entry("chat", "m", "chat", "Sa", 0.2),
		entry("Paris", "", "Paris", "paRi", 0.1),
		entry("orphelin", "m", "orphelin", "ORf@lin", 0.3),
	}
	idx := dictionary.NewIndex([]dictionary.Record{
		{Headword: "chat", Definitions: "['félin']"},
		{Headword: "Chat", Definitions: "['jeu']"},
		{Headword: "paris", Definitions: "['capitale']"},
		{Headword: "absent", Definitions: "['rien']"},
	})

	got := Join(entries, idx)
	require.Len(t, got, 3)

	assert.Equal(t, "chat", got[0].Word)
	assert.Equal(t, "chat", got[0].Headword)
	assert.Equal(t, "Chat", got[1].Headword, "duplicate keys expand")
	assert.Equal(t, "Paris", got[2].Word, "visible word keeps its case")
	assert.Equal(t, "paris", got[2].Headword)
	assert.Equal(t, 0.1, got[2].FreqIndex)
}

func TestAggregate(t *testing.T) {
	k := lexicon.Key{Word: "tour", Gender: "m", Lemma: "tour", Phonetic: "tuR"}
	rows := []Joined{
		{Entry: lexicon.Entry{Key: k, FreqIndex: 0.3}, Headword: "tour", Definitions: "['a', 'b']"},
		{Entry: lexicon.Entry{Key: k, FreqIndex: 0.3}, Headword: "tour", Definitions: "['a', 'b']"},
		{Entry: lexicon.Entry{Key: k, FreqIndex: 0.1}, Headword: "Tour", Definitions: "['a', 'c']"},
		{Entry: entry("abri", "m", "abri", "abRi", 0.05), Headword: "abri", Definitions: "[]"},
	}

	got, err := Aggregate(rows)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "abri", got[0].Word)
	assert.Equal(t, []string{}, got[0].Definitions)

	assert.Equal(t, k, got[1].Key)
	assert.Equal(t, 0.1, got[1].FreqIndex, "minimum score wins")
	assert.Equal(t, []string{"a", "b", "a", "c"}, got[1].Definitions, "exact duplicate row dropped, list duplicates kept")
}

func TestAggregateMalformed(t *testing.T) {
	_, err := Aggregate([]Joined{{Entry: entry("chat", "m", "chat", "Sa", 0.1), Headword: "chat", Definitions: "félin"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, dictionary.ErrMalformedDefinitions))
}

func TestAlignGender(t *testing.T) {
	rows := []Aggregated{
		{Key: lexicon.Key{Word: "acteur", Gender: "m", Lemma: "acteur"}, Definitions: []string{"Artiste qui joue."}},
		{Key: lexicon.Key{Word: "actrice", Gender: "f", Lemma: "acteur"}, Definitions: []string{"Féminin de acteur."}},
		{Key: lexicon.Key{Word: "chaise", Gender: "f", Lemma: "chaise"}, Definitions: []string{"Siège."}},
		{Key: lexicon.Key{Word: "enfant", Lemma: "acteur"}, Definitions: []string{"Jeune."}},
	}

	got := AlignGender(rows)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"Artiste qui joue."}, got[1].Definitions)
	assert.Equal(t, []string{"Siège."}, got[2].Definitions, "no masculine counterpart")
	assert.Equal(t, []string{"Jeune."}, got[3].Definitions, "unspecified gender untouched")
	assert.Equal(t, []string{"Féminin de acteur."}, rows[1].Definitions, "input is not mutated")

	got[1].Definitions[0] = "changed"
	assert.Equal(t, "Artiste qui joue.", got[0].Definitions[0], "copied definitions do not alias")
}

func TestAlignGenderLastMasculineWins(t *testing.T) {
	rows := []Aggregated{
		{Key: lexicon.Key{Word: "garde", Gender: "m", Lemma: "garde", Phonetic: "gaRd"}, Definitions: []string{"Surveillant."}},
		{Key: lexicon.Key{Word: "garde", Gender: "m", Lemma: "garde", Phonetic: "gaRdə"}, Definitions: []string{"Gardien."}},
		{Key: lexicon.Key{Word: "garde", Gender: "f", Lemma: "garde"}, Definitions: []string{"Action de garder."}},
	}
	got := AlignGender(rows)
	assert.Equal(t, []string{"Gardien."}, got[2].Definitions)
}

func TestSort(t *testing.T) {
	words := []Word{
		{Key: lexicon.Key{Word: "élève"}},
		{Key: lexicon.Key{Word: "eleve"}},
		{Key: lexicon.Key{Word: "zèbre"}},
		{Key: lexicon.Key{Word: "abc"}},
	}
	Sort(words)

	var order []string
	for _, w := range words {
		order = append(order, w.Word)
	}
	assert.Equal(t, "abc", order[0])
	assert.ElementsMatch(t, []string{"eleve", "élève"}, order[1:3], "accented and plain forms are adjacent")
	assert.Equal(t, "zèbre", order[3])
}

func TestSortDecomposedVersusPlain(t *testing.T) {
	words := []Word{
		{Key: lexicon.Key{Word: "zone"}},
		{Key: lexicon.Key{Word: "école"}},
		{Key: lexicon.Key{Word: "ecrou"}},
	}
	Sort(words)
	assert.Equal(t, "ecrou", words[0].Word, "the combining accent sorts after plain letters")
	assert.Equal(t, "école", words[1].Word)
	assert.Equal(t, "zone", words[2].Word)
}
