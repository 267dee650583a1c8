package wordlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/dailyword/pkg/dictionary"
	"github.com/japaniel/dailyword/pkg/lexicon"
)

func noun(word, gender, lemma, phon string, freqs ...float64) lexicon.Record {
	r := lexicon.Record{Word: word, Gender: gender, Lemma: lemma, Phonetic: phon, Category: lexicon.CategoryNoun, Number: "s"}
	if len(freqs) == 4 {
		r.FreqLemmaFilms, r.FreqFilms, r.FreqLemmaBooks, r.FreqBooks = freqs[0], freqs[1], freqs[2], freqs[3]
	}
	return r
}

func fixture() ([]lexicon.Record, []dictionary.Record) {
	lex := []lexicon.Record{
		noun("chat", "m", "chat", "Sa", 10, 8, 5, 4),
		noun("chien", "m", "chien", "Sj5", 0.8, 0, 0, 0),
		noun("chien", "m", "chien", "Sj5", 1.6, 0, 0, 0),
		noun("acteur", "m", "acteur", "akt9R", 0.8, 0.8, 0, 0),
		noun("actrice", "f", "acteur", "aktRis", 0.8, 0, 0, 0),
		noun("avocat", "m", "avocat", "avOka", 8, 8, 8, 8),
		noun("avocate", "f", "avocat", "avOkat", 0.8, 0, 0, 0),
		noun("élève", "", "élève", "elEv", 0.8, 0, 0, 0),
		noun("zèbre", "m", "zèbre", "zEbR", 0.8, 0, 0, 0),
		noun("abeille", "f", "abeille", "abEj", 0.8, 0, 0, 0),
		{Word: "manger", Lemma: "manger", Category: "VER", Number: "s"},
		{Word: "chiens", Gender: "m", Lemma: "chien", Category: lexicon.CategoryNoun, Number: "p"},
		noun("orphelin", "m", "orphelin", "ORf@l5", 0.8, 0, 0, 0),
	}
	dict := []dictionary.Record{
		{Headword: "chat", Definitions: "['Petit félin domestique.']"},
		{Headword: "chien", Definitions: "['pluriel de chien', 'animal domestique']"},
		{Headword: "Chien", Definitions: "['animal domestique', 'Pièce d\\'une arme à feu.']"},
		{Headword: "acteur", Definitions: "['Artiste qui joue un rôle.']"},
		{Headword: "actrice", Definitions: "['Féminin de acteur.']"},
		{Headword: "avocat", Definitions: "['Auxiliaire de justice.']"},
		{Headword: "avocate", Definitions: "['Féminin de avocat.']"},
		{Headword: "élève", Definitions: "['Personne qui reçoit un enseignement.', 'Disciple.']"},
		{Headword: "zèbre", Definitions: "['Équidé rayé.']"},
		{Headword: "abeille", Definitions: "['Insecte qui produit le miel.']"},
		{Headword: "inconnu", Definitions: "['Sans lexique.']"},
	}
	return lex, dict
}

func TestBuild(t *testing.T) {
	lex, dict := fixture()
	words, stats, err := Build(lex, dict, DefaultOptions())
	require.NoError(t, err)

	byWord := map[string]Word{}
	var order []string
	for _, w := range words {
		byWord[w.Word] = w
		order = append(order, w.Word)
	}

	assert.Equal(t, []string{"abeille", "acteur", "actrice", "avocate", "chien", "élève", "zèbre"}, order)

	assert.NotContains(t, byWord, "chat", "score 5.625 is above the cutoff")
	assert.NotContains(t, byWord, "orphelin", "no definition")

	assert.Equal(t, "animal domestique | Pièce d'une arme à feu.", byWord["chien"].Definitions)
	assert.InDelta(t, 0.15, byWord["chien"].FreqIndex, 1e-9)

	assert.Equal(t, "Artiste qui joue un rôle.", byWord["actrice"].Definitions)
	assert.Equal(t, "Disciple.", byWord["élève"].Definitions)

	assert.Equal(t, 13, stats.LexiconRecords)
	assert.Equal(t, 11, stats.DictionaryRecords)
	assert.Equal(t, 10, stats.Scored)
	assert.Equal(t, 10, stats.Joined)
	assert.Equal(t, 9, stats.Aggregated)
	assert.Equal(t, 2, stats.Aligned)
	assert.Equal(t, len(words), stats.Words)
}

// The masculine lookup is taken before cleaning, so a feminine row can keep
// definitions copied from a masculine row that the cutoff later drops.
func TestBuildGenderAlignmentPrecedesCleaning(t *testing.T) {
	lex, dict := fixture()
	words, _, err := Build(lex, dict, DefaultOptions())
	require.NoError(t, err)

	var avocate *Word
	for i := range words {
		assert.NotEqual(t, "avocat", words[i].Word, "masculine row is above the cutoff")
		if words[i].Word == "avocate" {
			avocate = &words[i]
		}
	}
	require.NotNil(t, avocate)
	assert.Equal(t, "Auxiliaire de justice.", avocate.Definitions)
}

func TestBuildProperties(t *testing.T) {
	lex, dict := fixture()
	opts := DefaultOptions()
	words, _, err := Build(lex, dict, opts)
	require.NoError(t, err)
	require.NotEmpty(t, words)

	seen := map[lexicon.Key]bool{}
	for _, w := range words {
		assert.LessOrEqual(t, w.FreqIndex, opts.FreqThreshold)
		assert.False(t, seen[w.Key], "duplicate key %+v", w.Key)
		seen[w.Key] = true
		assert.Greater(t, len([]rune(w.Definitions)), 3)
		assert.Equal(t, w.Definitions, CleanDefinitions(w.Definitions, opts))
		assert.Empty(t, w.DisplayDate)
	}
}

func TestBuildThresholdIsConfigurable(t *testing.T) {
	lex, dict := fixture()
	opts := DefaultOptions()
	opts.FreqThreshold = 6

	words, _, err := Build(lex, dict, opts)
	require.NoError(t, err)

	var chat *Word
	for i := range words {
		if words[i].Word == "chat" {
			chat = &words[i]
		}
	}
	require.NotNil(t, chat)
	assert.Equal(t, 5.625, chat.FreqIndex)
}

func TestBuildMalformedDefinitionsAborts(t *testing.T) {
	lex, dict := fixture()
	dict = append(dict, dictionary.Record{Headword: "zèbre", Definitions: "Équidé"})

	words, _, err := Build(lex, dict, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, dictionary.ErrMalformedDefinitions))
	assert.Nil(t, words)
}
