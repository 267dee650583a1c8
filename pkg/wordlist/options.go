// Package wordlist turns the scored lexicon and the definitions dataset into
// the sorted daily word table: join, aggregate, align feminine definitions on
// their masculine lemma, clean, and sort.
package wordlist

import (
	"regexp"

	"github.com/japaniel/dailyword/pkg/lexicon"
)

// DefaultLowValuePattern matches circular or uninformative French definitions
// ("pluriel de", "qui concerne", "variante de", ...).
const DefaultLowValuePattern = `pluriel|action d|in singulier d|inin d|du verbe|qualité d|caractère d|celui,\s*celle|celui qu|celle qu|fait d|` +
	`individu qui|personne qui|qui peut être|qui a rapport|qui se rapporte|qui concerne|relatif (?:à|a)"|état de|` +
	`opposition à|qui cherche|ce qui est|variante (?:d|ortho)|quelque chose|quelqu'un qui|[rm]e personne d`

// DefaultScrubChars are removed from every definition.
const DefaultScrubChars = `"$`

// Delimiter separates sub-definitions in a cleaned definitions string.
const Delimiter = " | "

// Options is the full tuning surface of the pipeline.
type Options struct {
	Lexicon lexicon.Options

	// FreqThreshold keeps words whose score is at most this value.
	FreqThreshold float64
	// MinDefinitionLength drops definitions of this many runes or fewer.
	MinDefinitionLength int
	// LowValue matches sub-definitions to drop. Matching is case-insensitive
	// when built with CompileLowValue.
	LowValue   *regexp.Regexp
	ScrubChars string
}

// DefaultOptions returns the production settings.
func DefaultOptions() Options {
	return Options{
		Lexicon: lexicon.Options{
			Weights:       lexicon.DefaultWeights(),
			MinWordLength: 4,
		},
		FreqThreshold:       0.4,
		MinDefinitionLength: 3,
		LowValue:            regexp.MustCompile(`(?i)` + DefaultLowValuePattern),
		ScrubChars:          DefaultScrubChars,
	}
}

// CompileLowValue compiles a low-value pattern as a case-insensitive expression.
func CompileLowValue(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)` + pattern)
}
