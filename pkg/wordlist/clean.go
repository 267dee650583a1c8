package wordlist

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/japaniel/dailyword/pkg/lexicon"
)

// Word is a row of the final table.
type Word struct {
	lexicon.Key
	FreqIndex   float64
	Definitions string
	// DisplayDate is assigned later by the word-of-the-day consumer.
	DisplayDate string
}

// Clean keeps rows at or under the frequency threshold and reduces their
// definitions to a single cleaned string. Rows left without a usable
// definition are dropped.
func Clean(rows []Aggregated, opts Options) []Word {
	var out []Word
	for _, r := range rows {
		if r.FreqIndex > opts.FreqThreshold {
			continue
		}
		defs := CleanDefinitions(strings.Join(r.Definitions, Delimiter), opts)
		if defs == "" || utf8.RuneCountInString(defs) <= opts.MinDefinitionLength {
			continue
		}
		out = append(out, Word{Key: r.Key, FreqIndex: r.FreqIndex, Definitions: defs})
	}
	return out
}

// CleanDefinitions runs the text stages on a flattened definitions string:
// dedup, character scrub, low-value removal. Applying it to its own output
// returns the same string.
func CleanDefinitions(s string, opts Options) string {
	s = dedupFragments(s)
	s = scrub(s, opts.ScrubChars)
	return dropLowValue(s, opts)
}

// dedupFragments removes repeated sub-definitions, keeping first occurrences.
func dedupFragments(s string) string {
	parts := strings.Split(s, Delimiter)
	seen := make(map[string]struct{}, len(parts))
	kept := parts[:0]
	for _, p := range parts {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		kept = append(kept, p)
	}
	return strings.Join(kept, Delimiter)
}

// scrub strips stray characters, then apostrophes with no word character on
// either side, then turns the ".," artifact into a delimiter.
func scrub(s, chars string) string {
	if chars != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(chars, r) {
				return -1
			}
			return r
		}, s)
	}
	s = dropLooseApostrophes(s)
	return strings.ReplaceAll(s, ".,", " |")
}

func dropLooseApostrophes(s string) string {
	if !strings.Contains(s, "'") {
		return s
	}
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		if r == '\'' {
			before := i > 0 && isWordRune(runes[i-1])
			after := i+1 < len(runes) && isWordRune(runes[i+1])
			if !before && !after {
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsNumber(r)
}

// dropLowValue splits on "|" and keeps the distinct, non-empty fragments that
// do not match the low-value pattern.
func dropLowValue(s string, opts Options) string {
	var kept []string
	seen := make(map[string]struct{})
	for _, frag := range strings.Split(s, "|") {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		if opts.LowValue != nil && opts.LowValue.MatchString(frag) {
			continue
		}
		if _, dup := seen[frag]; dup {
			continue
		}
		seen[frag] = struct{}{}
		kept = append(kept, frag)
	}
	return strings.Join(kept, Delimiter)
}
