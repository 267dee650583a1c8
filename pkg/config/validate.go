package config

import (
	"errors"
	"fmt"

	"github.com/japaniel/dailyword/pkg/lexicon"
	"github.com/japaniel/dailyword/pkg/wordlist"
)

// ErrInvalidConfig is returned for configuration values the pipeline cannot run with.
var ErrInvalidConfig = errors.New("invalid config")

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Source.LexiqueURL == "" || c.Source.DicoURL == "" {
		return fmt.Errorf("%w: source urls must be set", ErrInvalidConfig)
	}
	if c.Output.CSVPath == "" {
		return fmt.Errorf("%w: output.csv_path must be set", ErrInvalidConfig)
	}
	if c.Output.BatchSize < 1 {
		return fmt.Errorf("%w: output.batch_size must be >= 1 (got %d)", ErrInvalidConfig, c.Output.BatchSize)
	}
	if _, err := c.Pipeline.Options(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	return nil
}

// Options converts the pipeline section into the options value passed to
// wordlist.Build.
func (p PipelineConfig) Options() (wordlist.Options, error) {
	if p.FreqThreshold < 0 {
		return wordlist.Options{}, fmt.Errorf("%w: freq_threshold must be >= 0 (got %v)", ErrInvalidConfig, p.FreqThreshold)
	}
	if p.MinWordLength < 1 {
		return wordlist.Options{}, fmt.Errorf("%w: min_word_length must be >= 1 (got %d)", ErrInvalidConfig, p.MinWordLength)
	}
	if p.MinDefinitionLength < 0 {
		return wordlist.Options{}, fmt.Errorf("%w: min_definition_length must be >= 0 (got %d)", ErrInvalidConfig, p.MinDefinitionLength)
	}

	w := lexicon.Weights{
		LemmaFilms: p.Weights.LemmaFilms,
		Films:      p.Weights.Films,
		LemmaBooks: p.Weights.LemmaBooks,
		Books:      p.Weights.Books,
	}
	if w.LemmaFilms < 0 || w.Films < 0 || w.LemmaBooks < 0 || w.Books < 0 {
		return wordlist.Options{}, fmt.Errorf("%w: weights must be >= 0", ErrInvalidConfig)
	}
	if w.Sum() == 0 {
		return wordlist.Options{}, fmt.Errorf("%w: weights sum to zero", ErrInvalidConfig)
	}

	opts := wordlist.DefaultOptions()
	opts.Lexicon = lexicon.Options{Weights: w, MinWordLength: p.MinWordLength}
	opts.FreqThreshold = p.FreqThreshold
	opts.MinDefinitionLength = p.MinDefinitionLength
	opts.ScrubChars = p.ScrubChars
	if p.LowValuePattern != "" {
		re, err := wordlist.CompileLowValue(p.LowValuePattern)
		if err != nil {
			return wordlist.Options{}, fmt.Errorf("%w: low_value_pattern: %v", ErrInvalidConfig, err)
		}
		opts.LowValue = re
	}
	return opts, nil
}
