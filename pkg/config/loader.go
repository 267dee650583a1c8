package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/japaniel/dailyword/pkg/wordlist"
)

// Default returns a Config holding the pipeline defaults. The other sections
// are filled from env-default tags by Load.
func Default() Config {
	opts := wordlist.DefaultOptions()
	w := opts.Lexicon.Weights
	return Config{
		Pipeline: PipelineConfig{
			FreqThreshold:       opts.FreqThreshold,
			MinWordLength:       opts.Lexicon.MinWordLength,
			MinDefinitionLength: opts.MinDefinitionLength,
			Weights: WeightsConfig{
				LemmaFilms: w.LemmaFilms,
				Films:      w.Films,
				LemmaBooks: w.LemmaBooks,
				Books:      w.Books,
			},
			ScrubChars: opts.ScrubChars,
		},
	}
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (Default, then env-default tags).
// An empty path loads from ENV + defaults only; a path that does not exist
// is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
