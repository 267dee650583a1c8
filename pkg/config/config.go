// Package config loads the run configuration from YAML and the environment.
package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Output   OutputConfig   `yaml:"output"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Log      LogConfig      `yaml:"log"`
}

// SourceConfig locates the two input datasets.
type SourceConfig struct {
	LexiqueURL string        `yaml:"lexique_url" env:"SOURCE_LEXIQUE_URL" env-default:"http://www.lexique.org/databases/Lexique383/Lexique383.tsv"`
	DicoURL    string        `yaml:"dico_url"    env:"SOURCE_DICO_URL"    env-default:"https://github.com/Kartmaan/french-language-tools/raw/refs/heads/master/files/dico.csv"`
	DataDir    string        `yaml:"data_dir"    env:"SOURCE_DATA_DIR"    env-default:"data"`
	Timeout    time.Duration `yaml:"timeout"     env:"SOURCE_TIMEOUT"     env-default:"5m"`
	UserAgent  string        `yaml:"user_agent"  env:"SOURCE_USER_AGENT"  env-default:"dailyword/1.0"`
}

// OutputConfig holds export destinations. An empty SQLitePath disables the
// database sink.
type OutputConfig struct {
	CSVPath    string `yaml:"csv_path"    env:"OUTPUT_CSV_PATH"    env-default:"daily_words.csv"`
	SQLitePath string `yaml:"sqlite_path" env:"OUTPUT_SQLITE_PATH"`
	BatchSize  int    `yaml:"batch_size"  env:"OUTPUT_BATCH_SIZE"  env-default:"500"`
}

// PipelineConfig holds the filtering and cleaning parameters. Zero is a
// valid value for most of them, so their defaults come from Default rather
// than env-default tags.
type PipelineConfig struct {
	FreqThreshold       float64       `yaml:"freq_threshold"        env:"PIPELINE_FREQ_THRESHOLD"`
	MinWordLength       int           `yaml:"min_word_length"       env:"PIPELINE_MIN_WORD_LENGTH"`
	MinDefinitionLength int           `yaml:"min_definition_length" env:"PIPELINE_MIN_DEFINITION_LENGTH"`
	Weights             WeightsConfig `yaml:"weights"`
	// LowValuePattern replaces the built-in French pattern when set.
	LowValuePattern string `yaml:"low_value_pattern" env:"PIPELINE_LOW_VALUE_PATTERN"`
	ScrubChars      string `yaml:"scrub_chars"       env:"PIPELINE_SCRUB_CHARS"`
}

// WeightsConfig weighs the four Lexique frequency columns.
type WeightsConfig struct {
	LemmaFilms float64 `yaml:"lemma_films" env:"PIPELINE_WEIGHT_LEMMA_FILMS"`
	Films      float64 `yaml:"films"       env:"PIPELINE_WEIGHT_FILMS"`
	LemmaBooks float64 `yaml:"lemma_books" env:"PIPELINE_WEIGHT_LEMMA_BOOKS"`
	Books      float64 `yaml:"books"       env:"PIPELINE_WEIGHT_BOOKS"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
