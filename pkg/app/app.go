// Package app wires the configured sources, the word pipeline and the sinks
// into a single run.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/japaniel/dailyword/pkg/config"
	"github.com/japaniel/dailyword/pkg/db"
	"github.com/japaniel/dailyword/pkg/dictionary"
	"github.com/japaniel/dailyword/pkg/export"
	"github.com/japaniel/dailyword/pkg/lexicon"
	"github.com/japaniel/dailyword/pkg/wordlist"
)

// Cached dataset file names under the data directory.
const (
	LexiqueFile = "Lexique383.tsv"
	DicoFile    = "dico.csv"
)

// Result summarizes a run.
type Result struct {
	Stats wordlist.Stats
	// Saved is the number of rows written to SQLite, zero when disabled.
	Saved int
}

// Run downloads missing datasets, builds the word table and writes the CSV
// and, when configured, the SQLite database.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Result, error) {
	var res Result

	opts, err := cfg.Pipeline.Options()
	if err != nil {
		return res, err
	}

	lexPath := filepath.Join(cfg.Source.DataDir, LexiqueFile)
	dicoPath := filepath.Join(cfg.Source.DataDir, DicoFile)

	client := dictionary.NewClient(cfg.Source.Timeout, cfg.Source.UserAgent)
	if err := dictionary.EnsureDataset(ctx, client, cfg.Source.LexiqueURL, lexPath); err != nil {
		return res, fmt.Errorf("lexicon source: %w", err)
	}
	if err := dictionary.EnsureDataset(ctx, client, cfg.Source.DicoURL, dicoPath); err != nil {
		return res, fmt.Errorf("dictionary source: %w", err)
	}

	lex, err := lexicon.LoadFile(lexPath)
	if err != nil {
		return res, err
	}
	logger.InfoContext(ctx, "lexicon loaded", slog.String("path", lexPath), slog.Int("records", len(lex)))

	dict, err := dictionary.LoadFile(dicoPath)
	if err != nil {
		return res, err
	}
	logger.InfoContext(ctx, "dictionary loaded", slog.String("path", dicoPath), slog.Int("records", len(dict)))

	words, stats, err := wordlist.Build(lex, dict, opts)
	res.Stats = stats
	if err != nil {
		return res, fmt.Errorf("build word list: %w", err)
	}
	logger.InfoContext(ctx, "word list built",
		slog.Int("scored", stats.Scored),
		slog.Int("joined", stats.Joined),
		slog.Int("aggregated", stats.Aggregated),
		slog.Int("aligned", stats.Aligned),
		slog.Int("words", stats.Words),
	)

	if err := ctx.Err(); err != nil {
		return res, err
	}
	if cfg.Output.SQLitePath == "" {
		if err := export.WriteFile(cfg.Output.CSVPath, words); err != nil {
			return res, fmt.Errorf("export: %w", err)
		}
		logger.InfoContext(ctx, "csv written", slog.String("path", cfg.Output.CSVPath), slog.Int("rows", len(words)))
		return res, nil
	}

	res.Saved, err = writeBoth(ctx, cfg.Output, words)
	if err != nil {
		return res, err
	}
	logger.InfoContext(ctx, "csv written", slog.String("path", cfg.Output.CSVPath), slog.Int("rows", len(words)))
	logger.InfoContext(ctx, "database updated", slog.String("path", cfg.Output.SQLitePath), slog.Int("rows", res.Saved))
	return res, nil
}

// writeBoth stages the rows in SQLite, writes the CSV, then commits. On
// failure neither output is left behind.
func writeBoth(ctx context.Context, out config.OutputConfig, words []wordlist.Word) (int, error) {
	_, statErr := os.Stat(out.SQLitePath)
	created := errors.Is(statErr, os.ErrNotExist)

	conn, err := db.Open(out.SQLitePath)
	if err != nil {
		discardDB(nil, out.SQLitePath, created)
		return 0, fmt.Errorf("open database: %w", err)
	}

	staged, err := db.StageWords(ctx, conn, words, out.BatchSize)
	if err != nil {
		discardDB(conn, out.SQLitePath, created)
		return 0, fmt.Errorf("save words: %w", err)
	}

	if err := export.WriteFile(out.CSVPath, words); err != nil {
		_ = staged.Rollback()
		discardDB(conn, out.SQLitePath, created)
		return 0, fmt.Errorf("export: %w", err)
	}

	if err := staged.Commit(); err != nil {
		_ = os.Remove(out.CSVPath)
		discardDB(conn, out.SQLitePath, created)
		return 0, fmt.Errorf("save words: %w", err)
	}
	if err := conn.Close(); err != nil {
		return staged.Rows, fmt.Errorf("close database: %w", err)
	}
	return staged.Rows, nil
}

// discardDB closes conn and removes the database file if this run created it.
func discardDB(conn *sql.DB, path string, created bool) {
	if conn != nil {
		_ = conn.Close()
	}
	if created {
		_ = os.Remove(path)
		_ = os.Remove(path + "-journal")
	}
}
