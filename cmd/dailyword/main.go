package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/japaniel/dailyword/pkg/app"
	"github.com/japaniel/dailyword/pkg/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	configFlag := flag.String("config", "", "Path to YAML config (ENV and defaults when empty)")
	outFlag := flag.String("out", "", "Output CSV path (overrides output.csv_path)")
	dbFlag := flag.String("db", "", "SQLite database path (overrides output.sqlite_path)")
	dataDirFlag := flag.String("data-dir", "", "Dataset cache directory (overrides source.data_dir)")
	flag.Parse()

	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		return 1
	}
	if *outFlag != "" {
		cfg.Output.CSVPath = *outFlag
	}
	if *dbFlag != "" {
		cfg.Output.SQLitePath = *dbFlag
	}
	if *dataDirFlag != "" {
		cfg.Source.DataDir = *dataDirFlag
	}

	logger := app.NewLogger(cfg.Log)

	start := time.Now()
	res, err := app.Run(ctx, cfg, logger)
	if err != nil {
		logger.Error("run failed", slog.String("error", err.Error()))
		return 1
	}

	logger.Info("processing complete",
		slog.Int("words", res.Stats.Words),
		slog.Int("saved", res.Saved),
		slog.String("csv", cfg.Output.CSVPath),
		slog.Duration("duration", time.Since(start)),
	)
	return 0
}
