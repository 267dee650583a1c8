package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/japaniel/dailyword/pkg/wordlist"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

const defaultBatchSize = 500

const upsertTail = `
		ON CONFLICT(word, gender, lemma, phonetic) DO UPDATE SET
		  freq_index = excluded.freq_index,
		  definitions = excluded.definitions,
		  display_date = COALESCE(daily_words.display_date, excluded.display_date),
		  updated_at = CURRENT_TIMESTAMP`

// UpsertWords inserts the words or refreshes the score and definitions of
// rows with the same key, in a single statement. An assigned display_date is
// left alone. Keys must be distinct within one call.
func UpsertWords(ctx context.Context, db DBExecutor, words []wordlist.Word) error {
	if len(words) == 0 {
		return nil
	}
	var q strings.Builder
	q.WriteString(`INSERT INTO daily_words (word, gender, lemma, phonetic, freq_index, definitions, display_date) VALUES `)
	args := make([]interface{}, 0, len(words)*7)
	for i, w := range words {
		if strings.TrimSpace(w.Word) == "" {
			return fmt.Errorf("word must be non-empty")
		}
		if i > 0 {
			q.WriteString(", ")
		}
		q.WriteString("(?, ?, ?, ?, ?, ?, ?)")
		args = append(args, w.Word, w.Gender, w.Lemma, w.Phonetic, w.FreqIndex, w.Definitions, nullableString(w.DisplayDate))
	}
	q.WriteString(upsertTail)

	if _, err := db.ExecContext(ctx, q.String(), args...); err != nil {
		return fmt.Errorf("upsert %d words: %w", len(words), err)
	}
	return nil
}

// Staged is a save whose rows are written but not yet visible.
type Staged struct {
	tx   *sql.Tx
	Rows int
}

// Commit makes the staged rows visible.
func (s *Staged) Commit() error {
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %d words: %w", s.Rows, err)
	}
	return nil
}

// Rollback discards the staged rows.
func (s *Staged) Rollback() error {
	return s.tx.Rollback()
}

// StageWords upserts words inside one transaction, batchSize rows per
// statement, and returns it uncommitted. On error nothing is kept.
func StageWords(ctx context.Context, conn *sql.DB, words []wordlist.Word, batchSize int) (*Staged, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin tx: %w", err)
	}
	for start := 0; start < len(words); start += batchSize {
		end := min(start+batchSize, len(words))
		if err := UpsertWords(ctx, tx, words[start:end]); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}
	return &Staged{tx: tx, Rows: len(words)}, nil
}

// SaveWords stages and commits words, returning the number of rows written.
// A failure leaves the table as it was.
func SaveWords(ctx context.Context, conn *sql.DB, words []wordlist.Word, batchSize int) (int, error) {
	st, err := StageWords(ctx, conn, words, batchSize)
	if err != nil {
		return 0, err
	}
	if err := st.Commit(); err != nil {
		return 0, err
	}
	return st.Rows, nil
}

// ListWords returns stored words ordered by id.
func ListWords(ctx context.Context, db DBExecutor) ([]DailyWord, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, word, gender, lemma, phonetic, freq_index, definitions, display_date, updated_at FROM daily_words ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []DailyWord
	for rows.Next() {
		var w DailyWord
		var date sql.NullString
		if err := rows.Scan(&w.ID, &w.Word, &w.Gender, &w.Lemma, &w.Phonetic, &w.FreqIndex, &w.Definitions, &date, &w.UpdatedAt); err != nil {
			return nil, err
		}
		if date.Valid {
			w.DisplayDate = date.String
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountWords returns the number of stored words.
func CountWords(ctx context.Context, db DBExecutor) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM daily_words`).Scan(&n)
	return n, err
}

// nullableString returns nil for "" (no date assigned) else the value.
func nullableString(v string) interface{} {
	if v == "" {
		return nil
	}
	return v
}
