// Package export writes the final word table as a fully quoted CSV file.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/japaniel/dailyword/pkg/wordlist"
)

// Header lists the output columns in order.
var Header = []string{"mot", "genre", "lemme", "phonétique", "custom_freq_index", "définitions", "display_date"}

// WriteCSV writes words to w with every field quoted.
// encoding/csv only quotes when needed, so quoting is done here.
func WriteCSV(w io.Writer, words []wordlist.Word) error {
	bw := bufio.NewWriter(w)
	if err := writeRecord(bw, Header); err != nil {
		return err
	}
	for _, word := range words {
		rec := []string{
			word.Word,
			word.Gender,
			word.Lemma,
			word.Phonetic,
			FormatScore(word.FreqIndex),
			word.Definitions,
			word.DisplayDate,
		}
		if err := writeRecord(bw, rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRecord(w *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(f, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// FormatScore prints v in its shortest decimal form, keeping at least one
// fractional digit ("0.0", "0.125").
func FormatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// WriteFile writes the table to path. The file is written under a temporary
// name and renamed, so a failed export leaves no partial output.
func WriteFile(path string, words []wordlist.Word) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteCSV(tmp, words); err != nil {
		tmp.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close csv: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename csv: %w", err)
	}
	return nil
}
