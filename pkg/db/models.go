package db

import "time"

// DailyWord is a stored row of the daily word table.
// DisplayDate stays empty until a scheduler assigns the word to a day.
type DailyWord struct {
	ID          int64
	Word        string
	Gender      string
	Lemma       string
	Phonetic    string
	FreqIndex   float64
	Definitions string
	DisplayDate string
	UpdatedAt   time.Time
}
