package processor

import (
	"github.com/google/uuid"

	"github.com/wgomg/wordfreq/internal/config"
)

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TableRow is one bar of the frequency chart.
type TableRow struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

type Status string

const (
	// StatusOK means at least one word was counted.
	StatusOK Status = "ok"
	// StatusEmpty means processing ran but no word survived filtering.
	StatusEmpty Status = "empty"
	// StatusFailed means processing aborted; Table and Ranking are empty.
	StatusFailed Status = "failed"
)

// Result is one analysis run. Words counts the raw whitespace-separated
// words of the corpus; Tokens counts what survived cleaning and filtering.
type Result struct {
	ID                uuid.UUID
	Source            string
	Encoding          string
	Rows              int
	DuplicatesRemoved int
	Words             int
	Tokens            int
	DistinctWords     int
	Status            Status
	Err               error
	Table             []TableRow
	Ranking           []WordCount
}

type TextOptions struct {
	Strategy config.Strategy
	Column   string
	Nulls    config.NullPolicy
}
