package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wgomg/wordfreq/internal/processor"
)

// WriteRanking prints ranking as a numbered list under a short header.
func WriteRanking(w io.Writer, ranking []processor.WordCount, limit int) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Top %d most frequent words:\n", limit)
	b.WriteString("Word : Frequency\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	for i, wc := range ranking {
		fmt.Fprintf(&b, "%d. %s: %d\n", i+1, wc.Word, wc.Count)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// StatusLine summarises one analysis for the user.
func StatusLine(path string, result *processor.Result, err error) string {
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	switch result.Status {
	case processor.StatusFailed:
		return fmt.Sprintf("Error: %v", result.Err)
	case processor.StatusEmpty:
		return fmt.Sprintf("Analysis complete: %s (no words left after filtering)", path)
	default:
		return fmt.Sprintf("Analysis complete: %s", path)
	}
}

type resultJSON struct {
	ID                string                `json:"id"`
	Source            string                `json:"source"`
	Encoding          string                `json:"encoding"`
	Rows              int                   `json:"rows"`
	DuplicatesRemoved int                   `json:"duplicates_removed"`
	Words             int                   `json:"words"`
	Tokens            int                   `json:"tokens"`
	DistinctWords     int                   `json:"distinct_words"`
	Status            processor.Status      `json:"status"`
	Error             string                `json:"error,omitempty"`
	Table             []processor.TableRow  `json:"table"`
	Ranking           []processor.WordCount `json:"ranking"`
}

func WriteJSON(w io.Writer, result *processor.Result) error {
	if result == nil {
		return errors.New("nil result")
	}

	out := resultJSON{
		ID:                result.ID.String(),
		Source:            result.Source,
		Encoding:          result.Encoding,
		Rows:              result.Rows,
		DuplicatesRemoved: result.DuplicatesRemoved,
		Words:             result.Words,
		Tokens:            result.Tokens,
		DistinctWords:     result.DistinctWords,
		Status:            result.Status,
		Table:             result.Table,
		Ranking:           result.Ranking,
	}
	if result.Err != nil {
		out.Error = result.Err.Error()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
