package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wgomg/wordfreq/internal/config"
	"github.com/wgomg/wordfreq/internal/utils"
)

// missing-value markers recognised by pandas' read_csv
var nullMarkers = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

const nullKey = "\x00null"

type Loader struct {
	cfg    *config.AnalyzerConfig
	logger *utils.Logger
}

func New(cfg *config.AnalyzerConfig, logger *utils.Logger) *Loader {
	return &Loader{cfg: cfg, logger: logger}
}

// Load reads path, decodes it with the configured encodings, parses it and
// drops rows whose text column repeats an earlier row. Failures are
// returned as *LoadError.
func (l *Loader) Load(path string) (*RecordSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, loadError(path, fmt.Errorf("%w: %w", ErrUnreadable, err))
	}

	text, encoding, err := Decode(data, l.cfg.Encodings)
	if err != nil {
		return nil, loadError(path, err)
	}
	l.logger.Info("Successfully read file", "path", path, "encoding", encoding)

	rs, err := Parse(text, l.cfg.Delimiter)
	if err != nil {
		return nil, loadError(path, err)
	}
	rs.Encoding = encoding

	stats, err := rs.Dedupe(l.cfg.TextColumn)
	if errors.Is(err, ErrMissingColumn) && l.cfg.MissingColumn == config.MissingColumnFallback {
		l.logger.Warn("Text column missing, skipping deduplication",
			"path", path, "column", l.cfg.TextColumn, "columns", strings.Join(rs.Columns, ","))
		return rs, nil
	}
	if err != nil {
		return nil, loadError(path, err)
	}

	l.logger.Debug("Removed duplicate rows", "path", path, "column", l.cfg.TextColumn,
		"removed", stats.Removed, "remaining", rs.Len(), "distinct", stats.Distinct,
		"duplicate_rate", fmt.Sprintf("%.2f", stats.DuplicateRate))

	return rs, nil
}

// Parse reads delimited text with a header row. Short rows are padded with
// nulls; rows with more fields than the header are malformed.
func Parse(text string, delimiter rune) (*RecordSet, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: no columns to parse", ErrMalformedSource)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSource, err)
	}

	rs := &RecordSet{Columns: uniqueColumns(header)}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedSource, err)
		}

		if len(record) > len(header) {
			line, _ := r.FieldPos(0)
			return nil, fmt.Errorf("%w: expected %d fields in line %d, saw %d",
				ErrMalformedSource, len(header), line, len(record))
		}

		row := make(Row, len(header))
		for i := range row {
			if i >= len(record) || nullMarkers[record[i]] {
				row[i] = NullCell()
				continue
			}
			row[i] = Text(record[i])
		}
		rs.Rows = append(rs.Rows, row)
	}

	return rs, nil
}

// DedupeStats describes one Dedupe pass.
type DedupeStats struct {
	Removed  int
	Distinct int
	// DuplicateRate is the share of rows dropped, 0 for an empty set.
	DuplicateRate float64
}

// Dedupe keeps the first row for each distinct value of column. Null
// values compare equal to each other.
func (rs *RecordSet) Dedupe(column string) (DedupeStats, error) {
	idx := rs.ColumnIndex(column)
	if idx < 0 {
		return DedupeStats{}, fmt.Errorf("%w: %q", ErrMissingColumn, column)
	}

	seen := utils.NewSeenSet()
	kept := rs.Rows[:0]
	for _, row := range rs.Rows {
		key := row[idx].Value
		if row[idx].Null {
			key = nullKey
		}
		if seen.Add(key) {
			kept = append(kept, row)
		}
	}

	removed := len(rs.Rows) - len(kept)
	clear(rs.Rows[len(kept):])
	rs.Rows = kept
	rs.Duplicates += removed

	return DedupeStats{Removed: removed, Distinct: seen.Size(), DuplicateRate: seen.HitRate()}, nil
}
