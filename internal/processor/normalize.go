package processor

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/wgomg/wordfreq/internal/config"
	"github.com/wgomg/wordfreq/internal/loader"
	"github.com/wgomg/wordfreq/internal/utils"
)

// NullText stands in for null cells under config.NullLiteral.
const NullText = "nan"

// ErrTextCoercion marks a cell whose value is not valid text. It never
// leaves this package: such cells are dropped.
var ErrTextCoercion = errors.New("cell is not valid text")

// errSkipCell marks a null cell dropped under config.NullDrop.
var errSkipCell = errors.New("null cell")

// Corpus joins the text selected by opts into one space-separated string.
// Cells that fail coercion are logged and skipped.
func Corpus(rs *loader.RecordSet, opts TextOptions, logger *utils.Logger) (string, error) {
	cells, err := selectCells(rs, opts, logger)
	if err != nil {
		return "", err
	}

	values := make([]string, 0, len(cells))
	dropped := 0
	for _, cell := range cells {
		text, err := coerceCell(cell, opts.Nulls)
		if errors.Is(err, errSkipCell) {
			continue
		}
		if err != nil {
			dropped++
			logger.Debug("Dropping cell", "error", err)
			continue
		}
		values = append(values, text)
	}

	if dropped > 0 {
		logger.Warn("Dropped cells that are not valid text", "count", dropped)
	}

	return strings.Join(values, " "), nil
}

func selectCells(rs *loader.RecordSet, opts TextOptions, logger *utils.Logger) ([]loader.Cell, error) {
	if opts.Strategy == config.SingleColumn {
		return rs.Column(opts.Column)
	}

	cells := make([]loader.Cell, 0, len(rs.Rows)*len(rs.Columns))
	for _, row := range rs.Rows {
		cells = append(cells, row...)
	}
	logger.Debug("Collected cells from all columns", "columns", len(rs.Columns), "cells", len(cells))
	return cells, nil
}

func coerceCell(cell loader.Cell, nulls config.NullPolicy) (string, error) {
	if cell.Null {
		if nulls == config.NullLiteral {
			return NullText, nil
		}
		return "", errSkipCell
	}

	if !utf8.ValidString(cell.Value) {
		preview := utils.Truncate(strings.ToValidUTF8(cell.Value, "?"), 40)
		return "", fmt.Errorf("%w: %q", ErrTextCoercion, preview)
	}
	return cell.Value, nil
}

// Tokenize lowercases corpus, removes URLs and every ASCII punctuation
// character except '@', and splits on whitespace.
func Tokenize(corpus string) []string {
	text := strings.ToLower(corpus)
	text = utils.StripURLs(text)
	text = utils.StripPunctuation(text, "@")

	return strings.Fields(text)
}
