package processor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/wgomg/wordfreq/internal/config"
	"github.com/wgomg/wordfreq/internal/loader"
	"github.com/wgomg/wordfreq/internal/utils"
)

// Analyzer runs load, dedupe, normalize, tokenize, filter, count and rank
// for one file per call. It holds no state between calls besides its
// configuration, and is not meant to be used from several goroutines.
type Analyzer struct {
	cfg       config.AnalyzerConfig
	stopWords StopWords
	loader    *loader.Loader
	logger    *utils.Logger
}

// NewAnalyzer builds the stop-word set from the defaults, cfg.ExtraStopWords
// and cfg.StopWordsFile.
func NewAnalyzer(cfg *config.AnalyzerConfig, logger *utils.Logger) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	extra := append([]string(nil), cfg.ExtraStopWords...)
	if cfg.StopWordsFile != "" {
		words, err := LoadStopWords(cfg.StopWordsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load stop words: %w", err)
		}
		extra = append(extra, words...)
	}

	return NewAnalyzerWithStopWords(cfg, DefaultStopWords().With(extra...), logger), nil
}

// NewAnalyzerWithStopWords uses stopWords as given, without the defaults.
func NewAnalyzerWithStopWords(cfg *config.AnalyzerConfig, stopWords StopWords, logger *utils.Logger) *Analyzer {
	a := &Analyzer{
		cfg:       *cfg,
		stopWords: stopWords,
		logger:    logger,
	}
	a.loader = loader.New(&a.cfg, logger)
	return a
}

func (a *Analyzer) StopWords() StopWords {
	return a.stopWords
}

// AnalyzeFile loads path and analyzes it. Load failures are returned as
// *loader.LoadError; processing failures come back as a Result with
// StatusFailed.
func (a *Analyzer) AnalyzeFile(path string) (*Result, error) {
	rs, err := a.loader.Load(path)
	if err != nil {
		a.logger.Error("Failed to load file", "path", path, "error", err)
		return nil, err
	}

	result := a.AnalyzeRecords(rs)
	result.Source = path
	return result, nil
}

// AnalyzeRecords analyzes an already loaded record set.
func (a *Analyzer) AnalyzeRecords(rs *loader.RecordSet) *Result {
	result := &Result{
		ID:      uuid.New(),
		Table:   []TableRow{},
		Ranking: []WordCount{},
	}
	logger := a.logger.With("run", result.ID.String())

	if err := a.process(rs, result, logger); err != nil {
		logger.Error("Error processing text", "error", err)
		result.Status = StatusFailed
		result.Err = err
		result.Words = 0
		result.Tokens = 0
		result.DistinctWords = 0
		result.Table = []TableRow{}
		result.Ranking = []WordCount{}
		return result
	}

	if len(result.Ranking) == 0 {
		logger.Warn("No words left after filtering", "rows", result.Rows)
		result.Status = StatusEmpty
		return result
	}

	result.Status = StatusOK
	logger.Info("Analysis complete", "rows", result.Rows, "words", result.Words, "tokens", result.Tokens,
		"distinct", result.DistinctWords, "top", result.Ranking[0].Word)
	return result
}

func (a *Analyzer) process(rs *loader.RecordSet, result *Result, logger *utils.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("text processing panicked: %v", r)
		}
	}()

	result.Encoding = rs.Encoding
	result.Rows = rs.Len()
	result.DuplicatesRemoved = rs.Duplicates

	opts := TextOptions{Strategy: a.cfg.Strategy, Column: a.cfg.TextColumn, Nulls: a.cfg.Nulls}
	if opts.Strategy == config.SingleColumn && !rs.HasColumn(opts.Column) &&
		a.cfg.MissingColumn == config.MissingColumnFallback {
		logger.Warn("Text column missing, extracting all columns", "column", opts.Column)
		opts.Strategy = config.AllColumns
	}

	corpus, err := Corpus(rs, opts, logger)
	if err != nil {
		return err
	}

	result.Words = utils.CountWords(corpus)
	tokens := FilterStopWords(Tokenize(corpus), a.stopWords)
	freq := CountFrequencies(tokens)

	result.Tokens = freq.Total()
	result.DistinctWords = freq.Len()
	result.Ranking = freq.Ranking(a.cfg.RankingSize)
	result.Table = Table(result.Ranking, a.cfg.TableSize)

	return nil
}
