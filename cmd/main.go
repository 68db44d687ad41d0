package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cheggaaa/pb/v3"

	"github.com/wgomg/wordfreq/internal/config"
	"github.com/wgomg/wordfreq/internal/processor"
	"github.com/wgomg/wordfreq/internal/report"
	"github.com/wgomg/wordfreq/internal/utils"
)

var usage = `usage: %s [options] FILE...

Report the most frequent words in delimited text files.
Settings are read from the environment and .env; options override them.

options:
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := utils.NewLogger("error")
		log.Fatal("Failed to load configuration", "error", err)
	}

	strategy := flag.String("strategy", string(cfg.Analyzer.Strategy), "text extraction: single-column or all-columns")
	column := flag.String("column", cfg.Analyzer.TextColumn, "primary text column")
	missing := flag.String("missing-column", string(cfg.Analyzer.MissingColumn), "when the text column is absent: fail or fallback")
	tableSize := flag.Int("table", cfg.Analyzer.TableSize, "number of words in the chart table")
	rankingSize := flag.Int("ranking", cfg.Analyzer.RankingSize, "number of words in the ranked list")
	chartPath := flag.String("chart", "", "save a bar chart of the table to this PNG file")
	jsonOut := flag.Bool("json", false, "output in JSON format")
	progress := flag.Bool("progress", false, "show a progress bar when analyzing several files")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg.Analyzer.Strategy = config.Strategy(*strategy)
	cfg.Analyzer.TextColumn = *column
	cfg.Analyzer.MissingColumn = config.MissingColumnPolicy(*missing)
	cfg.Analyzer.TableSize = *tableSize
	cfg.Analyzer.RankingSize = *rankingSize

	if err := cfg.Validate(); err != nil {
		log := utils.NewLogger("error")
		log.Fatal("Invalid configuration", "error", err)
	}

	logger := utils.NewLogger(cfg.App.LogLevel)
	logger.Debug("Starting word frequency analyzer", "env", cfg.App.Env, "strategy", cfg.Analyzer.Strategy,
		"column", cfg.Analyzer.TextColumn, "encodings", cfg.Analyzer.Encodings)

	analyzer, err := processor.NewAnalyzer(&cfg.Analyzer, logger)
	if err != nil {
		logger.Fatal("Failed to create analyzer", "error", err)
	}
	logger.Debug("Stop words loaded", "count", analyzer.StopWords().Len(), "file", cfg.Analyzer.StopWordsFile)

	var bar *pb.ProgressBar
	if *progress && flag.NArg() > 1 {
		bar = pb.StartNew(flag.NArg())
	}

	failed := 0
	for i, path := range flag.Args() {
		if !run(analyzer, path, i, *chartPath, *jsonOut, cfg.Analyzer.RankingSize, logger) {
			failed++
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func run(
	analyzer *processor.Analyzer,
	path string,
	index int,
	chartPath string,
	jsonOut bool,
	rankingSize int,
	logger *utils.Logger,
) bool {
	result, err := analyzer.AnalyzeFile(path)
	fmt.Fprintln(os.Stderr, report.StatusLine(path, result, err))
	if err != nil {
		return false
	}

	if jsonOut {
		if err := report.WriteJSON(os.Stdout, result); err != nil {
			logger.Error("Failed to write JSON", "error", err)
			return false
		}
	} else if err := report.WriteRanking(os.Stdout, result.Ranking, rankingSize); err != nil {
		logger.Error("Failed to write ranking", "error", err)
		return false
	}

	if chartPath != "" && len(result.Table) > 0 {
		target := chartPath
		if index > 0 {
			target = fmt.Sprintf("%s-%d.png", strings.TrimSuffix(chartPath, ".png"), index+1)
		}
		saved, err := report.SaveChart(target, result.Table)
		if err != nil {
			logger.Error("Failed to save chart", "path", target, "error", err)
			return false
		}
		fmt.Fprintf(os.Stderr, "Graph saved as: %s\n", saved)
	}

	return result.Status != processor.StatusFailed
}
