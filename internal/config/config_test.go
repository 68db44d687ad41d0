package config

import (
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "APP_LOG_LEVEL", "ANALYZER_STRATEGY", "ANALYZER_TEXT_COLUMN",
		"ANALYZER_MISSING_COLUMN", "ANALYZER_ENCODINGS", "ANALYZER_DELIMITER",
		"ANALYZER_TABLE_SIZE", "ANALYZER_RANKING_SIZE", "ANALYZER_NULL_POLICY",
		"ANALYZER_STOPWORDS_FILE", "ANALYZER_EXTRA_STOPWORDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}

	a := cfg.Analyzer
	if cfg.App.Env != Development || cfg.App.LogLevel != "debug" {
		t.Fatalf("unexpected app config: %+v", cfg.App)
	}
	if a.Strategy != AllColumns || a.TextColumn != "Tweet" || a.MissingColumn != MissingColumnFail {
		t.Fatalf("unexpected analyzer config: %+v", a)
	}
	if a.TableSize != 20 || a.RankingSize != 100 || a.Delimiter != ',' || a.Nulls != NullDrop {
		t.Fatalf("unexpected analyzer sizes: %+v", a)
	}
	if strings.Join(a.Encodings, ",") != strings.Join(KnownEncodings, ",") {
		t.Fatalf("encodings = %v, want %v", a.Encodings, KnownEncodings)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "Production")
	t.Setenv("ANALYZER_STRATEGY", "Single-Column")
	t.Setenv("ANALYZER_TEXT_COLUMN", "Body")
	t.Setenv("ANALYZER_ENCODINGS", "cp1252, utf-8")
	t.Setenv("ANALYZER_DELIMITER", `\t`)
	t.Setenv("ANALYZER_TABLE_SIZE", "5")
	t.Setenv("ANALYZER_RANKING_SIZE", "not-a-number")
	t.Setenv("ANALYZER_EXTRA_STOPWORDS", "RT, via ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	a := cfg.Analyzer
	if cfg.App.Env != Production || cfg.App.LogLevel != "info" {
		t.Fatalf("unexpected app config: %+v", cfg.App)
	}
	if a.Strategy != SingleColumn || a.TextColumn != "Body" {
		t.Fatalf("unexpected strategy/column: %q %q", a.Strategy, a.TextColumn)
	}
	if strings.Join(a.Encodings, ",") != "cp1252,utf-8" {
		t.Fatalf("encodings = %v", a.Encodings)
	}
	if a.Delimiter != '\t' {
		t.Fatalf("delimiter = %q", a.Delimiter)
	}
	if a.TableSize != 5 || a.RankingSize != 100 {
		t.Fatalf("sizes = %d/%d", a.TableSize, a.RankingSize)
	}
	if strings.Join(a.ExtraStopWords, ",") != "rt,via" {
		t.Fatalf("extra stop words = %v", a.ExtraStopWords)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadRejectsLongDelimiter(t *testing.T) {
	clearEnv(t)
	t.Setenv("ANALYZER_DELIMITER", ";;")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for multi-character delimiter")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*AnalyzerConfig)
	}{
		{"strategy", func(c *AnalyzerConfig) { c.Strategy = "every-other-column" }},
		{"missing column policy", func(c *AnalyzerConfig) { c.MissingColumn = "ignore" }},
		{"null policy", func(c *AnalyzerConfig) { c.Nulls = "zero" }},
		{"empty column", func(c *AnalyzerConfig) { c.TextColumn = "" }},
		{"no encodings", func(c *AnalyzerConfig) { c.Encodings = nil }},
		{"unknown encoding", func(c *AnalyzerConfig) { c.Encodings = []string{"utf-8", "ebcdic"} }},
		{"quote delimiter", func(c *AnalyzerConfig) { c.Delimiter = '"' }},
		{"zero table", func(c *AnalyzerConfig) { c.TableSize = 0 }},
		{"table larger than ranking", func(c *AnalyzerConfig) { c.TableSize = 50; c.RankingSize = 10 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}

	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default must validate: %v", err)
	}
}

func TestCanonicalEncoding(t *testing.T) {
	cases := map[string]string{
		"UTF8":       "utf-8",
		"cp1252":     "windows-1252",
		" latin-1 ":  "iso-8859-1",
		"ISO-8859-1": "iso-8859-1",
		"MacRoman":   "macintosh",
	}
	for in, want := range cases {
		got, ok := CanonicalEncoding(in)
		if !ok || got != want {
			t.Fatalf("CanonicalEncoding(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := CanonicalEncoding("shift-jis"); ok {
		t.Fatalf("shift-jis must not be supported")
	}
}
