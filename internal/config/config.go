package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// Strategy selects which cells feed the corpus.
type Strategy string

const (
	SingleColumn Strategy = "single-column"
	AllColumns   Strategy = "all-columns"
)

// MissingColumnPolicy decides what happens when the text column is absent.
type MissingColumnPolicy string

const (
	MissingColumnFail     MissingColumnPolicy = "fail"
	MissingColumnFallback MissingColumnPolicy = "fallback"
)

// NullPolicy decides how null cells enter the corpus.
type NullPolicy string

const (
	NullDrop    NullPolicy = "drop"
	NullLiteral NullPolicy = "literal"
)

// Encodings the loader knows how to try, in the order pandas users expect.
var KnownEncodings = []string{"utf-8", "windows-1252", "iso-8859-1", "macintosh"}

type AppConfig struct {
	Env      Environment
	LogLevel string
}

type AnalyzerConfig struct {
	Strategy       Strategy
	TextColumn     string
	MissingColumn  MissingColumnPolicy
	Encodings      []string
	Delimiter      rune
	TableSize      int
	RankingSize    int
	Nulls          NullPolicy
	StopWordsFile  string
	ExtraStopWords []string
}

type Config struct {
	App      AppConfig
	Analyzer AnalyzerConfig
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	env := parseEnvironment(appEnv)

	logLevel := getLogLevel(env)

	delimiter, err := parseDelimiter(getEnv("ANALYZER_DELIMITER", ","))
	if err != nil {
		return nil, err
	}

	return &Config{
		App: AppConfig{
			Env:      env,
			LogLevel: logLevel,
		},
		Analyzer: AnalyzerConfig{
			Strategy:       Strategy(strings.ToLower(getEnv("ANALYZER_STRATEGY", string(AllColumns)))),
			TextColumn:     getEnv("ANALYZER_TEXT_COLUMN", "Tweet"),
			MissingColumn:  MissingColumnPolicy(strings.ToLower(getEnv("ANALYZER_MISSING_COLUMN", string(MissingColumnFail)))),
			Encodings:      getEnvList("ANALYZER_ENCODINGS", KnownEncodings),
			Delimiter:      delimiter,
			TableSize:      getEnvInt("ANALYZER_TABLE_SIZE", 20),
			RankingSize:    getEnvInt("ANALYZER_RANKING_SIZE", 100),
			Nulls:          NullPolicy(strings.ToLower(getEnv("ANALYZER_NULL_POLICY", string(NullDrop)))),
			StopWordsFile:  getEnv("ANALYZER_STOPWORDS_FILE", ""),
			ExtraStopWords: getEnvList("ANALYZER_EXTRA_STOPWORDS", nil),
		},
	}, nil
}

// Default returns the analyzer settings without reading the environment.
func Default() AnalyzerConfig {
	return AnalyzerConfig{
		Strategy:      AllColumns,
		TextColumn:    "Tweet",
		MissingColumn: MissingColumnFail,
		Encodings:     append([]string(nil), KnownEncodings...),
		Delimiter:     ',',
		TableSize:     20,
		RankingSize:   100,
		Nulls:         NullDrop,
	}
}

func (c *Config) Validate() error {
	return c.Analyzer.Validate()
}

func (c *AnalyzerConfig) Validate() error {
	switch c.Strategy {
	case SingleColumn, AllColumns:
	default:
		return fmt.Errorf("ANALYZER_STRATEGY must be %q or %q, got %q", SingleColumn, AllColumns, c.Strategy)
	}

	switch c.MissingColumn {
	case MissingColumnFail, MissingColumnFallback:
	default:
		return fmt.Errorf("ANALYZER_MISSING_COLUMN must be %q or %q, got %q",
			MissingColumnFail, MissingColumnFallback, c.MissingColumn)
	}

	switch c.Nulls {
	case NullDrop, NullLiteral:
	default:
		return fmt.Errorf("ANALYZER_NULL_POLICY must be %q or %q, got %q", NullDrop, NullLiteral, c.Nulls)
	}

	if c.TextColumn == "" {
		return fmt.Errorf("ANALYZER_TEXT_COLUMN is required")
	}

	if len(c.Encodings) == 0 {
		return fmt.Errorf("ANALYZER_ENCODINGS must list at least one encoding")
	}
	for _, enc := range c.Encodings {
		if _, ok := CanonicalEncoding(enc); !ok {
			return fmt.Errorf("unknown encoding %q, supported: %s", enc, strings.Join(KnownEncodings, ", "))
		}
	}

	if c.Delimiter == 0 || c.Delimiter == '\n' || c.Delimiter == '\r' || c.Delimiter == '"' || c.Delimiter == utf8.RuneError {
		return fmt.Errorf("invalid delimiter %q", c.Delimiter)
	}

	if c.TableSize <= 0 || c.RankingSize <= 0 {
		return fmt.Errorf("ANALYZER_TABLE_SIZE and ANALYZER_RANKING_SIZE must be positive")
	}
	if c.TableSize > c.RankingSize {
		return fmt.Errorf("ANALYZER_TABLE_SIZE (%d) cannot exceed ANALYZER_RANKING_SIZE (%d)", c.TableSize, c.RankingSize)
	}

	return nil
}

var encodingAliases = map[string]string{
	"utf-8":        "utf-8",
	"utf8":         "utf-8",
	"windows-1252": "windows-1252",
	"cp1252":       "windows-1252",
	"iso-8859-1":   "iso-8859-1",
	"iso8859-1":    "iso-8859-1",
	"latin-1":      "iso-8859-1",
	"latin1":       "iso-8859-1",
	"macintosh":    "macintosh",
	"macroman":     "macintosh",
	"mac-roman":    "macintosh",
}

// CanonicalEncoding maps an encoding name or alias (cp1252, latin-1,
// macroman, ...) to the name used by the loader.
func CanonicalEncoding(name string) (string, bool) {
	canonical, ok := encodingAliases[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func parseDelimiter(s string) (rune, error) {
	if s == `\t` || s == "tab" {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("ANALYZER_DELIMITER must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return append([]string(nil), defaultValue...)
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, strings.ToLower(item))
		}
	}
	return items
}
