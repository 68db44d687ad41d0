package processor

import (
	"bufio"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/wgomg/wordfreq/internal/utils"
)

var defaultStopWords = []string{
	"the", "not", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by", "that",
	"is", "are", "was", "were", "be", "been", "being", "have", "has", "had", "do", "does", "did",
	"will", "would", "shall", "should", "may", "might", "must", "can", "could", "i", "you", "he",
	"she", "it", "we", "they", "this", "these", "those", "am", "im", "your", "their", "his",
	"her", "its", "our", "from", "up", "down", "out", "about", "into", "over", "again", "as", "me", "so",
	"if", "my",
}

// StopWords is an immutable, case-insensitive word set. The zero value is
// empty and usable.
type StopWords struct {
	set mapset.Set[string]
}

func DefaultStopWords() StopWords {
	return NewStopWords(defaultStopWords...)
}

func NewStopWords(words ...string) StopWords {
	set := mapset.NewThreadUnsafeSetWithSize[string](len(words))
	addStopWords(set, words)
	return StopWords{set: set}
}

// With returns a new set holding s plus words.
func (s StopWords) With(words ...string) StopWords {
	if s.set == nil {
		return NewStopWords(words...)
	}
	set := s.set.Clone()
	addStopWords(set, words)
	return StopWords{set: set}
}

func (s StopWords) Contains(word string) bool {
	return s.set != nil && s.set.Contains(strings.ToLower(word))
}

func (s StopWords) Len() int {
	if s.set == nil {
		return 0
	}
	return s.set.Cardinality()
}

func addStopWords(set mapset.Set[string], words []string) {
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			set.Add(w)
		}
	}
}

// LoadStopWords reads one word per line. Blank lines and lines starting
// with '#' are skipped. Punctuation other than '@' is removed from each
// entry, the same way tokens are cleaned.
func LoadStopWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		if w := strings.TrimSpace(utils.StripPunctuation(line, "@")); w != "" {
			words = append(words, w)
		}
	}
	return words, scan.Err()
}

// FilterStopWords lowercases tokens and drops the ones in sw.
func FilterStopWords(tokens []string, sw StopWords) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.ToLower(t)
		if sw.Contains(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
