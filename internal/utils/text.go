package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Punctuation is the ASCII punctuation set.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// a run starting at http or www is dropped up to the next whitespace;
// RE2's \s is ASCII only, so \v, NEL and the Unicode spaces are listed too
var urlPattern = regexp.MustCompile(`(?:http|www)[^\s\v\x{85}\p{Z}]+`)

func CountWords(text string) int {
	words := strings.Fields(text)
	wordCount := len(words)

	return wordCount
}

func StripURLs(text string) string {
	return urlPattern.ReplaceAllString(text, "")
}

// StripPunctuation removes every character of Punctuation from text except
// the ones listed in keep.
func StripPunctuation(text string, keep string) string {
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && strings.ContainsRune(Punctuation, r) && !strings.ContainsRune(keep, r) {
			return -1
		}
		return r
	}, text)
}

func Truncate(s string, maxLength int) string {
	defaultString := "Unknown"

	if strings.ReplaceAll(s, " ", "") == "" {
		return defaultString
	}

	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxLength])
}
