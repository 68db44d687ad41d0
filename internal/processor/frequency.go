package processor

import (
	"cmp"
	"slices"
)

// FrequencyTable counts tokens and remembers the order in which each
// distinct token first appeared.
type FrequencyTable struct {
	counts map[string]int
	order  []string
	total  int
}

func CountFrequencies(tokens []string) *FrequencyTable {
	f := &FrequencyTable{counts: make(map[string]int)}

	for _, token := range tokens {
		if _, seen := f.counts[token]; !seen {
			f.order = append(f.order, token)
		}
		f.counts[token] = f.counts[token] + 1
	}
	f.total = len(tokens)

	return f
}

// Len returns the number of distinct tokens.
func (f *FrequencyTable) Len() int {
	return len(f.order)
}

// Total returns the number of tokens counted.
func (f *FrequencyTable) Total() int {
	return f.total
}

// Ranking returns up to n entries ordered by count, highest first. Equal
// counts keep first-appearance order. n <= 0 returns every entry.
func (f *FrequencyTable) Ranking(n int) []WordCount {
	ranking := make([]WordCount, len(f.order))
	for i, word := range f.order {
		ranking[i] = WordCount{Word: word, Count: f.counts[word]}
	}

	slices.SortStableFunc(ranking, cmpWordCount)

	if n > 0 && n < len(ranking) {
		ranking = ranking[:n]
	}
	return ranking
}

// Table projects the first n entries of ranking into chart rows.
func Table(ranking []WordCount, n int) []TableRow {
	n = min(max(n, 0), len(ranking))

	rows := make([]TableRow, n)
	for i, wc := range ranking[:n] {
		rows[i] = TableRow{Word: wc.Word, Frequency: wc.Count}
	}
	return rows
}

func cmpWordCount(a, b WordCount) int {
	return cmp.Compare(b.Count, a.Count)
}
