package utils

import "testing"

func TestStripURLs(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"http", "see http://x.com now", "see  now"},
		{"https", "see https://x.com/a?b=c now", "see  now"},
		{"www", "visit www.example.org today", "visit  today"},
		{"bare scheme word is kept", "http is a protocol", "http is a protocol"},
		{"no urls", "plain words only", "plain words only"},
		{"stops at no-break space", "see http://x.com\u00a0kittens", "see \u00a0kittens"},
		{"stops at em space", "see www.x.com\u2003kittens", "see \u2003kittens"},
		{"stops at vertical tab", "see http://x.com\vkittens", "see \vkittens"},
		{"stops at next line", "see http://x.com\u0085kittens", "see \u0085kittens"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripURLs(tc.in); got != tc.want {
				t.Fatalf("StripURLs(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestStripPunctuationKeepsRequested(t *testing.T) {
	got := StripPunctuation(`@user #tag it's "quoted", state-of-the-art! café`, "@")
	want := "@user tag its quoted stateoftheart café"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStripPunctuationAll(t *testing.T) {
	if got := StripPunctuation(Punctuation, ""); got != "" {
		t.Fatalf("expected every punctuation character removed, got %q", got)
	}
	if got := StripPunctuation(Punctuation, "@"); got != "@" {
		t.Fatalf("expected only @ to survive, got %q", got)
	}
}

func TestCountWords(t *testing.T) {
	if got := CountWords("  one two\tthree\nfour "); got != 4 {
		t.Fatalf("CountWords = %d, want 4", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("   ", 5); got != "Unknown" {
		t.Fatalf("blank input: got %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("short input: got %q", got)
	}
	if got := Truncate("naïveté", 4); got != "naïv" {
		t.Fatalf("rune-aware truncation: got %q", got)
	}
}

func TestSeenSet(t *testing.T) {
	s := NewSeenSet()

	if !s.Add("a") || !s.Add("b") {
		t.Fatalf("first Add of a key must report true")
	}
	if s.Add("a") {
		t.Fatalf("second Add of a key must report false")
	}
	if s.Size() != 2 {
		t.Fatalf("Size = %d, want 2", s.Size())
	}
	if rate := s.HitRate(); rate < 0.33 || rate > 0.34 {
		t.Fatalf("HitRate = %f, want 1/3", rate)
	}
	if NewSeenSet().HitRate() != 0 {
		t.Fatalf("empty set must have zero hit rate")
	}
}
