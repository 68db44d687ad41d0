package processor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tweets.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func assertTokens(t *testing.T, want, got []string) {
	t.Helper()
	if strings.Join(want, "|") != strings.Join(got, "|") {
		t.Fatalf("tokens mismatch: want=%q got=%q", want, got)
	}
}

func assertRanking(t *testing.T, want, got []WordCount) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("size mismatch: want=%v got=%v", want, got)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("entry %d mismatch: want=%v got=%v (full: %v)", i, want[i], got[i], got)
		}
	}
}
