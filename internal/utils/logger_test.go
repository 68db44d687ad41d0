package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	cases := []struct {
		level   string
		visible []string
		hidden  []string
	}{
		{"debug", []string{"debug-entry", "info-entry", "warn-entry"}, nil},
		{"info", []string{"info-entry", "warn-entry"}, []string{"debug-entry"}},
		{"WARNING", []string{"warn-entry", "error-entry"}, []string{"debug-entry", "info-entry"}},
		{"bogus", []string{"info-entry"}, []string{"debug-entry"}},
	}

	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, tc.level).With("run", "r1")

			l.Debug("debug-entry")
			l.Info("info-entry")
			l.Warn("warn-entry")
			l.Error("error-entry")

			out := buf.String()
			for _, msg := range tc.visible {
				if !strings.Contains(out, msg) {
					t.Fatalf("level %q: expected %q in output:\n%s", tc.level, msg, out)
				}
			}
			for _, msg := range tc.hidden {
				if strings.Contains(out, msg) {
					t.Fatalf("level %q: %q must be filtered out:\n%s", tc.level, msg, out)
				}
			}
			if !strings.Contains(out, "run=r1") {
				t.Fatalf("With fields missing from output:\n%s", out)
			}
		})
	}
}
