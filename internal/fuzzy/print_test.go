package fuzzy

import (
	"bytes"
	"strings"
	"testing"
)

func TestSortaPrintAlwaysWritesOneLine(t *testing.T) {
	var buf bytes.Buffer
	r := &Runtime{RNG: NewSeededRNG(21), Out: &buf}
	for i := 0; i < 500; i++ {
		buf.Reset()
		r.SortaPrint("x=%d", 5)
		out := buf.String()
		if strings.Count(out, "\n") != 1 {
			t.Fatalf("expected exactly one line, got %q", out)
		}
		if !strings.Contains(out, "x=5") {
			t.Fatalf("formatted content missing: %q", out)
		}
		if !strings.HasPrefix(out, printTag) && !strings.HasPrefix(out, shrugTag) {
			t.Fatalf("unexpected prefix: %q", out)
		}
	}
}

func TestPickTagSplit(t *testing.T) {
	const n = 100000
	rng := NewSeededRNG(22)
	prints := 0
	for i := 0; i < n; i++ {
		if pickTag(rng) == printTag {
			prints++
		}
	}
	checkFreq(t, "print tag", prints, n, 0.80)
}
