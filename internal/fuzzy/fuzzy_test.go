package fuzzy

import "testing"

func TestKindaIntRange(t *testing.T) {
	r := New(NewSeededRNG(7))
	for _, base := range []int{-1000, -1, 0, 1, 42, 1 << 30} {
		seen := map[int]bool{}
		for i := 0; i < 1000; i++ {
			v := r.KindaInt(base)
			if v < base-1 || v > base+1 {
				t.Fatalf("KindaInt(%d) = %d, outside base +- 1", base, v)
			}
			seen[v-base] = true
		}
		for _, off := range []int{-1, 0, 1} {
			if !seen[off] {
				t.Fatalf("KindaInt(%d) never produced offset %d in 1000 draws", base, off)
			}
		}
	}
}

func TestFuzzyAssignRange(t *testing.T) {
	r := New(NewSeededRNG(8))
	for i := 0; i < 1000; i++ {
		v := r.FuzzyAssign(10)
		if v < 9 || v > 11 {
			t.Fatalf("FuzzyAssign(10) = %d", v)
		}
	}
}

func TestKindaBinaryDistribution(t *testing.T) {
	const n = 100000
	r := New(NewSeededRNG(42))
	var pos, neg, neutral int
	for i := 0; i < n; i++ {
		switch r.KindaBinary() {
		case 1:
			pos++
		case -1:
			neg++
		case 0:
			neutral++
		default:
			t.Fatal("KindaBinary outside {-1,0,1}")
		}
	}
	// modulo draw, so allow a band rather than exact rates
	checkFreq(t, "pos", pos, n, 0.40)
	checkFreq(t, "neg", neg, n, 0.40)
	checkFreq(t, "neutral", neutral, n, 0.20)
}

func checkFreq(t *testing.T, name string, hits, n int, want float64) {
	t.Helper()
	freq := float64(hits) / float64(n)
	if diff := freq - want; diff > 0.01 || diff < -0.01 {
		t.Fatalf("%s freq=%f not close to %f", name, freq, want)
	}
}

func TestKindaBinaryWeightedBoundary(t *testing.T) {
	r := New(NewSeededRNG(9))
	cases := []struct {
		pos, neg int
		want     int
	}{
		{100, 0, 1},
		{0, 100, -1},
		{0, 0, 0},
	}
	for _, c := range cases {
		for i := 0; i < 1000; i++ {
			if got := r.KindaBinaryWeighted(c.pos, c.neg); got != c.want {
				t.Fatalf("KindaBinaryWeighted(%d,%d) = %d; want %d always", c.pos, c.neg, got, c.want)
			}
		}
	}
}

// Degenerate parameters are accepted as-is; pin down what the arithmetic does.
func TestKindaBinaryWeightedDegenerate(t *testing.T) {
	r := New(NewSeededRNG(10))
	// pos+neg past 100 leaves no room for neutral
	for i := 0; i < 2000; i++ {
		if got := r.KindaBinaryWeighted(80, 60); got == 0 {
			t.Fatal("KindaBinaryWeighted(80,60) produced neutral; thresholds cover the whole range")
		}
	}
	// negative pos makes +1 unreachable
	for i := 0; i < 2000; i++ {
		if got := r.KindaBinaryWeighted(-10, 50); got == 1 {
			t.Fatal("KindaBinaryWeighted(-10,50) produced +1; draw can never be below a negative threshold")
		}
	}
}
