package fuzzy

// KindaInt returns base plus small random noise: -1, 0 or +1, each 1/3.
func (r *Runtime) KindaInt(base int) int {
	return base + uniform(r.source(), 3) - 1
}

// FuzzyAssign applies the same +-1 noise under its assignment name, so a
// fuzzy declaration and a fuzzy reassignment read differently in generated
// code while sampling identically.
func (r *Runtime) FuzzyAssign(value int) int {
	return value + uniform(r.source(), 3) - 1
}

// KindaBinary returns +1 (40%), -1 (40%) or 0 (20%).
func (r *Runtime) KindaBinary() int {
	v := uniform(r.source(), 100)
	if v < 40 {
		return 1
	}
	if v < 80 {
		return -1
	}
	return 0
}

// KindaBinaryWeighted returns +1/-1/0 under caller-supplied percentages.
// pos and neg are raw thresholds out of 100 and are not validated; a pair
// summing past 100 starves the neutral outcome and a negative pos makes +1
// unreachable. Degenerate inputs produce whatever the arithmetic says.
func (r *Runtime) KindaBinaryWeighted(pos, neg int) int {
	v := uniform(r.source(), 100)
	if v < pos {
		return 1
	}
	if v < pos+neg {
		return -1
	}
	return 0
}

// Package-level forms, bound to the shared runtime. These are the symbols
// emitted code links against.

func KindaInt(base int) int { return defaultRuntime.KindaInt(base) }

func FuzzyAssign(value int) int { return defaultRuntime.FuzzyAssign(value) }

func KindaBinary() int { return defaultRuntime.KindaBinary() }

func KindaBinaryWeighted(pos, neg int) int { return defaultRuntime.KindaBinaryWeighted(pos, neg) }
