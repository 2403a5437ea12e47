package fuzzy

import "math"

// Base constants for the ish constructs.
const (
	ishVariance  = 2.0
	ishTolerance = 2.0
)

// IshValue perturbs v by a uniform fuzz in [-2.0, 2.0).
func (r *Runtime) IshValue(v float64) float64 {
	fuzz := unitFloat(r.source())*2*ishVariance - ishVariance
	return v + fuzz
}

// IshEqual reports whether a and b land within the ish tolerance of each
// other. Deterministic; consumes no draw.
func IshEqual(a, b float64) bool {
	return math.Abs(a-b) <= ishTolerance
}

func IshValue(v float64) float64 { return defaultRuntime.IshValue(v) }
