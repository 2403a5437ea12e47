package fuzzy

// Gated booleans. The gated forms draw first and AND afterwards, so exactly
// one draw happens per call whether or not the condition holds and the
// distribution stays uniform when it does.

// Sometimes is a 50% coin flip.
func (r *Runtime) Sometimes() bool {
	return uniform(r.source(), 2) == 0
}

// SometimesIf returns false when cond is false, otherwise a 50% flip.
func (r *Runtime) SometimesIf(cond bool) bool {
	hit := uniform(r.source(), 2) == 0
	return cond && hit
}

// Maybe is true 60% of the time.
func (r *Runtime) Maybe() bool {
	return uniform(r.source(), 100) < 60
}

func (r *Runtime) MaybeIf(cond bool) bool {
	hit := uniform(r.source(), 100) < 60
	return cond && hit
}

// Probably is true 70% of the time.
func (r *Runtime) Probably() bool {
	return uniform(r.source(), 100) < 70
}

func (r *Runtime) ProbablyIf(cond bool) bool {
	hit := uniform(r.source(), 100) < 70
	return cond && hit
}

// Rarely is true 15% of the time.
func (r *Runtime) Rarely() bool {
	return uniform(r.source(), 100) < 15
}

func (r *Runtime) RarelyIf(cond bool) bool {
	hit := uniform(r.source(), 100) < 15
	return cond && hit
}

func Sometimes() bool { return defaultRuntime.Sometimes() }

func SometimesIf(cond bool) bool { return defaultRuntime.SometimesIf(cond) }

func Maybe() bool { return defaultRuntime.Maybe() }

func MaybeIf(cond bool) bool { return defaultRuntime.MaybeIf(cond) }

func Probably() bool { return defaultRuntime.Probably() }

func ProbablyIf(cond bool) bool { return defaultRuntime.ProbablyIf(cond) }

func Rarely() bool { return defaultRuntime.Rarely() }

func RarelyIf(cond bool) bool { return defaultRuntime.RarelyIf(cond) }
