// Package fuzzy is the runtime support library that generated code links
// against: noisy integers, ternary samples, gated probabilistic booleans and
// probabilistic printing, all drawing from one process-wide random source.
package fuzzy

import (
	"io"
	"os"
)

// Runtime binds the constructs to one random source and one output sink.
// Generated code calls the package-level forms, which share a zero Runtime
// over the process-wide source; tests and the server inject a seeded source
// or a buffer instead. Zero fields fall back to the shared defaults.
type Runtime struct {
	RNG RandomSource
	Out io.Writer
}

// New creates a runtime over rng; nil means the shared time-seeded source.
func New(rng RandomSource) *Runtime {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &Runtime{RNG: rng, Out: os.Stdout}
}

func (r *Runtime) source() RandomSource {
	if r.RNG == nil {
		return DefaultRNG()
	}
	return r.RNG
}

func (r *Runtime) writer() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

var defaultRuntime = &Runtime{}
