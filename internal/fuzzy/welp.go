package fuzzy

import "fmt"

// WelpIn evaluates primary under r and falls back on error. The fallback
// path announces itself on the runtime's output with a [welp] tag; the happy
// path writes nothing.
func WelpIn[T any](r *Runtime, primary func() (T, error), fallback T) T {
	if primary == nil {
		fmt.Fprintf(r.writer(), "[welp] nothing to evaluate, using fallback: %v\n", fallback)
		return fallback
	}
	v, err := primary()
	if err != nil {
		fmt.Fprintf(r.writer(), "[welp] %v, using fallback: %v\n", err, fallback)
		return fallback
	}
	return v
}

// Welp is WelpIn on the shared runtime.
func Welp[T any](primary func() (T, error), fallback T) T {
	return WelpIn(defaultRuntime, primary, fallback)
}
