package fuzzy

import "fmt"

const (
	printTag = "[print] "
	shrugTag = "[shrug] "
)

// pickTag selects the output prefix: [print] at 80%, [shrug] at 20%.
// Kept apart from the formatting so the split is testable on its own.
func pickTag(rng RandomSource) string {
	if uniform(rng, 100) < 80 {
		return printTag
	}
	return shrugTag
}

// SortaPrint writes exactly one formatted line. The line always goes out;
// only the prefix is probabilistic.
func (r *Runtime) SortaPrint(format string, args ...any) {
	fmt.Fprintf(r.writer(), pickTag(r.source())+format+"\n", args...)
}

func SortaPrint(format string, args ...any) { defaultRuntime.SortaPrint(format, args...) }
