// Package simulate estimates the observed behavior of fuzzy constructs by
// repeated trials, for the test harness and the service facade.
package simulate

import (
	"errors"

	"github.com/montanaflynn/stats"
)

var (
	ErrTrials    = errors.New("trials must be >= 1")
	ErrBudget    = errors.New("budget must be >= 1")
	ErrGoal      = errors.New("unknown simulation goal")
	ErrNeverTrue = errors.New("construct never returned true within the trial cap")
)

// TrialGoal selects what the simulation measures per trial.
type TrialGoal string

const (
	// Calls until the construct first returns true.
	GoalFirstTrue TrialGoal = "first_true"
	// Number of trues within a fixed budget of calls.
	GoalFixedBudget TrialGoal = "fixed_budget"
)

// A first_true trial aborts past this many calls; a construct gated on a
// false condition would otherwise spin forever.
const trialCap = 1 << 20

// Summary describes the integer samples collected over all trials.
type Summary struct {
	Mean    float64 `json:"mean"`
	Var     float64 `json:"var"`
	StdDev  float64 `json:"stddev"`
	P50     float64 `json:"p50"`
	P90     float64 `json:"p90"`
	P99     float64 `json:"p99"`
	Samples []int   `json:"-"`
}

// TernarySplit holds observed frequencies of a three-valued construct.
type TernarySplit struct {
	Pos     float64 `json:"pos"`
	Neg     float64 `json:"neg"`
	Neutral float64 `json:"neutral"`
}

// TrueRate estimates P(f() == true) over the given number of trials.
func TrueRate(trials int, f func() bool) (float64, error) {
	if trials < 1 {
		return 0, ErrTrials
	}
	hits := 0
	for i := 0; i < trials; i++ {
		if f() {
			hits++
		}
	}
	return float64(hits) / float64(trials), nil
}

// EstimateTernary estimates the +1/-1/0 frequencies of f.
func EstimateTernary(trials int, f func() int) (TernarySplit, error) {
	if trials < 1 {
		return TernarySplit{}, ErrTrials
	}
	var pos, neg, neutral int
	for i := 0; i < trials; i++ {
		switch f() {
		case 1:
			pos++
		case -1:
			neg++
		default:
			neutral++
		}
	}
	n := float64(trials)
	return TernarySplit{
		Pos:     float64(pos) / n,
		Neg:     float64(neg) / n,
		Neutral: float64(neutral) / n,
	}, nil
}

// Run repeats trials of f and summarizes the per-trial metric selected by
// goal. budget is only consulted for GoalFixedBudget.
func Run(goal TrialGoal, trials, budget int, f func() bool) (Summary, error) {
	if trials < 1 {
		return Summary{}, ErrTrials
	}
	samples := make([]int, trials)
	for i := 0; i < trials; i++ {
		v, err := runOne(goal, budget, f)
		if err != nil {
			return Summary{}, err
		}
		samples[i] = v
	}
	return summarize(samples)
}

func runOne(goal TrialGoal, budget int, f func() bool) (int, error) {
	switch goal {
	case GoalFirstTrue:
		for calls := 1; calls <= trialCap; calls++ {
			if f() {
				return calls, nil
			}
		}
		return 0, ErrNeverTrue

	case GoalFixedBudget:
		if budget < 1 {
			return 0, ErrBudget
		}
		count := 0
		for i := 0; i < budget; i++ {
			if f() {
				count++
			}
		}
		return count, nil
	}
	return 0, ErrGoal
}

func summarize(xs []int) (Summary, error) {
	data := make(stats.Float64Data, len(xs))
	for i, v := range xs {
		data[i] = float64(v)
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, err
	}
	variance, err := stats.PopulationVariance(data)
	if err != nil {
		return Summary{}, err
	}
	stddev, err := stats.StandardDeviationPopulation(data)
	if err != nil {
		return Summary{}, err
	}
	p50, err := stats.Percentile(data, 50)
	if err != nil {
		return Summary{}, err
	}
	p90, err := stats.Percentile(data, 90)
	if err != nil {
		return Summary{}, err
	}
	p99, err := stats.Percentile(data, 99)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Mean:    mean,
		Var:     variance,
		StdDev:  stddev,
		P50:     p50,
		P90:     p90,
		P99:     p99,
		Samples: xs,
	}, nil
}
