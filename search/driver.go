package search

import (
	"github.com/hashicorp/go-hclog"

	"github.com/milannvidia/lclgo/move"
	"github.com/milannvidia/lclgo/problem"
	"github.com/milannvidia/lclgo/termination"
)

// Driver is the common surface of every meta-heuristic: run to completion,
// reset internal state, and swap the bound Problem or TerminationFunction
// between runs.
type Driver interface {
	// Run executes the driver to completion against its bound Problem and
	// TerminationFunction, and returns the resulting Trace. Run never
	// returns an error: a misconfigured driver fails earlier, at
	// SetProblem.
	Run() Trace

	// Reset restores the bound Problem to the identity permutation.
	Reset()

	// SetProblem rebinds the driver to a new Problem. Returns
	// ErrConfiguration if p's move type is unsuitable for this driver
	// (a bare MultiNeighbor for every driver but VariableNeighborhood).
	SetProblem(p *problem.Problem) error

	// SetTermination rebinds the driver's stopping criterion.
	SetTermination(t *termination.TerminationFunction)
}

// base holds the fields shared by every driver implementation.
type base struct {
	problem  *problem.Problem
	term     *termination.TerminationFunction
	minimize bool
	logTrace bool
	logger   hclog.Logger
}

func newBase(p *problem.Problem, term *termination.TerminationFunction, minimize bool, logTrace bool, logger hclog.Logger) base {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return base{problem: p, term: term, minimize: minimize, logTrace: logTrace, logger: logger}
}

func (b *base) reset() {
	b.problem.Reset()
}

// rejectMultiNeighbor enforces the single-neighborhood requirement shared
// by SteepestDescent, SimulatedAnnealing, and TabuSearch.
func rejectMultiNeighbor(p *problem.Problem) error {
	if p.MoveType().Kind() == move.MultiNeighbor {
		return ErrConfiguration
	}
	return nil
}

// better reports whether candidate strictly improves on incumbent, honoring
// the minimize/maximize direction.
func better(minimize bool, candidate, incumbent float64) bool {
	if minimize {
		return candidate < incumbent
	}
	return candidate > incumbent
}

// betterOrEqual reports whether candidate is at least as good as incumbent.
func betterOrEqual(minimize bool, candidate, incumbent float64) bool {
	if minimize {
		return candidate <= incumbent
	}
	return candidate >= incumbent
}
