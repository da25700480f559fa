package search

import (
	"github.com/hashicorp/go-hclog"

	"github.com/milannvidia/lclgo/problem"
	"github.com/milannvidia/lclgo/termination"
)

// SteepestDescent scans the full neighborhood every iteration and moves to
// the single best-scoring neighbor, halting the instant no move would
// strictly improve on the best score seen so far.
type SteepestDescent struct {
	base
}

// NewSteepestDescent constructs a SteepestDescent driver. Returns
// ErrConfiguration if p's move type is a MultiNeighbor.
func NewSteepestDescent(p *problem.Problem, term *termination.TerminationFunction, minimize bool, logTrace bool, logger hclog.Logger) (*SteepestDescent, error) {
	if err := rejectMultiNeighbor(p); err != nil {
		return nil, err
	}
	return &SteepestDescent{base: newBase(p, term, minimize, logTrace, logger)}, nil
}

// Reset restores the bound Problem to the identity permutation.
func (sd *SteepestDescent) Reset() { sd.reset() }

// SetProblem rebinds sd to a new Problem, rejecting a MultiNeighbor move
// type.
func (sd *SteepestDescent) SetProblem(p *problem.Problem) error {
	if err := rejectMultiNeighbor(p); err != nil {
		return err
	}
	sd.problem = p
	return nil
}

// SetTermination rebinds sd's stopping criterion.
func (sd *SteepestDescent) SetTermination(t *termination.TerminationFunction) {
	sd.term = t
}

// Run executes the steepest-descent loop to completion.
func (sd *SteepestDescent) Run() Trace {
	p := sd.problem
	p.Lock()
	defer p.Unlock()

	clk := newClock()
	var trace Trace
	var iterations uint64

	current := p.Eval()
	best := current
	p.SetBest()

	sd.term.SetGoal(sd.minimize)
	sd.term.Init()

	if sd.logTrace {
		trace = append(trace, Record{ElapsedNS: clk.elapsed(), Best: best, Current: current, Iterations: 0})
	}

	for sd.term.KeepRunning() {
		moves, err := p.GetAllMoves()
		if err != nil || len(moves) == 0 {
			break
		}

		haveCandidate := false
		var bestDelta float64
		var bestMove [2]int
		for _, mv := range moves {
			delta, err := p.DeltaEval(mv, nil)
			if err != nil {
				continue
			}
			if !haveCandidate || better(sd.minimize, current+delta, current+bestDelta) {
				haveCandidate = true
				bestDelta = delta
				bestMove = mv
			}
		}
		if !haveCandidate {
			break
		}

		candidate := current + bestDelta
		if !better(sd.minimize, candidate, best) {
			break
		}

		if err := p.DoMove(bestMove, nil); err != nil {
			break
		}
		current = candidate
		best = candidate
		p.SetBest()
		iterations++

		sd.logger.Info("steepest descent improved best", "best", best, "iterations", iterations)
		sd.term.CheckNewVariable(current)
		sd.term.IterationDone()
		trace = append(trace, Record{ElapsedNS: clk.elapsed(), Best: best, Current: current, Iterations: iterations})
	}

	trace = append(trace, Record{ElapsedNS: clk.elapsed(), Best: best, Current: current, Iterations: iterations})
	return trace
}
