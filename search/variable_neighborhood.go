package search

import (
	"github.com/hashicorp/go-hclog"

	"github.com/milannvidia/lclgo/move"
	"github.com/milannvidia/lclgo/problem"
	"github.com/milannvidia/lclgo/termination"
)

// VariableNeighborhood walks a sequence of neighborhoods indexed by k,
// taking the best move in the current neighborhood when it strictly
// improves, and otherwise advancing to the next neighborhood. A classical
// VND: any improving move resets k back to 0. Works over both a
// MultiNeighbor move type (one neighborhood per child) and a single
// non-composite move type (one neighborhood total, at k=0).
type VariableNeighborhood struct {
	base
}

// NewVariableNeighborhood constructs a VariableNeighborhood driver. Unlike
// the other drivers, it accepts a MultiNeighbor move type.
func NewVariableNeighborhood(p *problem.Problem, term *termination.TerminationFunction, minimize bool, logTrace bool, logger hclog.Logger) *VariableNeighborhood {
	return &VariableNeighborhood{base: newBase(p, term, minimize, logTrace, logger)}
}

// Reset restores the bound Problem to the identity permutation.
func (vns *VariableNeighborhood) Reset() { vns.reset() }

// SetProblem rebinds vns to a new Problem. VariableNeighborhood places no
// restriction on the move type, so this never fails.
func (vns *VariableNeighborhood) SetProblem(p *problem.Problem) error {
	vns.problem = p
	return nil
}

// SetTermination rebinds vns's stopping criterion.
func (vns *VariableNeighborhood) SetTermination(t *termination.TerminationFunction) {
	vns.term = t
}

// neighborhoodAt resolves the k-th child neighborhood of mt. For a
// non-composite mt, only k == 0 resolves, to mt itself.
func neighborhoodAt(mt *move.MoveType, k int) *move.MoveType {
	if mt.Kind() != move.MultiNeighbor {
		if k == 0 {
			return mt
		}
		return nil
	}
	children := mt.Children()
	if k < 0 || k >= len(children) {
		return nil
	}
	return children[k]
}

// Run executes the variable-neighborhood-descent loop to completion.
func (vns *VariableNeighborhood) Run() Trace {
	p := vns.problem
	p.Lock()
	defer p.Unlock()

	clk := newClock()
	var trace Trace
	var iterations uint64

	current := p.Eval()
	best := current
	p.SetBest()

	vns.term.SetGoal(vns.minimize)
	vns.term.Init()

	if vns.logTrace {
		trace = append(trace, Record{ElapsedNS: clk.elapsed(), Best: best, Current: current, Iterations: 0})
	}

	numNeighborhoods := p.MoveType().ChildCount()
	k := 0

	for vns.term.KeepRunning() {
		if k >= numNeighborhoods {
			vns.logger.Warn("variable neighborhood search exhausted all neighborhoods", "iterations", iterations)
			break
		}

		child := neighborhoodAt(p.MoveType(), k)
		if child == nil {
			k++
			continue
		}

		moves, err := child.AllMoves()
		if err != nil || len(moves) == 0 {
			k++
			continue
		}

		haveCandidate := false
		var bestDelta float64
		var bestMove [2]int
		for _, mv := range moves {
			delta, err := p.DeltaEval(mv, child)
			if err != nil {
				continue
			}
			if !haveCandidate || better(vns.minimize, current+delta, current+bestDelta) {
				haveCandidate = true
				bestDelta = delta
				bestMove = mv
			}
		}

		if !haveCandidate || !better(vns.minimize, current+bestDelta, current) {
			k++
			continue
		}

		if err := p.DoMove(bestMove, child); err != nil {
			k++
			continue
		}
		current += bestDelta
		iterations++

		if better(vns.minimize, current, best) {
			best = current
			p.SetBest()
			vns.logger.Info("variable neighborhood search improved best", "best", best, "neighborhood", k, "iterations", iterations)
			trace = append(trace, Record{ElapsedNS: clk.elapsed(), Best: best, Current: current, Iterations: iterations})
		}
		k = 0

		vns.term.CheckNewVariable(current)
		vns.term.IterationDone()
	}

	trace = append(trace, Record{ElapsedNS: clk.elapsed(), Best: best, Current: current, Iterations: iterations})
	return trace
}
