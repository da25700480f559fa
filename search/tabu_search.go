package search

import (
	"github.com/hashicorp/go-hclog"

	"github.com/milannvidia/lclgo/problem"
	"github.com/milannvidia/lclgo/termination"
)

// TabuSearch enumerates the full neighborhood each step, like
// SteepestDescent, but forbids moving into any state whose hash is still
// present in a short-term memory of recently visited states.
type TabuSearch struct {
	base

	// tabuCap bounds the FIFO of recent hashes; 0 means unbounded. Bounding
	// is a tuning concern only — property P6 (no revisit within the window)
	// holds either way.
	tabuCap int
	tabu    []uint64
	tabuSet map[uint64]int
}

// NewTabuSearch constructs a TabuSearch driver. tabuCap bounds the tabu
// list's FIFO; pass 0 for an unbounded list. Returns ErrConfiguration if p's
// move type is a MultiNeighbor.
func NewTabuSearch(p *problem.Problem, term *termination.TerminationFunction, minimize bool, tabuCap int, logTrace bool, logger hclog.Logger) (*TabuSearch, error) {
	if err := rejectMultiNeighbor(p); err != nil {
		return nil, err
	}
	return &TabuSearch{
		base:    newBase(p, term, minimize, logTrace, logger),
		tabuCap: tabuCap,
		tabuSet: make(map[uint64]int),
	}, nil
}

// Reset restores the bound Problem to the identity permutation and clears
// the tabu list.
func (ts *TabuSearch) Reset() {
	ts.reset()
	ts.tabu = nil
	ts.tabuSet = make(map[uint64]int)
}

// SetProblem rebinds ts to a new Problem, rejecting a MultiNeighbor move
// type.
func (ts *TabuSearch) SetProblem(p *problem.Problem) error {
	if err := rejectMultiNeighbor(p); err != nil {
		return err
	}
	ts.problem = p
	return nil
}

// SetTermination rebinds ts's stopping criterion.
func (ts *TabuSearch) SetTermination(t *termination.TerminationFunction) {
	ts.term = t
}

func (ts *TabuSearch) isTabu(h uint64) bool {
	return ts.tabuSet[h] > 0
}

func (ts *TabuSearch) push(h uint64) {
	ts.tabu = append(ts.tabu, h)
	ts.tabuSet[h]++
	if ts.tabuCap > 0 {
		for len(ts.tabu) > ts.tabuCap {
			oldest := ts.tabu[0]
			ts.tabu = ts.tabu[1:]
			ts.tabuSet[oldest]--
			if ts.tabuSet[oldest] == 0 {
				delete(ts.tabuSet, oldest)
			}
		}
	}
}

// Run executes the tabu-search loop to completion.
func (ts *TabuSearch) Run() Trace {
	p := ts.problem
	p.Lock()
	defer p.Unlock()

	clk := newClock()
	var trace Trace
	var iterations uint64

	current := p.Eval()
	best := current
	p.SetBest()
	ts.push(p.Hash())

	ts.term.SetGoal(ts.minimize)
	ts.term.Init()

	if ts.logTrace {
		trace = append(trace, Record{ElapsedNS: clk.elapsed(), Best: best, Current: current, Iterations: 0})
	}

	for ts.term.KeepRunning() {
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
			if err := p.MoveType().Apply(p.State(), mv); err != nil {
				continue
			}
			h := p.Hash()
			p.MoveType().Apply(p.State(), mv) // un-apply (self-inverse)
			if ts.isTabu(h) {
				continue
			}
			if !haveCandidate || better(ts.minimize, current+delta, current+bestDelta) {
				haveCandidate = true
				bestDelta = delta
				bestMove = mv
			}
		}
		if !haveCandidate {
			ts.logger.Warn("tabu search exhausted non-tabu moves", "iterations", iterations)
			break
		}

		if err := p.DoMove(bestMove, nil); err != nil {
			break
		}
		current += bestDelta
		ts.push(p.Hash())
		iterations++

		if better(ts.minimize, current, best) {
			best = current
			p.SetBest()
			ts.logger.Info("tabu search improved best", "best", best, "iterations", iterations)
			trace = append(trace, Record{ElapsedNS: clk.elapsed(), Best: best, Current: current, Iterations: iterations})
		}

		ts.term.CheckNewVariable(current)
		ts.term.IterationDone()
	}

	trace = append(trace, Record{ElapsedNS: clk.elapsed(), Best: best, Current: current, Iterations: iterations})
	return trace
}
