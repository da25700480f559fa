package search

import (
	"math"
	"math/rand"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/milannvidia/lclgo/cooling"
	"github.com/milannvidia/lclgo/problem"
	"github.com/milannvidia/lclgo/termination"
)

// SimulatedAnnealing accepts strictly improving moves unconditionally and
// worsening moves with probability exp(-|delta|/temp), cooling the
// temperature according to a CoolingFunction after a batch of inner steps
// decided by an IterationsTemperature.
type SimulatedAnnealing struct {
	base

	startTemp float64
	cool      *cooling.CoolingFunction
	iterTemp  *cooling.IterationsTemperature

	// acceptRng drives the uphill-acceptance draw only. It is kept separate
	// from the bound MoveType's own PRNG so reseeding a problem never
	// perturbs acceptance decisions (and vice versa).
	acceptRng *rand.Rand
}

// NewSimulatedAnnealing constructs a SimulatedAnnealing driver. acceptSeed
// seeds the acceptance PRNG; a nil acceptSeed seeds it from the wall clock.
// Returns ErrConfiguration if p's move type is a MultiNeighbor.
func NewSimulatedAnnealing(
	p *problem.Problem,
	term *termination.TerminationFunction,
	startTemp float64,
	cool *cooling.CoolingFunction,
	iterTemp *cooling.IterationsTemperature,
	minimize bool,
	acceptSeed *int64,
	logTrace bool,
	logger hclog.Logger,
) (*SimulatedAnnealing, error) {
	if err := rejectMultiNeighbor(p); err != nil {
		return nil, err
	}
	seed := time.Now().UnixNano()
	if acceptSeed != nil {
		seed = *acceptSeed
	}
	return &SimulatedAnnealing{
		base:      newBase(p, term, minimize, logTrace, logger),
		startTemp: startTemp,
		cool:      cool,
		iterTemp:  iterTemp,
		acceptRng: rand.New(rand.NewSource(seed)),
	}, nil
}

// Reset restores the bound Problem to the identity permutation.
func (sa *SimulatedAnnealing) Reset() { sa.reset() }

// SetProblem rebinds sa to a new Problem, rejecting a MultiNeighbor move
// type.
func (sa *SimulatedAnnealing) SetProblem(p *problem.Problem) error {
	if err := rejectMultiNeighbor(p); err != nil {
		return err
	}
	sa.problem = p
	return nil
}

// SetTermination rebinds sa's stopping criterion.
func (sa *SimulatedAnnealing) SetTermination(t *termination.TerminationFunction) {
	sa.term = t
}

func (sa *SimulatedAnnealing) accepts(delta, temp float64) bool {
	if sa.minimize {
		if delta <= 0 {
			return true
		}
	} else if delta >= 0 {
		return true
	}
	p := math.Exp(-math.Abs(delta) / temp)
	return sa.acceptRng.Float64() < p
}

// Run executes the simulated-annealing loop to completion.
func (sa *SimulatedAnnealing) Run() Trace {
	p := sa.problem
	p.Lock()
	defer p.Unlock()

	clk := newClock()
	var trace Trace
	var iterations uint64

	current := p.Eval()
	best := current
	p.SetBest()

	sa.term.SetGoal(sa.minimize)
	sa.term.Init()

	if sa.logTrace {
		trace = append(trace, Record{ElapsedNS: clk.elapsed(), Best: best, Current: current, Iterations: 0})
	}

	temp := sa.startTemp
	for sa.term.KeepRunning() {
		inner := sa.iterTemp.IterationsAt(temp)
		for n := uint64(0); n < inner; n++ {
			i, j, err := p.GetMove()
			if err != nil {
				continue
			}
			mv := [2]int{i, j}
			delta, err := p.DeltaEval(mv, nil)
			if err != nil {
				continue
			}

			uphill := !((sa.minimize && delta <= 0) || (!sa.minimize && delta >= 0))
			if !sa.accepts(delta, temp) {
				iterations++
				sa.term.IterationDone()
				continue
			}

			if err := p.DoMove(mv, nil); err != nil {
				iterations++
				sa.term.IterationDone()
				continue
			}
			current += delta
			iterations++

			if better(sa.minimize, current, best) {
				best = current
				p.SetBest()
				sa.logger.Info("simulated annealing improved best", "best", best, "temp", temp, "iterations", iterations)
				trace = append(trace, Record{ElapsedNS: clk.elapsed(), Best: best, Current: current, Iterations: iterations})
			} else if uphill {
				sa.logger.Debug("simulated annealing accepted uphill move", "current", current, "temp", temp, "iterations", iterations)
				trace = append(trace, Record{ElapsedNS: clk.elapsed(), Best: best, Current: current, Iterations: iterations})
			}

			sa.term.CheckNewVariable(current)
			sa.term.IterationDone()
		}

		temp = sa.cool.Next(temp)
		if !sa.term.CheckVariable(temp) {
			break
		}
	}

	trace = append(trace, Record{ElapsedNS: clk.elapsed(), Best: best, Current: current, Iterations: iterations})
	return trace
}
