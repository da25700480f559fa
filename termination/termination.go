package termination

import (
	"fmt"
	"time"
)

// Kind tags the variant held by a TerminationFunction.
type Kind int

const (
	// AlwaysTrue never stops a run on its own; it exists to compose with Or
	// for no-op placeholders and with And as an identity element.
	AlwaysTrue Kind = iota
	// MaxIterations stops once a fixed iteration budget is exhausted.
	MaxIterations
	// MaxSeconds stops once a fixed wall-clock budget is exhausted.
	MaxSeconds
	// MinTemperature stops a Simulated Annealing run once the cooling
	// schedule has dropped the temperature to or below a floor.
	MinTemperature
	// MustImprove stops the instant an iteration fails to strictly improve
	// on the best score seen so far.
	MustImprove
	// NoImprove stops once a run has gone a fixed number of iterations
	// without a strict improvement.
	NoImprove
	// And keeps running only while every child keeps running.
	And
	// Or keeps running while any child keeps running.
	Or
)

// TerminationFunction is a tagged variant over the stopping criteria a
// driver polls once per iteration. Construct one with NewAlwaysTrue,
// NewMaxIterations, NewMaxSeconds, NewMinTemperature, NewMustImprove,
// NewNoImprove, NewAnd, or NewOr.
type TerminationFunction struct {
	kind     Kind
	minimize bool

	maxIterations  uint64
	iterationCount uint64

	maxSeconds float64
	start      time.Time

	minTemperature float64
	tempKeepsGoing bool

	hasBest      bool
	bestSeen     float64
	improvedLast bool

	noImproveLimit uint64
	noImproveCount uint64

	children []*TerminationFunction
}

// NewAlwaysTrue constructs a criterion that never asks a run to stop.
func NewAlwaysTrue() *TerminationFunction {
	return &TerminationFunction{kind: AlwaysTrue}
}

// NewMaxIterations constructs a criterion that stops after max iterations.
func NewMaxIterations(max uint64) *TerminationFunction {
	return &TerminationFunction{kind: MaxIterations, maxIterations: max}
}

// NewMaxSeconds constructs a criterion that stops after max seconds of
// wall-clock time have elapsed since Init was last called.
func NewMaxSeconds(max float64) *TerminationFunction {
	return &TerminationFunction{kind: MaxSeconds, maxSeconds: max}
}

// NewMinTemperature constructs a criterion that stops a Simulated Annealing
// run once CheckVariable observes a temperature at or below min.
func NewMinTemperature(min float64) *TerminationFunction {
	return &TerminationFunction{kind: MinTemperature, minTemperature: min}
}

// NewMustImprove constructs a criterion that stops the iteration after any
// CheckNewVariable call that does not strictly improve on the best score
// seen so far.
func NewMustImprove() *TerminationFunction {
	return &TerminationFunction{kind: MustImprove}
}

// NewNoImprove constructs a criterion that stops once maxNoImprove
// consecutive CheckNewVariable calls have failed to strictly improve.
func NewNoImprove(maxNoImprove uint64) *TerminationFunction {
	return &TerminationFunction{kind: NoImprove, noImproveLimit: maxNoImprove}
}

// NewAnd composes children under conjunction: the run keeps going only
// while every child says to keep going. Returns ErrNoChildren if children
// is empty.
func NewAnd(children ...*TerminationFunction) (*TerminationFunction, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: And", ErrNoChildren)
	}
	return &TerminationFunction{kind: And, children: children}, nil
}

// NewOr composes children under disjunction: the run keeps going while any
// child says to keep going. Returns ErrNoChildren if children is empty.
func NewOr(children ...*TerminationFunction) (*TerminationFunction, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: Or", ErrNoChildren)
	}
	return &TerminationFunction{kind: Or, children: children}, nil
}

// Kind reports the variant held by tf.
func (tf *TerminationFunction) Kind() Kind { return tf.kind }

// SetGoal tells the criterion (and, recursively, its children) whether the
// driver is minimizing or maximizing the objective. MustImprove and
// NoImprove compare against this direction; MinTemperature does not use it.
func (tf *TerminationFunction) SetGoal(minimize bool) {
	tf.minimize = minimize
	for _, c := range tf.children {
		c.SetGoal(minimize)
	}
}

// Init resets tf's internal counters ahead of a fresh run, recursing into
// children of a composite criterion.
func (tf *TerminationFunction) Init() {
	tf.iterationCount = 0
	tf.start = time.Now()
	tf.tempKeepsGoing = true
	tf.hasBest = false
	tf.bestSeen = 0
	tf.improvedLast = true
	tf.noImproveCount = 0
	for _, c := range tf.children {
		c.Init()
	}
}

// KeepRunning reports whether another iteration should execute.
func (tf *TerminationFunction) KeepRunning() bool {
	switch tf.kind {
	case AlwaysTrue:
		return true
	case MaxIterations:
		return tf.iterationCount < tf.maxIterations
	case MaxSeconds:
		return time.Since(tf.start).Seconds() < tf.maxSeconds
	case MinTemperature:
		return tf.tempKeepsGoing
	case MustImprove:
		return tf.improvedLast
	case NoImprove:
		return tf.noImproveCount < tf.noImproveLimit
	case And:
		for _, c := range tf.children {
			if !c.KeepRunning() {
				return false
			}
		}
		return true
	case Or:
		for _, c := range tf.children {
			if c.KeepRunning() {
				return true
			}
		}
		return false
	}
	return false
}

// CheckVariable feeds a criterion that depends on a scalar outside the
// objective trace, namely the annealing temperature consumed by
// MinTemperature. Other leaf kinds ignore the call. Unlike CheckNewVariable,
// this is not propagated through And/Or: only Simulated Annealing calls it,
// and only a MinTemperature criterion ever acts on it.
func (tf *TerminationFunction) CheckVariable(v float64) bool {
	if tf.kind == MinTemperature {
		tf.tempKeepsGoing = v > tf.minTemperature
	}
	return tf.KeepRunning()
}

// CheckNewVariable feeds a criterion that tracks the objective trace,
// namely MustImprove and NoImprove. v is compared against the best value
// seen so far according to the minimize direction set by SetGoal. And and
// Or propagate the call to every child.
func (tf *TerminationFunction) CheckNewVariable(v float64) {
	switch tf.kind {
	case MustImprove, NoImprove:
		improved := !tf.hasBest ||
			(tf.minimize && v < tf.bestSeen) ||
			(!tf.minimize && v > tf.bestSeen)
		if !tf.hasBest || improved {
			tf.hasBest = true
			tf.bestSeen = v
		}
		tf.improvedLast = improved
		if improved {
			tf.noImproveCount = 0
		} else {
			tf.noImproveCount++
		}
	case And, Or:
		for _, c := range tf.children {
			c.CheckNewVariable(v)
		}
	}
}

// IterationDone advances counters once an iteration has completed,
// recursing into children of a composite criterion.
func (tf *TerminationFunction) IterationDone() {
	if tf.kind == MaxIterations {
		tf.iterationCount++
	}
	for _, c := range tf.children {
		c.IterationDone()
	}
}
