package eval

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/milannvidia/lclgo/move"
)

// Kind tags the objective variant held by an Evaluation.
type Kind int

const (
	// EmptyBins scores the number of bins opened while walking items in
	// order and bucketing them into fixed-capacity bins.
	EmptyBins Kind = iota
	// EmptySpace scores the summed unused capacity across opened bins.
	EmptySpace
	// EmptySpaceExp scores the summed squared unused capacity.
	EmptySpaceExp
	// Tsp scores the length of the cycle described by the tour.
	Tsp
	// QAP scores Sum_{i<j} d[i][j]*f[pi(i)][pi(j)].
	QAP
)

// ErrNonSquareMatrix is an InvalidInput error: a distance or flow matrix was
// not square, or a QAP distance and flow matrix differ in size.
var ErrNonSquareMatrix = errors.New("eval: matrix is not square")

// ErrNonZeroDiagonal is an InvalidInput error: a TSP distance matrix had a
// non-zero diagonal entry.
var ErrNonZeroDiagonal = errors.New("eval: tsp distance matrix has a non-zero diagonal entry")

// Evaluation is a tagged variant over the objective functions a Problem can
// be scored against. Construct one with NewEmptyBins, NewEmptySpace,
// NewEmptySpaceExp, NewTsp, NewTspAuto, or NewQAP.
type Evaluation struct {
	kind      Kind
	weights   []float64
	maxFill   float64
	distance  *mat.Dense
	flow      *mat.Dense
	symmetric bool
}

// NewEmptyBins constructs an EmptyBins evaluation over the given item
// weights and bin capacity.
func NewEmptyBins(weights []float64, maxFill float64) *Evaluation {
	return &Evaluation{kind: EmptyBins, weights: append([]float64(nil), weights...), maxFill: maxFill}
}

// NewEmptySpace constructs an EmptySpace evaluation.
func NewEmptySpace(weights []float64, maxFill float64) *Evaluation {
	return &Evaluation{kind: EmptySpace, weights: append([]float64(nil), weights...), maxFill: maxFill}
}

// NewEmptySpaceExp constructs an EmptySpaceExp evaluation.
func NewEmptySpaceExp(weights []float64, maxFill float64) *Evaluation {
	return &Evaluation{kind: EmptySpaceExp, weights: append([]float64(nil), weights...), maxFill: maxFill}
}

func checkSquare(m *mat.Dense) error {
	r, c := m.Dims()
	if r != c {
		return fmt.Errorf("%w: %dx%d", ErrNonSquareMatrix, r, c)
	}
	return nil
}

// NewTsp constructs a Tsp evaluation over an explicit symmetric flag. The
// distance matrix must be square with a zero diagonal.
func NewTsp(distance *mat.Dense, symmetric bool) (*Evaluation, error) {
	if err := checkSquare(distance); err != nil {
		return nil, err
	}
	n, _ := distance.Dims()
	for i := 0; i < n; i++ {
		if distance.At(i, i) != 0 {
			return nil, fmt.Errorf("%w: d[%d][%d]=%v", ErrNonZeroDiagonal, i, i, distance.At(i, i))
		}
	}
	return &Evaluation{kind: Tsp, distance: distance, symmetric: symmetric}, nil
}

// NewTspAuto constructs a Tsp evaluation, inferring the symmetric flag by
// checking whether d[i][j] == d[j][i] for every i < j.
func NewTspAuto(distance *mat.Dense) (*Evaluation, error) {
	if err := checkSquare(distance); err != nil {
		return nil, err
	}
	n, _ := distance.Dims()
	symmetric := true
	for i := 0; i < n && symmetric; i++ {
		for j := i + 1; j < n; j++ {
			if distance.At(i, j) != distance.At(j, i) {
				symmetric = false
				break
			}
		}
	}
	return NewTsp(distance, symmetric)
}

// NewQAP constructs a QAP evaluation over a distance and flow matrix, which
// must be square and of equal size.
func NewQAP(distance, flow *mat.Dense) (*Evaluation, error) {
	if err := checkSquare(distance); err != nil {
		return nil, err
	}
	if err := checkSquare(flow); err != nil {
		return nil, err
	}
	dn, _ := distance.Dims()
	fn, _ := flow.Dims()
	if dn != fn {
		return nil, fmt.Errorf("%w: distance is %dx%d, flow is %dx%d", ErrNonSquareMatrix, dn, dn, fn, fn)
	}
	return &Evaluation{kind: QAP, distance: distance, flow: flow}, nil
}

// Kind reports the variant held by e.
func (e *Evaluation) Kind() Kind { return e.kind }

// Symmetric reports whether a Tsp evaluation's distance matrix is symmetric.
func (e *Evaluation) Symmetric() bool { return e.symmetric }

// Length reports N, the size of the state vector this evaluation scores.
func (e *Evaluation) Length() int {
	switch e.kind {
	case EmptyBins, EmptySpace, EmptySpaceExp:
		return len(e.weights)
	case Tsp, QAP:
		n, _ := e.distance.Dims()
		return n
	}
	return 0
}

// Eval fully (re-)scores state.
func (e *Evaluation) Eval(state []int) float64 {
	switch e.kind {
	case EmptyBins, EmptySpace, EmptySpaceExp:
		return e.evalBins(state)
	case Tsp:
		return e.evalTsp(state)
	case QAP:
		return e.evalQAP(state)
	}
	return 0
}

func (e *Evaluation) evalBins(state []int) float64 {
	fill := 0.0
	bins := 1.0
	waste := 0.0
	for _, idx := range state {
		w := e.weights[idx]
		if fill+w > e.maxFill {
			contrib := e.maxFill - fill
			if e.kind == EmptySpaceExp {
				waste += contrib * contrib
			} else {
				waste += contrib
			}
			bins++
			fill = w
		} else {
			fill += w
		}
	}
	contrib := e.maxFill - fill
	if e.kind == EmptySpaceExp {
		waste += contrib * contrib
	} else {
		waste += contrib
	}
	if e.kind == EmptyBins {
		return bins
	}
	return waste
}

func (e *Evaluation) edgeWeight(state []int, edgeIdx int) float64 {
	n := len(state)
	a, b := state[edgeIdx], state[(edgeIdx+1)%n]
	return e.distance.At(a, b)
}

func (e *Evaluation) evalTsp(state []int) float64 {
	n := len(state)
	score := 0.0
	for i := 1; i < n; i++ {
		score += e.distance.At(state[i-1], state[i])
	}
	score += e.distance.At(state[n-1], state[0])
	return score
}

func (e *Evaluation) evalQAP(state []int) float64 {
	n := len(state)
	score := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			score += e.distance.At(i, j) * e.flow.At(state[i], state[j])
		}
	}
	return score
}

func mod(k, n int) int {
	return ((k % n) + n) % n
}

func uniqueEdges(edges ...int) []int {
	seen := make(map[int]bool, len(edges))
	out := make([]int, 0, len(edges))
	for _, e := range edges {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}

func (e *Evaluation) windowedSum(state []int, edges []int) float64 {
	sum := 0.0
	for _, idx := range edges {
		sum += e.edgeWeight(state, idx)
	}
	return sum
}

// DeltaEval scores the effect of applying mv under move type mt, without a
// full re-scan, and restores state to its pre-call value before returning.
func (e *Evaluation) DeltaEval(mv [2]int, mt *move.MoveType, state []int) (float64, error) {
	switch e.kind {
	case EmptyBins, EmptySpace, EmptySpaceExp, QAP:
		return e.deltaByRecompute(mv, mt, state)
	case Tsp:
		return e.deltaTsp(mv, mt, state)
	}
	return 0, fmt.Errorf("eval: unknown evaluation kind %d", e.kind)
}

// deltaByRecompute applies mv, takes a full Eval, reverses mv (Swap,
// Reverse, and Tsp moves are all self-inverse), and returns the difference.
// Used for evaluations with no cheaper incremental structure to exploit
// (bin-packing) or where exploiting that structure would risk an unverified
// closed form (QAP).
func (e *Evaluation) deltaByRecompute(mv [2]int, mt *move.MoveType, state []int) (float64, error) {
	before := e.Eval(state)
	if err := mt.Apply(state, mv); err != nil {
		return 0, err
	}
	after := e.Eval(state)
	if err := mt.Apply(state, mv); err != nil {
		return 0, err
	}
	return after - before, nil
}

func (e *Evaluation) deltaTsp(mv [2]int, mt *move.MoveType, state []int) (float64, error) {
	n := len(state)
	i, j := mv[0], mv[1]

	switch mt.Kind() {
	case move.Swap, move.Tsp:
		edges := uniqueEdges(mod(i-1, n), i, mod(j-1, n), mod(j, n))
		before := e.windowedSum(state, edges)
		if err := mt.Apply(state, mv); err != nil {
			return 0, err
		}
		after := e.windowedSum(state, edges)
		if err := mt.Apply(state, mv); err != nil {
			return 0, err
		}
		return after - before, nil

	case move.Reverse:
		var edges []int
		if e.symmetric {
			edges = uniqueEdges(mod(i-1, n), mod(j, n))
		} else {
			interior := make([]int, 0, j-i+2)
			interior = append(interior, mod(i-1, n))
			for k := i; k < j; k++ {
				interior = append(interior, k)
			}
			interior = append(interior, mod(j, n))
			edges = uniqueEdges(interior...)
		}
		before := e.windowedSum(state, edges)
		if err := mt.Apply(state, mv); err != nil {
			return 0, err
		}
		after := e.windowedSum(state, edges)
		if err := mt.Apply(state, mv); err != nil {
			return 0, err
		}
		return after - before, nil
	}

	return 0, move.ErrInvalidOperation
}
