package problem

import (
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/milannvidia/lclgo/eval"
	"github.com/milannvidia/lclgo/move"
)

// ErrSizeMismatch is a configuration error: the move type and evaluation
// bound into a Problem disagree on the length of the state vector.
var ErrSizeMismatch = fmt.Errorf("problem: move type size does not match evaluation length")

// Problem is the "array problem" binding of one MoveType and one Evaluation
// over a mutable state vector. It is shared between the host facade and
// whichever driver currently owns it; a driver acquires the embedded mutex
// for the full duration of a run.
type Problem struct {
	sync.Mutex

	state        []int
	bestSolution []int

	moveType   *move.MoveType
	evaluation *eval.Evaluation
}

func identity(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func moveTypeSizesMatch(mt *move.MoveType, n int) bool {
	if mt.Kind() != move.MultiNeighbor {
		return mt.Size() == n
	}
	for _, c := range mt.Children() {
		if c.Size() != n {
			return false
		}
	}
	return true
}

// NewArrayProblem binds mt and ev over a fresh identity-permutation state of
// length ev.Length(). Returns ErrSizeMismatch if mt's size (or, for a
// MultiNeighbor, any child's size) differs from ev.Length().
func NewArrayProblem(mt *move.MoveType, ev *eval.Evaluation) (*Problem, error) {
	n := ev.Length()
	if !moveTypeSizesMatch(mt, n) {
		return nil, fmt.Errorf("%w: move type size, evaluation length %d", ErrSizeMismatch, n)
	}
	return &Problem{
		state:        identity(n),
		bestSolution: identity(n),
		moveType:     mt,
		evaluation:   ev,
	}, nil
}

// MoveType returns the move type bound to p.
func (p *Problem) MoveType() *move.MoveType { return p.moveType }

// Evaluation returns the evaluation bound to p.
func (p *Problem) Evaluation() *eval.Evaluation { return p.evaluation }

// State returns the live state vector. Callers must not retain it past the
// current driver's exclusive hold on p.
func (p *Problem) State() []int { return p.state }

// BestSolution returns a copy of the best state observed so far.
func (p *Problem) BestSolution() []int {
	out := make([]int, len(p.bestSolution))
	copy(out, p.bestSolution)
	return out
}

// GetMove draws a random legal move from the bound move type.
func (p *Problem) GetMove() (i, j int, err error) {
	return p.moveType.RandomMove()
}

// GetAllMoves enumerates every legal move of the bound move type.
func (p *Problem) GetAllMoves() ([][2]int, error) {
	return p.moveType.AllMoves()
}

// effectiveMoveType returns override if non-nil, else the problem's own
// move type. VNS uses this to score and apply moves under whichever child
// neighborhood it is currently exploring.
func (p *Problem) effectiveMoveType(override *move.MoveType) *move.MoveType {
	if override != nil {
		return override
	}
	return p.moveType
}

// DoMove applies mv to the live state, using override's semantics instead of
// the problem's own move type when override is non-nil.
func (p *Problem) DoMove(mv [2]int, override *move.MoveType) error {
	return p.effectiveMoveType(override).Apply(p.state, mv)
}

// DeltaEval scores the effect of mv without mutating the live state,
// evaluated under override's semantics when override is non-nil.
func (p *Problem) DeltaEval(mv [2]int, override *move.MoveType) (float64, error) {
	return p.evaluation.DeltaEval(mv, p.effectiveMoveType(override), p.state)
}

// Eval fully re-scores the live state.
func (p *Problem) Eval() float64 {
	return p.evaluation.Eval(p.state)
}

// Reset restores both the live state and the best-known state to the
// identity permutation [0,N).
func (p *Problem) Reset() {
	p.state = identity(len(p.state))
	p.bestSolution = identity(len(p.bestSolution))
}

// SetBest copies the live state into the best-known state.
func (p *Problem) SetBest() {
	copy(p.bestSolution, p.state)
}

// Hash returns a stable content hash of the live state, used by Tabu Search
// for tabu-list membership testing. It is a pure function of state, so it is
// deterministic across runs given the same state contents.
func (p *Problem) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)
	for _, v := range p.state {
		u := uint64(v)
		for k := 0; k < 8; k++ {
			buf[k] = byte(u >> (8 * k))
		}
		h.Write(buf)
	}
	return h.Sum64()
}

// SetSeed reseeds the bound move type's random source.
func (p *Problem) SetSeed(seed int64) {
	p.moveType.SetSeed(seed)
}
