package move

import (
	"fmt"
	"math/rand"
	"time"

	multierror "github.com/hashicorp/go-multierror"
)

// Kind tags the variant held by a MoveType.
type Kind int

const (
	// Reverse reverses the closed subrange state[i..=j].
	Reverse Kind = iota
	// Swap exchanges state[i] and state[j]. Legal over the full range [0,N).
	Swap
	// Tsp is action-identical to Swap but excludes position 0 (the tour
	// anchor) from its legal index range.
	Tsp
	// MultiNeighbor composes several non-MultiNeighbor move types behind a
	// weighted selector.
	MultiNeighbor
)

// weightEpsilon bounds how far MultiNeighbor weights may drift from summing
// to 1 before construction is rejected.
const weightEpsilon = 1e-9

// MoveType is a tagged variant over the neighborhood structures a driver can
// propose moves from. The zero value is not usable; construct one with
// NewSwap, NewReverse, NewTsp, or NewMultiNeighbor.
type MoveType struct {
	kind     Kind
	size     int
	rng      *rand.Rand
	children []*MoveType
	weights  []float64
}

func newRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSwap constructs a Swap move type over positions [0,size). seed may be
// nil, in which case the source is seeded from the wall clock.
func NewSwap(size int, seed *int64) *MoveType {
	return &MoveType{kind: Swap, size: size, rng: newRand(seed)}
}

// NewReverse constructs a Reverse move type over positions [0,size).
func NewReverse(size int, seed *int64) *MoveType {
	return &MoveType{kind: Reverse, size: size, rng: newRand(seed)}
}

// NewTsp constructs a Tsp move type over positions [1,size), excluding the
// tour anchor at position 0.
func NewTsp(size int, seed *int64) *MoveType {
	return &MoveType{kind: Tsp, size: size, rng: newRand(seed)}
}

// NewMultiNeighbor composes children into a weighted MultiNeighbor move
// type. A nil weights slice defaults to a uniform distribution. Nested
// MultiNeighbor children, a mismatched weight count, an empty children
// slice, and weights that don't sum to 1 within 1e-9 are all configuration
// errors, aggregated so every problem is reported at once.
func NewMultiNeighbor(children []*MoveType, weights []float64) (*MoveType, error) {
	var errs *multierror.Error

	if len(children) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("move: MultiNeighbor requires at least one child move type"))
	}
	for i, c := range children {
		if c != nil && c.kind == MultiNeighbor {
			errs = multierror.Append(errs, fmt.Errorf("move: MultiNeighbor child %d is itself a MultiNeighbor (nesting is not allowed)", i))
		}
	}

	if weights == nil {
		if len(children) > 0 {
			weights = make([]float64, len(children))
			for i := range weights {
				weights[i] = 1.0 / float64(len(children))
			}
		}
	} else {
		if len(weights) != len(children) {
			errs = multierror.Append(errs, fmt.Errorf("move: %d weights given for %d children", len(weights), len(children)))
		}
		sum := 0.0
		for _, w := range weights {
			sum += w
		}
		if diff := sum - 1.0; diff > weightEpsilon || diff < -weightEpsilon {
			errs = multierror.Append(errs, fmt.Errorf("move: MultiNeighbor weights sum to %v, want 1 (+/- %v)", sum, weightEpsilon))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	rngSeed := time.Now().UnixNano()
	return &MoveType{
		kind:     MultiNeighbor,
		rng:      rand.New(rand.NewSource(rngSeed)),
		children: children,
		weights:  weights,
	}, nil
}

// Kind reports the variant held by mt.
func (mt *MoveType) Kind() Kind { return mt.kind }

// Size reports the length of the state vector this move type operates over.
// It is zero for a MultiNeighbor; query the children instead.
func (mt *MoveType) Size() int { return mt.size }

// Children returns the constituent move types of a MultiNeighbor, or nil.
func (mt *MoveType) Children() []*MoveType { return mt.children }

// ChildCount returns the number of selectable neighborhoods: 1 for a leaf
// move type, or the number of children for a MultiNeighbor.
func (mt *MoveType) ChildCount() int {
	if mt.kind == MultiNeighbor {
		return len(mt.children)
	}
	return 1
}

// SetSeed reseeds the move type's random source, and recursively reseeds
// every child of a MultiNeighbor so move proposals stay reproducible.
func (mt *MoveType) SetSeed(seed int64) {
	mt.rng.Seed(seed)
	for i, c := range mt.children {
		c.SetSeed(seed + int64(i) + 1)
	}
}

func (mt *MoveType) legalRange() (lo, hi int) {
	if mt.kind == Tsp {
		return 1, mt.size
	}
	return 0, mt.size
}

func canon(i, j int) (int, int) {
	if i > j {
		return j, i
	}
	return i, j
}

// RandomMove draws a uniformly random legal move. Reverse and Swap draw both
// indices from [0,N); Tsp draws both from [1,N), excluding the tour anchor.
// Draws with i == j are rejected and redrawn. Returns ErrInvalidOperation on
// a MultiNeighbor; use RandomMoveMulti instead.
func (mt *MoveType) RandomMove() (i, j int, err error) {
	if mt.kind == MultiNeighbor {
		return 0, 0, ErrInvalidOperation
	}
	lo, hi := mt.legalRange()
	a := lo + mt.rng.Intn(hi-lo)
	b := lo + mt.rng.Intn(hi-lo)
	for a == b {
		b = lo + mt.rng.Intn(hi-lo)
	}
	a, b = canon(a, b)
	return a, b, nil
}

// AllMoves enumerates every legal move in lexicographic order. Returns
// ErrInvalidOperation on a MultiNeighbor; use AllMovesSelect instead.
func (mt *MoveType) AllMoves() ([][2]int, error) {
	if mt.kind == MultiNeighbor {
		return nil, ErrInvalidOperation
	}
	lo, hi := mt.legalRange()
	moves := make([][2]int, 0, (hi-lo)*(hi-lo-1)/2)
	for i := lo; i < hi; i++ {
		for j := i + 1; j < hi; j++ {
			moves = append(moves, [2]int{i, j})
		}
	}
	return moves, nil
}

// Apply mutates state in place according to mt's semantics: Swap and Tsp
// exchange state[i] and state[j]; Reverse reverses the closed range
// state[i..=j]. Returns ErrInvalidOperation on a MultiNeighbor.
func (mt *MoveType) Apply(state []int, mv [2]int) error {
	switch mt.kind {
	case Swap, Tsp:
		state[mv[0]], state[mv[1]] = state[mv[1]], state[mv[0]]
	case Reverse:
		i, j := mv[0], mv[1]
		for i < j {
			state[i], state[j] = state[j], state[i]
			i++
			j--
		}
	default:
		return ErrInvalidOperation
	}
	return nil
}

// TaggedMove pairs a move with the index of the child neighborhood it was
// drawn from (always 0 for a leaf move type).
type TaggedMove struct {
	Child int
	Move  [2]int
}

// RandomMoveMulti selects a child by weighted random draw (weights sum to 1
// within 1e-9 by construction) and draws a random move from it. For a leaf
// move type it behaves like RandomMove tagged with child 0.
func (mt *MoveType) RandomMoveMulti() (TaggedMove, error) {
	if mt.kind != MultiNeighbor {
		i, j, err := mt.RandomMove()
		return TaggedMove{Child: 0, Move: [2]int{i, j}}, err
	}
	r := mt.rng.Float64()
	cum := 0.0
	for idx, w := range mt.weights {
		cum += w
		if r < cum || idx == len(mt.weights)-1 {
			i, j, err := mt.children[idx].RandomMove()
			return TaggedMove{Child: idx, Move: [2]int{i, j}}, err
		}
	}
	// unreachable given weights sum to ~1, kept for completeness.
	last := len(mt.children) - 1
	i, j, err := mt.children[last].RandomMove()
	return TaggedMove{Child: last, Move: [2]int{i, j}}, err
}

// AllMovesSelect enumerates every move of the k-th child neighborhood,
// tagged with k. For a leaf move type, k must be 0 and the result is
// AllMoves tagged with child 0. Returns ErrNotMultiNeighbor if k is out of
// range.
func (mt *MoveType) AllMovesSelect(k int) ([]TaggedMove, error) {
	var src *MoveType
	if mt.kind == MultiNeighbor {
		if k < 0 || k >= len(mt.children) {
			return nil, ErrNotMultiNeighbor
		}
		src = mt.children[k]
	} else {
		if k != 0 {
			return nil, ErrNotMultiNeighbor
		}
		src = mt
	}
	moves, err := src.AllMoves()
	if err != nil {
		return nil, err
	}
	tagged := make([]TaggedMove, len(moves))
	for i, m := range moves {
		tagged[i] = TaggedMove{Child: k, Move: m}
	}
	return tagged, nil
}
