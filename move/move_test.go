package move_test

import (
	"errors"
	"testing"

	"github.com/milannvidia/lclgo/move"
)

func seed(n int64) *int64 { return &n }

func TestSwapApply(t *testing.T) {
	mt := move.NewSwap(4, seed(0))
	state := []int{0, 1, 2, 3}
	if err := mt.Apply(state, [2]int{1, 3}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := []int{0, 3, 2, 1}
	for i := range want {
		if state[i] != want[i] {
			t.Fatalf("state = %v, want %v", state, want)
		}
	}
}

func TestReverseApply(t *testing.T) {
	mt := move.NewReverse(5, seed(0))
	state := []int{0, 1, 2, 3, 4}
	if err := mt.Apply(state, [2]int{1, 3}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := []int{0, 3, 2, 1, 4}
	for i := range want {
		if state[i] != want[i] {
			t.Fatalf("state = %v, want %v", state, want)
		}
	}
}

func TestTspRandomMoveExcludesAnchor(t *testing.T) {
	mt := move.NewTsp(6, seed(1))
	for n := 0; n < 200; n++ {
		i, j, err := mt.RandomMove()
		if err != nil {
			t.Fatalf("RandomMove: %v", err)
		}
		if i == 0 || j == 0 {
			t.Fatalf("Tsp move touched anchor position 0: (%d,%d)", i, j)
		}
		if i >= j {
			t.Fatalf("move not canonicalized: (%d,%d)", i, j)
		}
	}
}

func TestSwapAllMovesLexicographic(t *testing.T) {
	mt := move.NewSwap(4, nil)
	moves, err := mt.AllMoves()
	if err != nil {
		t.Fatalf("AllMoves: %v", err)
	}
	want := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	if len(moves) != len(want) {
		t.Fatalf("len(moves) = %d, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Fatalf("moves[%d] = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestTspAllMovesExcludesAnchor(t *testing.T) {
	mt := move.NewTsp(4, nil)
	moves, err := mt.AllMoves()
	if err != nil {
		t.Fatalf("AllMoves: %v", err)
	}
	want := [][2]int{{1, 2}, {1, 3}, {2, 3}}
	if len(moves) != len(want) {
		t.Fatalf("moves = %v, want %v", moves, want)
	}
}

func TestMultiNeighborRejectsNesting(t *testing.T) {
	inner, _ := move.NewMultiNeighbor([]*move.MoveType{move.NewSwap(4, nil)}, nil)
	_, err := move.NewMultiNeighbor([]*move.MoveType{inner, move.NewReverse(4, nil)}, nil)
	if err == nil {
		t.Fatal("expected error nesting a MultiNeighbor child")
	}
}

func TestMultiNeighborRejectsBadWeights(t *testing.T) {
	children := []*move.MoveType{move.NewSwap(4, nil), move.NewReverse(4, nil)}
	_, err := move.NewMultiNeighbor(children, []float64{0.2, 0.2})
	if err == nil {
		t.Fatal("expected error for weights not summing to 1")
	}
}

func TestMultiNeighborRejectsEmpty(t *testing.T) {
	_, err := move.NewMultiNeighbor(nil, nil)
	if err == nil {
		t.Fatal("expected error for empty children")
	}
}

func TestMultiNeighborUniformDefault(t *testing.T) {
	children := []*move.MoveType{move.NewSwap(4, seed(1)), move.NewReverse(4, seed(2)), move.NewTsp(4, seed(3))}
	mt, err := move.NewMultiNeighbor(children, nil)
	if err != nil {
		t.Fatalf("NewMultiNeighbor: %v", err)
	}
	if mt.ChildCount() != 3 {
		t.Fatalf("ChildCount() = %d, want 3", mt.ChildCount())
	}
}

func TestLeafRandomMoveOnMultiNeighborFails(t *testing.T) {
	children := []*move.MoveType{move.NewSwap(4, nil)}
	mt, err := move.NewMultiNeighbor(children, nil)
	if err != nil {
		t.Fatalf("NewMultiNeighbor: %v", err)
	}
	if _, _, err := mt.RandomMove(); !errors.Is(err, move.ErrInvalidOperation) {
		t.Fatalf("RandomMove error = %v, want ErrInvalidOperation", err)
	}
	if _, err := mt.AllMoves(); !errors.Is(err, move.ErrInvalidOperation) {
		t.Fatalf("AllMoves error = %v, want ErrInvalidOperation", err)
	}
	if err := mt.Apply([]int{0, 1, 2, 3}, [2]int{0, 1}); !errors.Is(err, move.ErrInvalidOperation) {
		t.Fatalf("Apply error = %v, want ErrInvalidOperation", err)
	}
}

func TestAllMovesSelectSingleNeighborhoodHaltsAboveZero(t *testing.T) {
	mt := move.NewSwap(4, nil)
	if _, err := mt.AllMovesSelect(0); err != nil {
		t.Fatalf("AllMovesSelect(0): %v", err)
	}
	if _, err := mt.AllMovesSelect(1); !errors.Is(err, move.ErrNotMultiNeighbor) {
		t.Fatalf("AllMovesSelect(1) error = %v, want ErrNotMultiNeighbor", err)
	}
}

func TestAllMovesSelectMulti(t *testing.T) {
	children := []*move.MoveType{move.NewSwap(4, nil), move.NewTsp(4, nil)}
	mt, err := move.NewMultiNeighbor(children, nil)
	if err != nil {
		t.Fatalf("NewMultiNeighbor: %v", err)
	}
	got, err := mt.AllMovesSelect(1)
	if err != nil {
		t.Fatalf("AllMovesSelect(1): %v", err)
	}
	for _, tm := range got {
		if tm.Child != 1 {
			t.Fatalf("tagged move child = %d, want 1", tm.Child)
		}
	}
	if _, err := mt.AllMovesSelect(2); !errors.Is(err, move.ErrNotMultiNeighbor) {
		t.Fatalf("AllMovesSelect(2) error = %v, want ErrNotMultiNeighbor", err)
	}
}

func TestSetSeedDeterminism(t *testing.T) {
	mt1 := move.NewSwap(10, seed(42))
	mt2 := move.NewSwap(10, seed(1)) // different initial seed
	mt2.SetSeed(42)

	for n := 0; n < 20; n++ {
		i1, j1, _ := mt1.RandomMove()
		i2, j2, _ := mt2.RandomMove()
		if i1 != i2 || j1 != j2 {
			t.Fatalf("draw %d diverged after reseed: (%d,%d) vs (%d,%d)", n, i1, j1, i2, j2)
		}
	}
}
