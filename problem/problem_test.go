package problem_test

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/milannvidia/lclgo/eval"
	"github.com/milannvidia/lclgo/move"
	"github.com/milannvidia/lclgo/perm"
	"github.com/milannvidia/lclgo/problem"
)

func validatePermutation(t *testing.T, state []int) {
	t.Helper()
	if err := perm.Validate(state); err != nil {
		t.Fatal(err)
	}
}

func denseFrom(rows [][]float64) *mat.Dense {
	n := len(rows)
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, rows[i][j])
		}
	}
	return m
}

func newTspProblem(t *testing.T) *problem.Problem {
	t.Helper()
	d := denseFrom([][]float64{
		{0, 2, 5, 8},
		{2, 0, 4, 1},
		{5, 4, 0, 7},
		{8, 1, 7, 0},
	})
	ev, err := eval.NewTsp(d, true)
	if err != nil {
		t.Fatalf("NewTsp: %v", err)
	}
	seed := int64(0)
	mt := move.NewTsp(4, &seed)
	p, err := problem.NewArrayProblem(mt, ev)
	if err != nil {
		t.Fatalf("NewArrayProblem: %v", err)
	}
	return p
}

func TestResetIsIdentity(t *testing.T) {
	p := newTspProblem(t)
	p.DoMove([2]int{1, 2}, nil)
	p.Reset()
	validatePermutation(t, p.State())
	for i, v := range p.State() {
		if v != i {
			t.Fatalf("state after reset = %v, want identity", p.State())
		}
	}
}

func TestDoMoveKeepsPermutation(t *testing.T) {
	p := newTspProblem(t)
	for n := 0; n < 50; n++ {
		i, j, err := p.GetMove()
		if err != nil {
			t.Fatalf("GetMove: %v", err)
		}
		if err := p.DoMove([2]int{i, j}, nil); err != nil {
			t.Fatalf("DoMove: %v", err)
		}
		validatePermutation(t, p.State())
	}
}

func TestDeltaEvalDoesNotMutateState(t *testing.T) {
	p := newTspProblem(t)
	before := append([]int(nil), p.State()...)
	if _, err := p.DeltaEval([2]int{1, 2}, nil); err != nil {
		t.Fatalf("DeltaEval: %v", err)
	}
	for i := range before {
		if p.State()[i] != before[i] {
			t.Fatalf("state mutated by DeltaEval: %v, want %v", p.State(), before)
		}
	}
}

func TestHashIsDeterministic(t *testing.T) {
	p := newTspProblem(t)
	h1 := p.Hash()
	p.DoMove([2]int{1, 2}, nil)
	p.DoMove([2]int{1, 2}, nil) // self-inverse, back to identity
	h2 := p.Hash()
	if h1 != h2 {
		t.Fatalf("Hash() not stable for identical state: %d != %d", h1, h2)
	}
}

func TestSetBestCopiesState(t *testing.T) {
	p := newTspProblem(t)
	p.DoMove([2]int{1, 2}, nil)
	p.SetBest()
	want := append([]int(nil), p.State()...)
	best := p.BestSolution()
	for i := range want {
		if best[i] != want[i] {
			t.Fatalf("BestSolution() = %v, want %v", best, want)
		}
	}
}

func TestNewArrayProblemRejectsSizeMismatch(t *testing.T) {
	weights := []float64{1, 2, 3}
	ev := eval.NewEmptyBins(weights, 10)
	mt := move.NewSwap(5, nil)
	if _, err := problem.NewArrayProblem(mt, ev); !errors.Is(err, problem.ErrSizeMismatch) {
		t.Fatalf("err = %v, want ErrSizeMismatch", err)
	}
}
