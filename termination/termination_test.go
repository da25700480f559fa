package termination_test

import (
	"testing"
	"time"

	"github.com/milannvidia/lclgo/termination"
)

func TestAlwaysTrueNeverStops(t *testing.T) {
	tf := termination.NewAlwaysTrue()
	tf.Init()
	for i := 0; i < 1000; i++ {
		if !tf.KeepRunning() {
			t.Fatal("AlwaysTrue stopped running")
		}
		tf.IterationDone()
	}
}

func TestMaxIterationsStopsAtBudget(t *testing.T) {
	tf := termination.NewMaxIterations(3)
	tf.Init()
	count := 0
	for tf.KeepRunning() {
		count++
		tf.IterationDone()
	}
	if count != 3 {
		t.Fatalf("ran %d iterations, want 3", count)
	}
}

func TestMaxSecondsStopsAfterBudget(t *testing.T) {
	tf := termination.NewMaxSeconds(0.01)
	tf.Init()
	time.Sleep(20 * time.Millisecond)
	if tf.KeepRunning() {
		t.Fatal("expected KeepRunning() == false after budget elapsed")
	}
}

func TestMinTemperatureStopsAtFloor(t *testing.T) {
	tf := termination.NewMinTemperature(1.0)
	tf.Init()
	if !tf.CheckVariable(100) {
		t.Fatal("expected to keep running above floor")
	}
	if tf.CheckVariable(0.5) {
		t.Fatal("expected to stop at or below floor")
	}
}

func TestMustImproveStopsOnPlateau(t *testing.T) {
	tf := termination.NewMustImprove()
	tf.SetGoal(true) // minimizing
	tf.Init()

	tf.CheckNewVariable(10)
	if !tf.KeepRunning() {
		t.Fatal("expected first observation to count as an improvement")
	}
	tf.CheckNewVariable(8)
	if !tf.KeepRunning() {
		t.Fatal("expected strict improvement to keep running")
	}
	tf.CheckNewVariable(8)
	if tf.KeepRunning() {
		t.Fatal("expected a non-improving score to stop the run")
	}
}

func TestNoImproveStopsAfterLimit(t *testing.T) {
	tf := termination.NewNoImprove(2)
	tf.SetGoal(true)
	tf.Init()

	tf.CheckNewVariable(10)
	if !tf.KeepRunning() {
		t.Fatal("should keep running after the first (improving) observation")
	}
	tf.CheckNewVariable(10)
	if !tf.KeepRunning() {
		t.Fatal("should keep running after one non-improving observation")
	}
	tf.CheckNewVariable(10)
	if tf.KeepRunning() {
		t.Fatal("should stop after two consecutive non-improving observations")
	}
}

func TestAndStopsWhenAnyChildStops(t *testing.T) {
	a := termination.NewMaxIterations(5)
	b := termination.NewMaxIterations(2)
	tf, err := termination.NewAnd(a, b)
	if err != nil {
		t.Fatalf("NewAnd: %v", err)
	}
	tf.Init()
	count := 0
	for tf.KeepRunning() {
		count++
		tf.IterationDone()
	}
	if count != 2 {
		t.Fatalf("And ran %d iterations, want 2 (bound by the tighter child)", count)
	}
}

func TestOrStopsWhenAllChildrenStop(t *testing.T) {
	a := termination.NewMaxIterations(5)
	b := termination.NewMaxIterations(2)
	tf, err := termination.NewOr(a, b)
	if err != nil {
		t.Fatalf("NewOr: %v", err)
	}
	tf.Init()
	count := 0
	for tf.KeepRunning() {
		count++
		tf.IterationDone()
	}
	if count != 5 {
		t.Fatalf("Or ran %d iterations, want 5 (bound by the looser child)", count)
	}
}

func TestAndPropagatesCheckNewVariable(t *testing.T) {
	mustImprove := termination.NewMustImprove()
	maxIter := termination.NewMaxIterations(100)
	tf, err := termination.NewAnd(mustImprove, maxIter)
	if err != nil {
		t.Fatalf("NewAnd: %v", err)
	}
	tf.SetGoal(true)
	tf.Init()

	tf.CheckNewVariable(10)
	if !tf.KeepRunning() {
		t.Fatal("expected to keep running after an improving observation")
	}
	tf.CheckNewVariable(20)
	if tf.KeepRunning() {
		t.Fatal("expected And to stop once the MustImprove child stops")
	}
}

func TestNewAndRejectsEmptyChildren(t *testing.T) {
	if _, err := termination.NewAnd(); err == nil {
		t.Fatal("expected ErrNoChildren")
	}
}
