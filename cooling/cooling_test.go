package cooling_test

import (
	"testing"

	"github.com/milannvidia/lclgo/cooling"
)

func TestGeometricCoolingRoundsToNearestInteger(t *testing.T) {
	cf := cooling.NewGeometricCooling(0.9)
	if got := cf.Next(100); got != 90 {
		t.Fatalf("Next(100) = %v, want 90", got)
	}
	if got := cf.Next(15); got != 14 {
		t.Fatalf("Next(15) = %v, want 14 (round(13.5) rounds half away from zero)", got)
	}
}

func TestConstIterTempIsConstant(t *testing.T) {
	it := cooling.NewConstIterTemp(25)
	for _, temp := range []float64{1000, 500, 10, 0.1} {
		if got := it.IterationsAt(temp); got != 25 {
			t.Fatalf("IterationsAt(%v) = %v, want 25", temp, got)
		}
	}
}
