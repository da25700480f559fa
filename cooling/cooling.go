package cooling

import "math"

// FunctionKind tags the variant held by a CoolingFunction.
type FunctionKind int

// GeometricCooling is, for now, the only CoolingFunction variant: it shrinks
// the temperature by a constant multiplicative factor each cooling step.
const GeometricCooling FunctionKind = iota

// CoolingFunction computes the next annealing temperature from the current
// one. Construct one with NewGeometricCooling.
type CoolingFunction struct {
	kind  FunctionKind
	alpha float64
}

// NewGeometricCooling constructs a geometric cooling schedule with the given
// alpha, the fraction of the current temperature retained at each step.
func NewGeometricCooling(alpha float64) *CoolingFunction {
	return &CoolingFunction{kind: GeometricCooling, alpha: alpha}
}

// Kind reports the variant held by cf.
func (cf *CoolingFunction) Kind() FunctionKind { return cf.kind }

// Alpha reports the retained-temperature fraction of a GeometricCooling.
func (cf *CoolingFunction) Alpha() float64 { return cf.alpha }

// Next computes the temperature that follows temp. GeometricCooling rounds
// alpha*temp to the nearest integer, matching the coarse-grained schedules
// used by the reference problem instances.
func (cf *CoolingFunction) Next(temp float64) float64 {
	switch cf.kind {
	case GeometricCooling:
		return math.Round(cf.alpha * temp)
	}
	return temp
}

// TemperatureKind tags the variant held by an IterationsTemperature.
type TemperatureKind int

// ConstIterTemp is, for now, the only IterationsTemperature variant: it
// spends a fixed number of iterations at every temperature.
const ConstIterTemp TemperatureKind = iota

// IterationsTemperature decides how many iterations Simulated Annealing
// spends at the current temperature before cooling again. Construct one
// with NewConstIterTemp.
type IterationsTemperature struct {
	kind TemperatureKind
	k    uint64
}

// NewConstIterTemp constructs a schedule that spends exactly k iterations at
// each temperature.
func NewConstIterTemp(k uint64) *IterationsTemperature {
	return &IterationsTemperature{kind: ConstIterTemp, k: k}
}

// Kind reports the variant held by it.
func (it *IterationsTemperature) Kind() TemperatureKind { return it.kind }

// IterationsAt reports how many iterations to spend at temp before the next
// cooling step. ConstIterTemp ignores temp and always returns its k.
func (it *IterationsTemperature) IterationsAt(temp float64) uint64 {
	switch it.kind {
	case ConstIterTemp:
		return it.k
	}
	return 0
}
