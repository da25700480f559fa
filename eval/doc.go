// Package eval implements the objective functions ("evaluations") a
// local-search driver scores states against: bin-packing variants
// (EmptyBins, EmptySpace, EmptySpaceExp), the Traveling Salesman Problem
// (symmetric and asymmetric), and the Quadratic Assignment Problem.
//
// Each Evaluation supports a full Eval over a permutation state and an
// incremental DeltaEval that scores the effect of a single move without a
// full re-scan. DeltaEval never leaves the state mutated: any scratch
// mutation it performs is inverted before it returns.
package eval
