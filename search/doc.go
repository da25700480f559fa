// Package search implements the meta-heuristic drivers: SteepestDescent,
// SimulatedAnnealing, TabuSearch, and VariableNeighborhood. Each driver
// consumes a problem.Problem and a termination.TerminationFunction and
// produces a Trace describing the course of the search.
package search
