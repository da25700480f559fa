package search

import "errors"

// ErrConfiguration is a configuration error: a driver was given a problem
// or parameter set it cannot run. SteepestDescent, SimulatedAnnealing, and
// TabuSearch all reject a MultiNeighbor move type at SetProblem time, since
// their inner loop has no notion of a selected child neighborhood.
var ErrConfiguration = errors.New("search: configuration error")
