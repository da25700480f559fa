// Package move implements the neighborhood structures ("move types") that a
// local-search driver proposes and applies against a permutation state.
//
// A MoveType is a tagged variant over Reverse, Swap, Tsp, and MultiNeighbor.
// The first three are "leaf" neighborhoods operating directly on a []int
// state; MultiNeighbor composes several leaf neighborhoods behind a weighted
// selector so Variable Neighborhood Search can walk between them.
package move
