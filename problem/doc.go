// Package problem binds a move.MoveType and an eval.Evaluation to a mutable
// permutation state, exposing the uniform capability set the search drivers
// consume: proposing and applying moves, full and incremental scoring,
// resetting to the identity permutation, and tracking the best state seen.
package problem
