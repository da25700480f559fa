// Package perm provides small helpers over integer permutations shared by
// the engine's state representation: validating that a slice is a genuine
// permutation of [0,n), searching, reversing, and rotating in place.
package perm
