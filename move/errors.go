package move

import "errors"

// ErrInvalidOperation is returned when RandomMove, AllMoves, or Apply is
// called directly on a MultiNeighbor move type. MultiNeighbor only supports
// the *Multi/*Select family of operations.
var ErrInvalidOperation = errors.New("move: operation not valid on a MultiNeighbor move type")

// ErrNotMultiNeighbor is returned when a *Select operation is given a
// neighborhood index out of range: anything but 0 on a leaf move type (its
// single implicit neighborhood), or an index outside the children of a
// MultiNeighbor.
var ErrNotMultiNeighbor = errors.New("move: neighborhood index out of range")
