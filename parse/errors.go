package parse

import "errors"

// ErrNotSquare is an InvalidInput error: a parsed distance matrix had a
// different number of rows than columns.
var ErrNotSquare = errors.New("parse: matrix is not square")

// ErrMalformedRow is an InvalidInput error: a line did not match the
// expected field layout for the format being parsed.
var ErrMalformedRow = errors.New("parse: malformed row")
