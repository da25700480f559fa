// Package parse builds the numeric matrices and weight vectors the core
// engine consumes out of a handful of plain text input formats: a raw
// distance matrix, DMS geo-coordinates, 2D Cartesian coordinates, and
// generic delimited numeric CSV. Parsers never fail on the first malformed
// row; every row's error is collected and returned together. A delimited
// syntax error found by the CSV reader itself is returned on its own.
package parse
