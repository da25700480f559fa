package termination

import "errors"

// ErrNoChildren is a configuration error: And and Or both require at least
// one child criterion to combine.
var ErrNoChildren = errors.New("termination: composite criterion requires at least one child")
