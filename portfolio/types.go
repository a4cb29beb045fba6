package portfolio

import "errors"

// ErrBadInput is returned when Sigma or mu is supplied in neither
// recognized representation (plain numeric or labeled).
var ErrBadInput = errors.New("portfolio: unrecognized input representation")

// ErrDimensionMismatch is returned when Sigma is not square, when mu or
// the initial holdings disagree with Sigma's dimension, or when a
// labeled input carries the wrong number of labels.
var ErrDimensionMismatch = errors.New("portfolio: dimension mismatch")

// ErrNoSolution is the no-solution outcome: the solve terminated in a
// non-optimal status (infeasible, unbounded, or budget-exhausted).
// It is an expected business condition - conflicting trading limits are
// legitimate inputs - so callers check it with errors.Is rather than
// treating it as a fault. The wrapped message carries the engine's
// status detail as-is.
var ErrNoSolution = errors.New("portfolio: no solution")

// Weights is a solved allocation vector.
//
// Labels is nil when the model was constructed from plain inputs, and
// carries Sigma's canonical label ordering when either input was
// labeled; Values is aligned to it.
type Weights struct {
	Labels []string
	Values []float64
}
