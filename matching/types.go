package matching

import "errors"

// ErrBadInput is returned when an edge endpoint falls outside the
// declared side sizes or a side size is negative.
var ErrBadInput = errors.New("matching: bad graph description")

// Edge joins left vertex U to right vertex V. Both sides index from
// zero independently: U in [0,nLeft), V in [0,nRight).
type Edge struct {
	U int
	V int
}
