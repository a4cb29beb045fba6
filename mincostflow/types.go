package mincostflow

import "errors"

// ErrBadInput is returned when the network description is malformed:
// an arc endpoint outside the node range, a negative or non-finite
// capacity, or a non-finite cost or demand.
var ErrBadInput = errors.New("mincostflow: bad network description")

// ErrNoSolution is returned when no feasible flow satisfies the
// demands under the given capacities. An expected outcome, checked
// with errors.Is.
var ErrNoSolution = errors.New("mincostflow: unsatisfiable flows")

// Arc is one directed edge of the flow network. From and To index into
// the demand vector; Capacity bounds the flow on the arc and Cost is
// charged per unit of flow.
type Arc struct {
	From     int
	To       int
	Capacity float64
	Cost     float64
}

// Result is a solved flow: total cost and one flow value per input
// arc, in input order.
type Result struct {
	Cost  float64
	Flows []float64
}
