// Package solver - shared types and strict sentinels.
//
// All public errors of the package live here; engine files return only
// these sentinels (wrapped where extra context helps), never ad-hoc
// fmt.Errorf chains.
package solver

import (
	"errors"
	"fmt"
)

// ErrClosed is returned when a model is used after Close.
var ErrClosed = errors.New("solver: model is closed")

// ErrModelShape is returned when the model description is malformed:
// a variable handle out of range, a quadratic block whose dimensions do
// not match its variable list, or an unknown constraint sense.
var ErrModelShape = errors.New("solver: malformed model description")

// ErrUnsupported is returned when the model combines features the
// reference engine does not implement: more than one quadratic
// constraint, or a quadratic constraint together with binary variables.
var ErrUnsupported = errors.New("solver: unsupported model combination")

// ErrNoObjective is returned when Solve is called before SetObjective.
var ErrNoObjective = errors.New("solver: objective not set")

// Var is an opaque handle to a decision variable, valid only for the
// model that created it.
type Var int

// Term is one linear coefficient, Coef * x[Var].
type Term struct {
	Var  Var
	Coef float64
}

// Sense of a linear constraint row.
type Sense int

const (
	// Eq enforces terms == rhs.
	Eq Sense = iota
	// LE enforces terms <= rhs.
	LE
	// GE enforces terms >= rhs.
	GE
)

// Direction of the objective.
type Direction int

const (
	// Minimize the objective expression.
	Minimize Direction = iota
	// Maximize the objective expression.
	Maximize
)

// Status is the terminal state of one Solve call.
//
// Only StatusOptimal carries a usable solution vector. Every other
// status is an expected outcome to be inspected by the caller, not a
// fault: infeasibility and unboundedness are properties of the model,
// and StatusInterrupted means the engine hit its iteration or time
// budget before proving optimality.
type Status int

const (
	// StatusOptimal - an optimal assignment was found.
	StatusOptimal Status = iota
	// StatusInfeasible - the constraint set admits no assignment.
	StatusInfeasible
	// StatusUnbounded - the objective improves without bound.
	StatusUnbounded
	// StatusInterrupted - budget exhausted before a proof of optimality.
	StatusInterrupted
)

// String implements fmt.Stringer for diagnostics and log fields.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusInterrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Solution is the outcome of one Solve call.
//
// X and Obj are meaningful only when Status == StatusOptimal; Obj is
// reported in the caller's objective direction (the value of the
// expression passed to SetObjective, not the internal minimization
// form).
type Solution struct {
	Status Status
	X      []float64
	Obj    float64
}
