// Package solver - model description and the Solve dispatcher.
//
// A Model is a one-shot resource: build variables, constraints and the
// objective, call Solve exactly once (repeat calls are permitted and
// re-run the engine on the same description), then Close. Nothing is
// shared between models; distinct models may be used from distinct
// goroutines without coordination.
//
// Routing policy (reference engine):
//   - one quadratic constraint        → Lagrangian bisection (quadconstr.go)
//   - binary variables present        → branch-and-bound (bnb.go)
//   - quadratic objective, continuous → LP feasibility guard + ADMM (admm.go)
//   - pure linear program             → simplex (simplex.go)
package solver

import (
	"time"

	"github.com/rs/zerolog"
)

// Model accumulates a mathematical-program description and solves it.
// The zero value is not usable; construct with New.
type Model struct {
	opts   Options
	closed bool

	lb, ub []float64
	binary []bool
	nBin   int

	rows []linRow

	hasObj bool
	obj    objective

	qc  *quadConstr
	nQC int
}

// linRow is one linear constraint: terms (sense) rhs.
type linRow struct {
	terms []Term
	sense Sense
	rhs   float64
}

// objective is the caller's expression: lin + 1/2 * v' Q v, with a
// direction. Q is addressed through qVars and assumed symmetric.
type objective struct {
	dir   Direction
	lin   []Term
	qVars []Var
	q     [][]float64
}

// quadConstr is the single supported quadratic row: v' Q v <= rhs.
type quadConstr struct {
	vars []Var
	q    [][]float64
	rhs  float64
}

// New returns an empty model configured by opts.
func New(opts ...Option) *Model {
	return &Model{opts: gatherOptions(opts...)}
}

// Close releases the model. Further use returns ErrClosed. Idempotent.
func (m *Model) Close() {
	m.closed = true
}

// AddVar adds a continuous variable with bounds [lb, ub]; either bound
// may be infinite. Bound sanity is verified at Solve time.
func (m *Model) AddVar(lb, ub float64) Var {
	m.lb = append(m.lb, lb)
	m.ub = append(m.ub, ub)
	m.binary = append(m.binary, false)

	return Var(len(m.lb) - 1)
}

// AddBinary adds a {0,1} decision variable.
func (m *Model) AddBinary() Var {
	m.lb = append(m.lb, 0)
	m.ub = append(m.ub, 1)
	m.binary = append(m.binary, true)
	m.nBin++

	return Var(len(m.lb) - 1)
}

// AddConstr adds the linear row terms (sense) rhs. The terms slice is
// copied; the caller may reuse it.
func (m *Model) AddConstr(terms []Term, sense Sense, rhs float64) {
	row := linRow{terms: make([]Term, len(terms)), sense: sense, rhs: rhs}
	copy(row.terms, terms)
	m.rows = append(m.rows, row)
}

// AddQuadConstr adds the convex quadratic row v' Q v <= rhs over the
// listed variables. The reference engine supports at most one such row
// and only on models without binaries; violations surface at Solve as
// ErrUnsupported.
func (m *Model) AddQuadConstr(vars []Var, q [][]float64, rhs float64) {
	m.qc = &quadConstr{vars: append([]Var(nil), vars...), q: q, rhs: rhs}
	m.nQC++
}

// SetObjective sets the objective expression lin + 1/2 * v' Q v and its
// direction. Pass qVars/q as nil for a purely linear objective. Q is
// used as given and assumed symmetric.
func (m *Model) SetObjective(dir Direction, lin []Term, qVars []Var, q [][]float64) {
	m.obj = objective{dir: dir, lin: append([]Term(nil), lin...), qVars: qVars, q: q}
	m.hasObj = true
}

// NumVars reports the current variable count.
func (m *Model) NumVars() int { return len(m.lb) }

// Solve runs the engine once, blocking until a terminal status.
//
// Contract:
//   - Returns an error only for malformed or unsupported descriptions
//     (ErrModelShape, ErrUnsupported, ErrNoObjective) or use after Close.
//   - Infeasible / unbounded / budget-exhausted terminations are statuses
//     on the Solution, not errors: expected outcomes the caller inspects.
//
// Complexity: LP/QP paths are polynomial per subproblem; with k binaries
// the search is O(2^k) nodes worst case (pruning governs practice).
func (m *Model) Solve() (Solution, error) {
	if m.closed {
		return Solution{}, ErrClosed
	}
	if err := m.validate(); err != nil {
		return Solution{}, err
	}

	// Soft deadline shared by all engine phases of this call.
	var deadline time.Time
	if m.opts.timeLimit > 0 {
		deadline = time.Now().Add(m.opts.timeLimit)
	}

	// Internal minimization form: minimize 1/2 x'Px + c'x.
	p, c := m.minimizeForm()

	run := &runState{
		m:        m,
		p:        p,
		c:        c,
		deadline: deadline,
		log:      m.opts.log,
	}

	var sol Solution
	switch {
	case m.nQC == 1:
		m.opts.log.Debug().Msg("solver: routing to quadratic-constraint bisection")
		sol = run.solveQuadConstr()
	case m.nBin > 0:
		m.opts.log.Debug().Int("binaries", m.nBin).Msg("solver: routing to branch-and-bound")
		sol = run.solveBranchAndBound()
	default:
		m.opts.log.Debug().Msg("solver: routing to continuous path")
		sol = run.solveContinuous(m.lb, m.ub)
	}

	if sol.Status == StatusOptimal {
		sol.Obj = m.objValue(sol.X)
	}
	m.opts.log.Debug().Stringer("status", sol.Status).Msg("solver: terminal status")

	return sol, nil
}

// runState carries the per-Solve scope: the minimization form and the
// deadline. A fresh runState is created on every Solve call so repeated
// solves never share state.
type runState struct {
	m        *Model
	p        [][]float64 // nil when the objective is linear
	c        []float64
	deadline time.Time
	log      zerolog.Logger
}

// expired reports whether the soft deadline has passed.
func (r *runState) expired() bool {
	return !r.deadline.IsZero() && time.Now().After(r.deadline)
}

// minimizeForm assembles dense P (or nil) and c for the internal
// minimization form, negating on Maximize.
func (m *Model) minimizeForm() ([][]float64, []float64) {
	n := len(m.lb)
	sign := 1.0
	if m.obj.dir == Maximize {
		sign = -1.0
	}

	c := make([]float64, n)
	for _, t := range m.obj.lin {
		c[t.Var] += sign * t.Coef
	}

	if len(m.obj.qVars) == 0 {
		return nil, c
	}
	p := make([][]float64, n)
	for i := range p {
		p[i] = make([]float64, n)
	}
	for i, vi := range m.obj.qVars {
		for j, vj := range m.obj.qVars {
			p[vi][vj] += sign * m.obj.q[i][j]
		}
	}

	return p, c
}

// objValue evaluates the caller's objective expression at x.
func (m *Model) objValue(x []float64) float64 {
	var v float64
	for _, t := range m.obj.lin {
		v += t.Coef * x[t.Var]
	}
	for i, vi := range m.obj.qVars {
		for j, vj := range m.obj.qVars {
			v += 0.5 * m.obj.q[i][j] * x[vi] * x[vj]
		}
	}

	return v
}
