// Package solver - single quadratic constraint via Lagrangian bisection.
//
// A model with one convex quadratic row v'Qv <= rhs (and no binaries)
// is solved through its Lagrangian family
//
//	minimize 1/2 x'(P + 2*lambda*Q)x + c'x   over the linear rows,
//
// whose solutions sweep the trade-off frontier: the attained level
// v'Qv is non-increasing in lambda. The engine finds the smallest
// lambda whose solution satisfies the constraint:
//   - lambda = 0 feasible          → the constraint is slack; done.
//   - level stays above rhs as
//     lambda grows without bound   → the minimum achievable level
//     exceeds rhs; infeasible.
//   - otherwise                    → bisect on lambda.
//
// Complexity: O(log(1/tol)) continuous solves.
package solver

import "math"

const (
	qcLambdaCap   = 1e13 // beyond this the weighted solution is the level minimizer
	qcBracketMul  = 4.0
	qcBisectSteps = 60
)

// solveQuadConstr is the quadratic-constraint entry point.
func (r *runState) solveQuadConstr() Solution {
	n := len(r.m.lb)
	qFull := r.scatterQuadConstr(n)
	tiny := r.m.opts.tolAbs + r.m.opts.tolRel*math.Abs(r.m.qc.rhs)

	// Stage 1: unweighted solve; a slack constraint needs no search.
	sol := r.weightedSolve(qFull, 0)
	switch sol.Status {
	case StatusInfeasible, StatusInterrupted:
		return Solution{Status: sol.Status}
	case StatusOptimal:
		if r.quadLevel(sol.X) <= r.m.qc.rhs+tiny {
			return sol
		}
	case StatusUnbounded:
		// The constraint must bind; fall through to the weighted family.
	}

	// Stage 2: bracket a feasible lambda by geometric growth.
	var (
		lo      = 0.0
		hi      = 1.0
		feas    Solution
		bracket bool
	)
	for hi <= qcLambdaCap {
		s := r.weightedSolve(qFull, hi)
		switch s.Status {
		case StatusInterrupted:
			return Solution{Status: StatusInterrupted}
		case StatusInfeasible:
			return Solution{Status: StatusInfeasible}
		case StatusOptimal:
			if r.quadLevel(s.X) <= r.m.qc.rhs+tiny {
				feas = s
				bracket = true
			}
		}
		if bracket {
			break
		}
		lo = hi
		hi *= qcBracketMul
	}
	if !bracket {
		// Even the heaviest weighting cannot push the level under rhs:
		// the level minimum over the feasible set exceeds the bound.
		r.log.Debug().Float64("rhs", r.m.qc.rhs).Msg("solver: quadratic constraint unattainable")

		return Solution{Status: StatusInfeasible}
	}

	// Stage 3: shrink [lo, hi] onto the smallest satisfying lambda.
	var step int
	for step = 0; step < qcBisectSteps; step++ {
		mid := 0.5 * (lo + hi)
		s := r.weightedSolve(qFull, mid)
		if s.Status == StatusInterrupted {
			return Solution{Status: StatusInterrupted}
		}
		if s.Status == StatusOptimal && r.quadLevel(s.X) <= r.m.qc.rhs+tiny {
			hi, feas = mid, s
		} else {
			lo = mid
		}
		if hi-lo <= 1e-12*math.Max(1, hi) {
			break
		}
	}

	return feas
}

// weightedSolve solves the Lagrangian member for one lambda on the
// continuous path. lambda == 0 with a linear base objective keeps the
// exact simplex route.
func (r *runState) weightedSolve(qFull [][]float64, lambda float64) Solution {
	sub := *r
	switch {
	case lambda == 0:
		sub.p = r.p
	case r.p == nil:
		sub.p = scaled(qFull, 2*lambda)
	default:
		sub.p = addScaled(r.p, qFull, 2*lambda)
	}

	return sub.solveContinuous(r.m.lb, r.m.ub)
}

// scatterQuadConstr expands the constraint's (vars, Q) block to a dense
// n-by-n matrix addressed by variable index.
func (r *runState) scatterQuadConstr(n int) [][]float64 {
	q := make([][]float64, n)
	for i := range q {
		q[i] = make([]float64, n)
	}
	for i, vi := range r.m.qc.vars {
		for j, vj := range r.m.qc.vars {
			q[vi][vj] += r.m.qc.q[i][j]
		}
	}

	return q
}

// quadLevel evaluates the constrained quadratic form at x.
func (r *runState) quadLevel(x []float64) float64 {
	var v float64
	for i, vi := range r.m.qc.vars {
		for j, vj := range r.m.qc.vars {
			v += r.m.qc.q[i][j] * x[vi] * x[vj]
		}
	}

	return v
}

// scaled returns s * q as a fresh dense matrix.
func scaled(q [][]float64, s float64) [][]float64 {
	out := make([][]float64, len(q))
	for i := range q {
		out[i] = make([]float64, len(q[i]))
		for j, v := range q[i] {
			out[i][j] = s * v
		}
	}

	return out
}

// addScaled returns p + s*q as a fresh dense matrix.
func addScaled(p, q [][]float64, s float64) [][]float64 {
	out := make([][]float64, len(p))
	for i := range p {
		out[i] = make([]float64, len(p[i]))
		for j := range p[i] {
			out[i][j] = p[i][j] + s*q[i][j]
		}
	}

	return out
}
