// SPDX-License-Identifier: MIT

// Package solver - ADMM core for convex quadratic programs.
//
// The continuous quadratic subproblems are solved with an operator-
// splitting iteration in the OSQP style over the box form
//
//	minimize 1/2 x'Px + c'x   subject to   l <= A x <= u,
//
// where A stacks the model's linear rows (equalities become l == u)
// with one identity row per variable carrying its bounds. A single
// Cholesky factorization of P + sigma*I + A'RA serves every iteration;
// R is the diagonal of per-row step sizes (equality rows are weighted
// harder, the standard OSQP practice).
//
// The iteration only ever runs on problems the simplex guard has proven
// feasible, so no infeasibility certificates are tracked here: a convex
// feasible QP converges, and exhausting the iteration or time budget is
// reported as StatusInterrupted.
//
// Complexity: O(n^3) once for the factorization, O(n*m) per iteration.
package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// admmCheckEvery controls how often residuals (and, less frequently,
// the soft deadline) are evaluated; checking every iteration would cost
// as much as the iteration itself.
const admmCheckEvery = 50

// boxForm is the stacked l <= Ax <= u rendering used by the ADMM core.
type boxForm struct {
	a    [][]float64 // m rows, n columns
	l, u []float64
	rho  []float64
}

// buildBoxForm stacks model rows and per-variable bound rows.
func (r *runState) buildBoxForm(lb, ub []float64) boxForm {
	n := len(lb)
	inf := math.Inf(1)

	var form boxForm
	for _, row := range r.m.rows {
		dense := make([]float64, n)
		for _, t := range row.terms {
			dense[t.Var] += t.Coef
		}
		var lo, hi float64
		switch row.sense {
		case Eq:
			lo, hi = row.rhs, row.rhs
		case LE:
			lo, hi = -inf, row.rhs
		case GE:
			lo, hi = row.rhs, inf
		}
		form.a = append(form.a, dense)
		form.l = append(form.l, lo)
		form.u = append(form.u, hi)
	}

	var i int
	for i = 0; i < n; i++ {
		row := make([]float64, n)
		row[i] = 1
		form.a = append(form.a, row)
		form.l = append(form.l, lb[i])
		form.u = append(form.u, ub[i])
	}

	form.rho = make([]float64, len(form.a))
	for i = range form.rho {
		form.rho[i] = admmRho
		if form.l[i] == form.u[i] {
			form.rho[i] = admmRho * admmRhoEqMul
		}
	}

	return form
}

// solveADMM runs the splitting iteration from the warm-start point.
// The guard guarantees feasibility, so the only non-optimal outcomes
// are budget exhaustion and a failed factorization (an indefinite P).
func (r *runState) solveADMM(lb, ub []float64, warm []float64) Solution {
	n := len(lb)
	form := r.buildBoxForm(lb, ub)
	m := len(form.a)

	// K = P + sigma*I + A'RA, factorized once.
	k := mat.NewSymDense(n, nil)
	var i, j, row int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v := r.p[i][j]
			if i == j {
				v += admmSigma
			}
			for row = 0; row < m; row++ {
				v += form.rho[row] * form.a[row][i] * form.a[row][j]
			}
			k.SetSym(i, j, v)
		}
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(k); !ok {
		r.log.Debug().Msg("solver: admm factorization failed (indefinite objective)")

		return Solution{Status: StatusInterrupted}
	}

	x := append([]float64(nil), warm...)
	ax := matVec(form.a, x) // running A*x, updated with the relaxation
	z := make([]float64, m)
	y := make([]float64, m)
	copy(z, ax)
	clampInto(z, form.l, form.u)

	rhs := mat.NewVecDense(n, nil)
	sol := mat.NewVecDense(n, nil)
	xt := make([]float64, n)
	zt := make([]float64, m)

	var iter int
	for iter = 0; iter < r.m.opts.maxIter; iter++ {
		if iter%(admmCheckEvery*8) == 0 && r.expired() {
			return Solution{Status: StatusInterrupted}
		}

		// rhs = sigma*x - c + A'(R z - y)
		for i = 0; i < n; i++ {
			v := admmSigma*x[i] - r.c[i]
			for row = 0; row < m; row++ {
				v += form.a[row][i] * (form.rho[row]*z[row] - y[row])
			}
			rhs.SetVec(i, v)
		}
		if err := chol.SolveVecTo(sol, rhs); err != nil {
			return Solution{Status: StatusInterrupted}
		}
		for i = 0; i < n; i++ {
			xt[i] = sol.AtVec(i)
		}
		ztNew := matVecInto(zt, form.a, xt)

		// Over-relaxed primal/dual updates.
		for i = 0; i < n; i++ {
			x[i] = admmAlpha*xt[i] + (1-admmAlpha)*x[i]
		}
		for row = 0; row < m; row++ {
			relaxed := admmAlpha*ztNew[row] + (1-admmAlpha)*z[row]
			ax[row] = admmAlpha*ztNew[row] + (1-admmAlpha)*ax[row]
			w := relaxed + y[row]/form.rho[row]
			zNew := math.Min(math.Max(w, form.l[row]), form.u[row])
			y[row] += form.rho[row] * (relaxed - zNew)
			z[row] = zNew
		}

		if iter%admmCheckEvery != 0 {
			continue
		}
		if r.converged(form, x, ax, z, y) {
			return Solution{Status: StatusOptimal, X: x}
		}
	}

	r.log.Debug().Int("iterations", iter).Msg("solver: admm iteration budget exhausted")

	return Solution{Status: StatusInterrupted}
}

// converged evaluates the OSQP termination criteria: primal residual
// ||Ax - z|| and dual residual ||Px + c + A'y||, each against an
// absolute-plus-relative threshold.
func (r *runState) converged(form boxForm, x, ax, z, y []float64) bool {
	tolA, tolR := r.m.opts.tolAbs, r.m.opts.tolRel

	var rp, scaleP float64
	for row := range ax {
		rp = math.Max(rp, math.Abs(ax[row]-z[row]))
		scaleP = math.Max(scaleP, math.Max(math.Abs(ax[row]), math.Abs(z[row])))
	}
	if rp > tolA+tolR*scaleP {
		return false
	}

	var rd, scaleD float64
	for i := range x {
		var px, aty float64
		for j := range x {
			px += r.p[i][j] * x[j]
		}
		for row := range y {
			aty += form.a[row][i] * y[row]
		}
		rd = math.Max(rd, math.Abs(px+r.c[i]+aty))
		scaleD = math.Max(scaleD, math.Max(math.Abs(px), math.Max(math.Abs(aty), math.Abs(r.c[i]))))
	}

	return rd <= tolA+tolR*scaleD
}

// matVec allocates and returns a * x.
func matVec(a [][]float64, x []float64) []float64 {
	return matVecInto(make([]float64, len(a)), a, x)
}

// matVecInto writes a * x into dst and returns it.
func matVecInto(dst []float64, a [][]float64, x []float64) []float64 {
	for row := range a {
		var v float64
		for i, aij := range a[row] {
			v += aij * x[i]
		}
		dst[row] = v
	}

	return dst
}

// clampInto projects v onto [l, u] componentwise.
func clampInto(v, l, u []float64) {
	for i := range v {
		v[i] = math.Min(math.Max(v[i], l[i]), u[i])
	}
}
