// Package solver - exact linear-program path.
//
// Pure LPs (and the feasibility guard that precedes every ADMM run) are
// solved with gonum's simplex over the standard form produced by
// lp.Convert. Vertex solutions come back exact, which the
// branch-and-bound layer relies on for clean integrality at LP nodes.
//
// Two presolve stages run before Convert; both address inputs the
// simplex itself handles badly:
//
//  1. Free-variable substitution. A variable unbounded on both sides is
//     pinned only through equality rows; after Convert's
//     positive/negative split the simplex can misread such a model as
//     unbounded. Each free variable with an equality pivot is
//     substituted out and recovered by back-substitution afterwards.
//  2. Equality rank/consistency reduction. The simplex requires full
//     row rank on the equality block; dependent rows (every balanced
//     network produces them) are dropped, and an inconsistent system is
//     reported as infeasible instead of surfacing as a singular basis.
package solver

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// presolveTol is the pivot / zero-row threshold of both presolve stages.
const presolveTol = 1e-9

// elimRow records one substituted free variable: its pivot row and rhs,
// replayed in reverse order to recover the variable's value.
type elimRow struct {
	v   int
	row []float64
	rhs float64
}

// generalForm is the G x <= h, A x = b rendering of the model's rows and
// variable bounds over the given (possibly branch-tightened) bounds,
// after presolve.
type generalForm struct {
	g *mat.Dense
	h []float64
	a *mat.Dense
	b []float64

	elim       []elimRow
	infeasible bool
}

// buildGeneralForm flattens linear rows and finite bounds into general
// form and runs both presolve stages. GE rows are negated into LE; each
// finite bound becomes one G row. G always ends up with at least one row
// (a vacuous 0 <= 0 row is synthesized if nothing else produced one) so
// the Convert call below has a well-defined shape.
//
// The returned objective is c with every substituted variable
// eliminated; constant offsets are discarded (callers re-evaluate the
// objective at the recovered point).
//
// Complexity: O(rows^2 * n) dominated by the elimination passes.
func (r *runState) buildGeneralForm(c, lb, ub []float64) (generalForm, []float64) {
	n := len(lb)
	cRed := append([]float64(nil), c...)

	var (
		gRows [][]float64
		h     []float64
		aRows [][]float64
		b     []float64
	)

	for _, row := range r.m.rows {
		dense := make([]float64, n)
		for _, t := range row.terms {
			dense[t.Var] += t.Coef
		}
		switch row.sense {
		case Eq:
			aRows = append(aRows, dense)
			b = append(b, row.rhs)
		case LE:
			gRows = append(gRows, dense)
			h = append(h, row.rhs)
		case GE:
			neg := make([]float64, n)
			for i, v := range dense {
				neg[i] = -v
			}
			gRows = append(gRows, neg)
			h = append(h, -row.rhs)
		}
	}

	var form generalForm

	// Stage 1: substitute out free variables through equality pivots.
	var j int
	for j = 0; j < n; j++ {
		if !math.IsInf(lb[j], -1) || !math.IsInf(ub[j], 1) {
			continue
		}
		p := pickPivot(aRows, j)
		if p < 0 {
			continue // genuinely free; left to the simplex as-is
		}
		prow, prhs := aRows[p], b[p]
		aRows = append(aRows[:p], aRows[p+1:]...)
		b = append(b[:p], b[p+1:]...)
		for i := range aRows {
			eliminateColumn(aRows[i], &b[i], prow, prhs, j)
		}
		for i := range gRows {
			eliminateColumn(gRows[i], &h[i], prow, prhs, j)
		}
		if f := cRed[j] / prow[j]; f != 0 {
			for k := range cRed {
				cRed[k] -= f * prow[k]
			}
			cRed[j] = 0
		}
		form.elim = append(form.elim, elimRow{v: j, row: prow, rhs: prhs})
	}

	var i int
	for i = 0; i < n; i++ {
		if !math.IsInf(ub[i], 1) {
			row := make([]float64, n)
			row[i] = 1
			gRows = append(gRows, row)
			h = append(h, ub[i])
		}
		if !math.IsInf(lb[i], -1) {
			row := make([]float64, n)
			row[i] = -1
			gRows = append(gRows, row)
			h = append(h, -lb[i])
		}
	}

	// Stage 2: full row rank on the remaining equality block.
	var consistent bool
	aRows, b, consistent = reduceEqualities(aRows, b)
	if !consistent {
		form.infeasible = true

		return form, cRed
	}

	if len(gRows) == 0 {
		gRows = append(gRows, make([]float64, n))
		h = append(h, 0)
	}

	form.h = h
	form.g = denseFromRows(gRows, n)
	if len(aRows) > 0 {
		form.a = denseFromRows(aRows, n)
	}
	form.b = b

	return form, cRed
}

// pickPivot returns the equality row with the largest magnitude in
// column j, or -1 when none clears the threshold. Ties keep the first
// row for determinism.
func pickPivot(aRows [][]float64, j int) int {
	p, best := -1, presolveTol
	for i := range aRows {
		if a := math.Abs(aRows[i][j]); a > best {
			p, best = i, a
		}
	}

	return p
}

// eliminateColumn clears column j of row against the pivot row.
func eliminateColumn(row []float64, rhs *float64, prow []float64, prhs float64, j int) {
	f := row[j] / prow[j]
	if f == 0 {
		return
	}
	for k := range row {
		row[k] -= f * prow[k]
	}
	row[j] = 0
	*rhs -= f * prhs
}

// reduceEqualities brings the equality block to row-echelon form,
// dropping dependent rows. Reports false when a row reduces to
// 0 == nonzero (an inconsistent, hence infeasible, system).
func reduceEqualities(rows [][]float64, b []float64) ([][]float64, []float64, bool) {
	m := len(rows)
	if m == 0 {
		return rows, b, true
	}
	n := len(rows[0])

	scale := 1.0
	for _, v := range b {
		scale = math.Max(scale, math.Abs(v))
	}

	rank := 0
	var col, i, k int
	for col = 0; col < n && rank < m; col++ {
		p, best := -1, presolveTol
		for i = rank; i < m; i++ {
			if a := math.Abs(rows[i][col]); a > best {
				p, best = i, a
			}
		}
		if p < 0 {
			continue
		}
		rows[rank], rows[p] = rows[p], rows[rank]
		b[rank], b[p] = b[p], b[rank]
		for i = rank + 1; i < m; i++ {
			f := rows[i][col] / rows[rank][col]
			if f == 0 {
				continue
			}
			for k = col; k < n; k++ {
				rows[i][k] -= f * rows[rank][k]
			}
			rows[i][col] = 0
			b[i] -= f * b[rank]
		}
		rank++
	}

	for i = rank; i < m; i++ {
		if math.Abs(b[i]) > presolveTol*scale {
			return nil, nil, false
		}
	}

	return rows[:rank], b[:rank], true
}

// denseFromRows packs row slices into a gonum dense matrix.
func denseFromRows(rows [][]float64, n int) *mat.Dense {
	flat := make([]float64, 0, len(rows)*n)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	return mat.NewDense(len(rows), n, flat)
}

// solveLP minimizes c'x over the general form with the simplex method.
// Convert splits x into positive/negative parts, so the original
// variables are recovered as x[i] = out[i] - out[n+i]; substituted free
// variables are then filled in by back-substitution.
func (r *runState) solveLP(c []float64, lb, ub []float64) Solution {
	n := len(lb)
	form, cRed := r.buildGeneralForm(c, lb, ub)
	if form.infeasible {
		return Solution{Status: StatusInfeasible}
	}

	var aIn mat.Matrix
	if form.a != nil {
		aIn = form.a
	}
	cStd, aStd, bStd := lp.Convert(cRed, form.g, form.h, aIn, form.b)

	_, xStd, err := lp.Simplex(cStd, aStd, bStd, 0, nil)
	if err != nil {
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return Solution{Status: StatusInfeasible}
		case errors.Is(err, lp.ErrUnbounded):
			return Solution{Status: StatusUnbounded}
		default:
			// Singular bases and kin: numeric failure, not a model verdict.
			r.log.Debug().Err(err).Msg("solver: simplex numeric failure")

			return Solution{Status: StatusInterrupted}
		}
	}

	x := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		x[i] = xStd[i] - xStd[n+i]
	}

	for i = len(form.elim) - 1; i >= 0; i-- {
		e := form.elim[i]
		v := e.rhs
		for k, coef := range e.row {
			if k != e.v {
				v -= coef * x[k]
			}
		}
		x[e.v] = v / e.row[e.v]
	}

	return Solution{Status: StatusOptimal, X: x}
}

// feasiblePoint runs a zero-objective simplex phase over the general
// form. It returns StatusOptimal with a feasible point, or
// StatusInfeasible / StatusInterrupted. Unboundedness cannot occur with
// a zero objective.
func (r *runState) feasiblePoint(lb, ub []float64) Solution {
	return r.solveLP(make([]float64, len(lb)), lb, ub)
}
