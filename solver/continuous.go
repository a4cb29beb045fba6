// Package solver - continuous-path router.
package solver

// solveContinuous solves the model over the given bounds with binaries
// (if any) relaxed into their bound interval. Pure linear objectives go
// to the exact simplex path; quadratic objectives run the ADMM core
// behind an exact LP feasibility guard, so ADMM only ever iterates on
// problems known to admit a solution.
func (r *runState) solveContinuous(lb, ub []float64) Solution {
	if r.p == nil {
		return r.solveLP(r.c, lb, ub)
	}

	guard := r.feasiblePoint(lb, ub)
	if guard.Status != StatusOptimal {
		return Solution{Status: guard.Status}
	}

	return r.solveADMM(lb, ub, guard.X)
}

// minObjValue evaluates the internal minimization objective at x.
func (r *runState) minObjValue(x []float64) float64 {
	var v float64
	for i, ci := range r.c {
		v += ci * x[i]
	}
	if r.p != nil {
		for i := range r.p {
			row := r.p[i]
			var acc float64
			for j, qij := range row {
				acc += qij * x[j]
			}
			v += 0.5 * x[i] * acc
		}
	}

	return v
}
