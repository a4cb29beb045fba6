// Package solver - staged validation of the model description.
//
// Deterministic, side-effect free checks; only sentinel errors from
// types.go. Runs once per Solve, before any engine work.
package solver

import (
	"fmt"
	"math"
)

// validate verifies the whole description in stages:
//  1. objective presence,
//  2. variable bounds,
//  3. linear rows (handles, coefficients, senses),
//  4. quadratic blocks (objective and constraint),
//  5. feature combinations the reference engine supports.
//
// Complexity: O(vars + nonzeros).
func (m *Model) validate() error {
	if !m.hasObj {
		return ErrNoObjective
	}

	n := len(m.lb)
	var i int

	// Stage 2: bounds. NaN never passes; lb > ub is a shape fault here,
	// not an infeasibility (the caller wrote an impossible variable).
	for i = 0; i < n; i++ {
		if math.IsNaN(m.lb[i]) || math.IsNaN(m.ub[i]) {
			return fmt.Errorf("%w: NaN bound on variable %d", ErrModelShape, i)
		}
		if m.lb[i] > m.ub[i] {
			return fmt.Errorf("%w: empty bound interval on variable %d", ErrModelShape, i)
		}
	}

	// Stage 3: linear rows.
	for ri, row := range m.rows {
		if row.sense != Eq && row.sense != LE && row.sense != GE {
			return fmt.Errorf("%w: unknown sense in row %d", ErrModelShape, ri)
		}
		if math.IsNaN(row.rhs) || math.IsInf(row.rhs, 0) {
			return fmt.Errorf("%w: non-finite rhs in row %d", ErrModelShape, ri)
		}
		for _, t := range row.terms {
			if int(t.Var) < 0 || int(t.Var) >= n {
				return fmt.Errorf("%w: row %d references unknown variable %d", ErrModelShape, ri, t.Var)
			}
			if math.IsNaN(t.Coef) || math.IsInf(t.Coef, 0) {
				return fmt.Errorf("%w: non-finite coefficient in row %d", ErrModelShape, ri)
			}
		}
	}

	// Stage 4: quadratic blocks.
	if err := validateQuadBlock(m.obj.qVars, m.obj.q, n); err != nil {
		return err
	}
	if m.qc != nil {
		if err := validateQuadBlock(m.qc.vars, m.qc.q, n); err != nil {
			return err
		}
		if math.IsNaN(m.qc.rhs) || math.IsInf(m.qc.rhs, 0) {
			return fmt.Errorf("%w: non-finite quadratic-constraint rhs", ErrModelShape)
		}
	}
	for _, t := range m.obj.lin {
		if int(t.Var) < 0 || int(t.Var) >= n {
			return fmt.Errorf("%w: objective references unknown variable %d", ErrModelShape, t.Var)
		}
		if math.IsNaN(t.Coef) || math.IsInf(t.Coef, 0) {
			return fmt.Errorf("%w: non-finite objective coefficient", ErrModelShape)
		}
	}

	// Stage 5: reference-engine feature matrix.
	if m.nQC > 1 {
		return fmt.Errorf("%w: more than one quadratic constraint", ErrUnsupported)
	}
	if m.nQC == 1 && m.nBin > 0 {
		return fmt.Errorf("%w: quadratic constraint with binary variables", ErrUnsupported)
	}

	return nil
}

// validateQuadBlock checks one (vars, Q) pair: every handle in range,
// Q square with side len(vars), all entries finite. A nil block passes.
func validateQuadBlock(vars []Var, q [][]float64, n int) error {
	if len(vars) == 0 && q == nil {
		return nil
	}
	if len(q) != len(vars) {
		return fmt.Errorf("%w: quadratic block is not square over its variables", ErrModelShape)
	}
	for i, rowQ := range q {
		if len(rowQ) != len(vars) {
			return fmt.Errorf("%w: quadratic block row %d has wrong length", ErrModelShape, i)
		}
		for _, v := range rowQ {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: non-finite quadratic coefficient", ErrModelShape)
			}
		}
	}
	for _, v := range vars {
		if int(v) < 0 || int(v) >= n {
			return fmt.Errorf("%w: quadratic block references unknown variable %d", ErrModelShape, v)
		}
	}

	return nil
}
