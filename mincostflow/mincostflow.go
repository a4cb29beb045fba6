// SPDX-License-Identifier: MIT

// Package mincostflow - network assembly and the one-call solve.
//
// The network is expressed in incidence form and handed to the solver
// package as a pure LP:
//
//	min   cost' f
//	s.t.  inflow(j) - outflow(j) == demand[j]   for every node j
//	      0 <= f[i] <= capacity[i]              for every arc i
//
// Positive demand requests flow at a node, negative demand supplies
// it. Balanced totals are not required up front; an unbalanced network
// simply has no feasible flow and reports ErrNoSolution.
package mincostflow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlopt/solver"
)

// Solve computes a minimum-cost flow over len(demands) nodes. The arc
// list defines the network; flows come back in arc order.
//
// Errors:
//   - ErrBadInput on a malformed description (endpoint out of range,
//     negative/non-finite capacity, non-finite cost or demand).
//   - ErrNoSolution when the demands cannot be met.
func Solve(arcs []Arc, demands []float64) (Result, error) {
	if err := validate(arcs, demands); err != nil {
		return Result{}, err
	}

	mdl := solver.New()
	defer mdl.Close()

	flow := make([]solver.Var, len(arcs))
	cost := make([]solver.Term, len(arcs))
	for i, a := range arcs {
		flow[i] = mdl.AddVar(0, a.Capacity)
		cost[i] = solver.Term{Var: flow[i], Coef: a.Cost}
	}

	// Node balance rows. A self-loop moves flow nowhere; its two
	// incidence entries cancel and the arc drops out of the row.
	balance := make([][]solver.Term, len(demands))
	for i, a := range arcs {
		if a.From == a.To {
			continue
		}
		balance[a.From] = append(balance[a.From], solver.Term{Var: flow[i], Coef: -1})
		balance[a.To] = append(balance[a.To], solver.Term{Var: flow[i], Coef: 1})
	}
	for j, row := range balance {
		if row == nil && demands[j] != 0 {
			return Result{}, fmt.Errorf("%w: node %d demands %v but has no arcs", ErrNoSolution, j, demands[j])
		}
		if row != nil {
			mdl.AddConstr(row, solver.Eq, demands[j])
		}
	}

	mdl.SetObjective(solver.Minimize, cost, nil, nil)

	sol, err := mdl.Solve()
	if err != nil {
		return Result{}, err
	}
	if sol.Status != solver.StatusOptimal {
		return Result{}, fmt.Errorf("%w: solver status %s", ErrNoSolution, sol.Status)
	}

	out := Result{Cost: sol.Obj, Flows: make([]float64, len(arcs))}
	for i, v := range flow {
		out.Flows[i] = sol.X[v]
	}

	return out, nil
}

// validate rejects malformed descriptions before any model is built.
func validate(arcs []Arc, demands []float64) error {
	n := len(demands)
	for j, d := range demands {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("%w: demand %d is %v", ErrBadInput, j, d)
		}
	}
	for i, a := range arcs {
		if a.From < 0 || a.From >= n || a.To < 0 || a.To >= n {
			return fmt.Errorf("%w: arc %d endpoints (%d,%d) outside [0,%d)", ErrBadInput, i, a.From, a.To, n)
		}
		if math.IsNaN(a.Capacity) || a.Capacity < 0 {
			return fmt.Errorf("%w: arc %d capacity %v", ErrBadInput, i, a.Capacity)
		}
		if math.IsNaN(a.Cost) || math.IsInf(a.Cost, 0) {
			return fmt.Errorf("%w: arc %d cost %v", ErrBadInput, i, a.Cost)
		}
	}

	return nil
}
