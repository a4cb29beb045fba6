// Package mincostflow solves the minimum-cost flow problem on directed
// networks with arc capacities, arc costs and node demands.
//
// 🚀 What is min-cost flow?
//
//	Given a directed graph where each arc carries a per-unit cost and a
//	capacity, and each node requests (positive demand) or supplies
//	(negative demand) flow, find the cheapest flow that balances every
//	node.  Classic applications:
//	  • transportation & shipment planning
//	  • assignment and scheduling reductions
//	  • network routing under link budgets
//
// ✨ Key properties:
//   - one-call API – Solve(arcs, demands) returns total cost plus a
//     per-arc flow vector in input order
//   - explicit outcomes – unsatisfiable demands are a legitimate input
//     and report ErrNoSolution, not a panic
//   - exact – the network is solved as a linear program on an exact
//     simplex path, so integral inputs yield integral flows
//
// ⚙️ Usage:
//
//	arcs := []mincostflow.Arc{
//	  {From: 0, To: 1, Capacity: 16, Cost: 1},
//	  {From: 1, To: 2, Capacity: 10, Cost: 2},
//	}
//	demands := []float64{-10, 0, 10} // node 0 supplies, node 2 requests
//
//	res, err := mincostflow.Solve(arcs, demands)
//	if errors.Is(err, mincostflow.ErrNoSolution) { … }
//	_ = res.Cost   // 30
//	_ = res.Flows  // [10, 10]
//
// Complexity is that of the underlying simplex solve: small and
// medium networks solve exactly; see the solver package for the engine
// contracts.
package mincostflow
