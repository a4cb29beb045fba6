// Package lvlopt is a collection of self-contained mathematical-optimization
// mods, from constrained portfolio selection to network flows and matchings,
// each exposed as a small, focused Go package.
//
// 🚀 What is lvlopt?
//
//	A pure-Go optimization toolkit that brings together:
//		• portfolio/    - constrained mean-variance portfolio selection
//		  (risk minimization, return maximization, efficient portfolios
//		  with fees, costs, trade/position limits and shorting bounds)
//		• solver/       - the mathematical-program engine behind the mods:
//		  model description (variables, bounds, linear & quadratic
//		  constraints, objectives) plus a reference LP/QP/MIQP implementation
//		• mincostflow/  - minimum-cost network flow as a linear program
//		• matching/     - maximum bipartite matching (blocking-flow)
//
// ✨ Why choose lvlopt?
//
//   - Business rules in, tight formulations out: fixed-charge fees, big-M
//     indicator links and cardinality limits are built for you
//   - Explicit outcomes – infeasibility is a result to inspect, never a panic
//   - Deterministic – no randomness, stable branching, reproducible runs
//   - Small surface – each mod is one constructor and a handful of options
//
// Quick taste:
//
//	m, err := portfolio.New(sigma, mu)
//	if err != nil { … }
//	w, err := m.EfficientPortfolio(0.5,
//	    portfolio.WithMaxTrades(10),
//	    portfolio.WithFeesBuy(0.0025),
//	)
//	if errors.Is(err, portfolio.ErrNoSolution) {
//	    // constraints conflict: relax and retry
//	}
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
