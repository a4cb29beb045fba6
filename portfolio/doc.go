// Package portfolio builds and solves constrained mean-variance
// portfolio models: minimum-risk, maximum-return and risk-adjusted
// efficient allocations over a fixed asset universe.
//
// 🚀 What is portfolio?
//
//	A Markowitz-style optimizer wrapped in three one-call modes:
//	  • MinimizeRisk(r)       – least-variance portfolio earning ≥ r
//	  • MaximizeReturn(σ²)    – highest-return portfolio with risk ≤ σ²
//	  • EfficientPortfolio(γ) – maximize μ'x − γ/2·x'Σx under real
//	    trading rules: shorting caps, transaction fees and costs,
//	    trade/position count limits, minimum trade sizes, and
//	    rebalancing from initial holdings
//
// ✨ Key properties:
//   - plain or labeled inputs – Sigma and mu arrive as [][]float64 /
//     []float64 or as Frame / Series; labeled inputs yield labeled
//     Weights in the same canonical ordering
//   - immutable models – a Model never changes after New; each solve
//     builds its own scoped formulation, so concurrent solves on one
//     Model need no coordination
//   - explicit outcomes – conflicting trading limits are legitimate
//     inputs: they surface as ErrNoSolution, checked with errors.Is,
//     never as a panic
//
// ⚙️ Usage:
//
//	sigma := [][]float64{{0.04, 0.006}, {0.006, 0.09}}
//	mu := []float64{0.08, 0.12}
//
//	m, err := portfolio.New(sigma, mu)
//	if err != nil { … }
//
//	w, err := m.EfficientPortfolio(3.0,
//	  portfolio.WithMaxTotalShort(0.3),
//	  portfolio.WithMaxTrades(2),
//	  portfolio.WithFeesBuy(0.0005),
//	)
//	if errors.Is(err, portfolio.ErrNoSolution) { … }
//
// The trading rules make the efficient model a mixed-binary quadratic
// program; it is assembled against the solver package and handed to its
// reference engine in one blocking call. See example_test.go for worked
// scenarios.
package portfolio
