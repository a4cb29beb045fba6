// Package solver describes and solves linear, quadratic and
// mixed-binary mathematical programs behind the lvlopt mods.
//
// 🚀 What is solver?
//
//	A model-description surface plus a pure-Go reference engine:
//	  • variables: continuous with bounds, or binary {0,1}
//	  • constraints: linear ==, <=, >= rows; one convex quadratic row
//	  • objective: linear + quadratic expression, Minimize or Maximize
//	  • one blocking Solve per call; terminal Status, never a panic
//
// ✨ Key properties:
//   - explicit outcomes – infeasible/unbounded/interrupted are statuses
//     on the Solution, inspected by the caller; errors are reserved for
//     malformed model descriptions
//   - deterministic – stable branching order, no randomness
//   - scoped sessions – a Model is built, solved, and Closed; nothing is
//     shared between models or between Solve calls
//
// ⚙️ Usage:
//
//	m := solver.New()
//	defer m.Close()
//
//	x := m.AddVar(0, math.Inf(1))
//	y := m.AddBinary()
//	m.AddConstr([]solver.Term{{x, 1}, {y, -2}}, solver.LE, 0)
//	m.SetObjective(solver.Maximize, []solver.Term{{x, 1}}, nil, nil)
//
//	sol, err := m.Solve()
//	if err != nil { … }                       // malformed model
//	if sol.Status != solver.StatusOptimal { … } // expected outcome
//
// Under the hood the reference engine routes by model shape: pure LPs
// run an exact simplex; continuous QPs run an operator-splitting
// iteration behind an exact feasibility guard; binaries trigger a
// deterministic branch-and-bound over the continuous paths; a single
// quadratic constraint is handled by Lagrangian bisection. See the
// per-file headers for contracts and complexity notes.
package solver
