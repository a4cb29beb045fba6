// Package portfolio - formulation builder for the three solve modes.
//
// Every solve call constructs a fresh formulation against a scoped
// solver session, runs one blocking optimize, and decodes the result:
//
//   - MinimizeRisk       - min x'Σx      s.t. sum(x)=1, μ'x >= target
//   - MaximizeReturn     - max μ'x       s.t. sum(x)=1, x'Σx <= maxRisk
//   - EfficientPortfolio - max μ'x - γ/2·x'Σx over the full trading
//     model: long/short split, buy/sell split against initial holdings,
//     big-M indicator links, exclusivity, leverage cap, budget equality
//     with fee/cost terms, and the optional count/size limits.
//
// Nothing is shared across calls; the session is released before the
// call returns, optimal or not.
package portfolio

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlopt/solver"
)

// MinimizeRisk computes the minimum-variance portfolio that is fully
// invested and earns at least targetReturn.
//
// Returns ErrNoSolution when the engine terminates non-optimal (e.g.
// targetReturn exceeds every attainable return); the caller must check.
func (m *Model) MinimizeRisk(targetReturn float64) (Weights, error) {
	mdl := solver.New()
	defer mdl.Close()

	x := addWeightVars(mdl, m.n)
	mdl.AddConstr(unitSum(x), solver.Eq, 1)
	mdl.AddConstr(weighted(x, m.mu), solver.GE, targetReturn)
	mdl.SetObjective(solver.Minimize, nil, x, scaledSigma(m.sigma, 2))

	return m.runSolve(mdl, x)
}

// MaximizeReturn computes the maximum-return portfolio that is fully
// invested and whose variance does not exceed maxRisk.
func (m *Model) MaximizeReturn(maxRisk float64) (Weights, error) {
	mdl := solver.New()
	defer mdl.Close()

	x := addWeightVars(mdl, m.n)
	mdl.AddConstr(unitSum(x), solver.Eq, 1)
	mdl.AddQuadConstr(x, scaledSigma(m.sigma, 1), maxRisk)
	mdl.SetObjective(solver.Maximize, weighted(x, m.mu), nil, nil)

	return m.runSolve(mdl, x)
}

// EfficientPortfolio computes the efficient portfolio for the given
// risk-aversion coefficient gamma >= 0, maximizing μ'x - γ/2·x'Σx
// under the configured trading rules (see the Option constructors).
//
// Infeasible rule combinations - a minimum trade size no budget can
// satisfy, conflicting count limits - are legitimate inputs and yield
// ErrNoSolution, not a panic.
func (m *Model) EfficientPortfolio(gamma float64, opts ...Option) (Weights, error) {
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) || gamma < 0 {
		return Weights{}, fmt.Errorf("%w: gamma must be finite and non-negative", ErrBadInput)
	}
	o := gatherOptions(opts...)

	h := o.holdings
	if h == nil {
		h = make([]float64, m.n)
	}
	if len(h) != m.n {
		return Weights{}, fmt.Errorf("%w: initial holdings have length %d, want %d", ErrDimensionMismatch, len(h), m.n)
	}

	mdl := solver.New()
	defer mdl.Close()

	f := buildEfficient(mdl, m, o, h, gamma)

	return m.runSolve(mdl, f.x)
}

// formulation carries the per-call variable groups of the efficient
// model; discarded with the session when the solve returns.
type formulation struct {
	x, xLong, xShort, xBuy, xSell []solver.Var
	bLong, bShort, bBuy, bSell    []solver.Var
}

// buildEfficient assembles the mixed-binary trading model.
func buildEfficient(mdl *solver.Model, m *Model, o Options, h []float64, gamma float64) formulation {
	n := m.n
	s := o.maxTotalShort
	inf := math.Inf(1)

	var f formulation
	f.x = make([]solver.Var, n)
	f.xLong = make([]solver.Var, n)
	f.xShort = make([]solver.Var, n)
	f.xBuy = make([]solver.Var, n)
	f.xSell = make([]solver.Var, n)
	f.bLong = make([]solver.Var, n)
	f.bShort = make([]solver.Var, n)
	f.bBuy = make([]solver.Var, n)
	f.bSell = make([]solver.Var, n)

	// Implied bounds on x: the sign split caps a position at -S from
	// below and 1+S from above, so the weight variables carry those
	// bounds explicitly rather than ride on the equality rows alone.
	var i int
	for i = 0; i < n; i++ {
		f.x[i] = mdl.AddVar(-s, 1+s)
	}
	for i = 0; i < n; i++ {
		f.xLong[i] = mdl.AddVar(0, inf)
		f.xShort[i] = mdl.AddVar(0, inf)
		f.xBuy[i] = mdl.AddVar(0, inf)
		f.xSell[i] = mdl.AddVar(0, inf)
	}
	for i = 0; i < n; i++ {
		f.bLong[i] = mdl.AddBinary()
		f.bShort[i] = mdl.AddBinary()
		f.bBuy[i] = mdl.AddBinary()
		f.bSell[i] = mdl.AddBinary()
	}

	for i = 0; i < n; i++ {
		// Sign split x = x_long - x_short and trade split
		// x - h = x_buy - x_sell.
		mdl.AddConstr([]solver.Term{
			{Var: f.x[i], Coef: 1}, {Var: f.xLong[i], Coef: -1}, {Var: f.xShort[i], Coef: 1},
		}, solver.Eq, 0)
		mdl.AddConstr([]solver.Term{
			{Var: f.x[i], Coef: 1}, {Var: f.xBuy[i], Coef: -1}, {Var: f.xSell[i], Coef: 1},
		}, solver.Eq, h[i])

		// Big-M links. 1+S is the tightest valid constant: with the
		// budget pinning sum(x) and total shorts capped at S, no long
		// position or trade can exceed full reinvestment plus the
		// permitted leverage; shorts themselves cannot exceed S. At
		// S = 0 the short link collapses x_short (and b_short) to zero,
		// giving long-only behavior with no special case.
		mdl.AddConstr([]solver.Term{
			{Var: f.xLong[i], Coef: 1}, {Var: f.bLong[i], Coef: -(1 + s)},
		}, solver.LE, 0)
		mdl.AddConstr([]solver.Term{
			{Var: f.xShort[i], Coef: 1}, {Var: f.bShort[i], Coef: -s},
		}, solver.LE, 0)
		mdl.AddConstr([]solver.Term{
			{Var: f.xBuy[i], Coef: 1}, {Var: f.bBuy[i], Coef: -(1 + s)},
		}, solver.LE, 0)
		mdl.AddConstr([]solver.Term{
			{Var: f.xSell[i], Coef: 1}, {Var: f.bSell[i], Coef: -(1 + s)},
		}, solver.LE, 0)

		// A position/trade is long or short, never both at once.
		mdl.AddConstr([]solver.Term{
			{Var: f.bLong[i], Coef: 1}, {Var: f.bShort[i], Coef: 1},
		}, solver.LE, 1)
		mdl.AddConstr([]solver.Term{
			{Var: f.bBuy[i], Coef: 1}, {Var: f.bSell[i], Coef: 1},
		}, solver.LE, 1)

		if o.hasMinLong {
			mdl.AddConstr([]solver.Term{
				{Var: f.xBuy[i], Coef: 1}, {Var: f.bBuy[i], Coef: -o.minLong},
			}, solver.GE, 0)
		}
		if o.hasMinShort {
			mdl.AddConstr([]solver.Term{
				{Var: f.xSell[i], Coef: 1}, {Var: f.bSell[i], Coef: -o.minShort},
			}, solver.GE, 0)
		}
	}

	// Bound total leverage.
	mdl.AddConstr(unitSum(f.xShort), solver.LE, s)

	// Budget: fully invested once fees and costs are paid. Terms for
	// absent parameters are omitted entirely, not added with zero
	// multipliers.
	budget := unitSum(f.x)
	if o.hasFeesBuy {
		budget = append(budget, scaledTerms(f.bBuy, o.feesBuy)...)
	}
	if o.hasFeesSell {
		budget = append(budget, scaledTerms(f.bSell, o.feesSell)...)
	}
	if o.hasCostsBuy {
		budget = append(budget, scaledTerms(f.xBuy, o.costsBuy)...)
	}
	if o.hasCostsSell {
		budget = append(budget, scaledTerms(f.xSell, o.costsSell)...)
	}
	mdl.AddConstr(budget, solver.Eq, 1)

	if o.hasTrades {
		mdl.AddConstr(append(unitSum(f.bBuy), unitSum(f.bSell)...), solver.LE, float64(o.maxTrades))
	}
	if o.hasPositions {
		mdl.AddConstr(append(unitSum(f.bLong), unitSum(f.bShort)...), solver.LE, float64(o.maxPositions))
	}

	// Mean-variance objective; gamma = 0 degenerates to pure return
	// maximization and keeps the node relaxations linear.
	if gamma > 0 {
		mdl.SetObjective(solver.Maximize, weighted(f.x, m.mu), f.x, scaledSigma(m.sigma, -gamma))
	} else {
		mdl.SetObjective(solver.Maximize, weighted(f.x, m.mu), nil, nil)
	}

	return f
}

// runSolve performs the blocking optimize and maps the outcome: the
// decoded weight vector on optimal status, ErrNoSolution (carrying the
// status detail) otherwise.
func (m *Model) runSolve(mdl *solver.Model, x []solver.Var) (Weights, error) {
	sol, err := mdl.Solve()
	if err != nil {
		return Weights{}, err
	}
	if sol.Status != solver.StatusOptimal {
		return Weights{}, fmt.Errorf("%w: solver status %s", ErrNoSolution, sol.Status)
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = sol.X[v]
	}

	return m.decode(out), nil
}

// addWeightVars adds the n weight variables of the single-vector modes.
// These modes are long-only: the zero lower bound keeps the feasible
// region compact and makes gamma = 0 coincide with pure return
// maximization.
func addWeightVars(mdl *solver.Model, n int) []solver.Var {
	x := make([]solver.Var, n)
	for i := range x {
		x[i] = mdl.AddVar(0, math.Inf(1))
	}

	return x
}

// unitSum builds sum(vars) as a term list.
func unitSum(vars []solver.Var) []solver.Term {
	return scaledTerms(vars, 1)
}

// scaledTerms builds coef * sum(vars) as a term list.
func scaledTerms(vars []solver.Var, coef float64) []solver.Term {
	terms := make([]solver.Term, len(vars))
	for i, v := range vars {
		terms[i] = solver.Term{Var: v, Coef: coef}
	}

	return terms
}

// weighted builds sum(w[i] * vars[i]) as a term list.
func weighted(vars []solver.Var, w []float64) []solver.Term {
	terms := make([]solver.Term, len(vars))
	for i, v := range vars {
		terms[i] = solver.Term{Var: v, Coef: w[i]}
	}

	return terms
}

// scaledSigma returns s * Sigma as a fresh dense block for the solver.
func scaledSigma(sigma [][]float64, s float64) [][]float64 {
	out := make([][]float64, len(sigma))
	for i, row := range sigma {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = s * v
		}
	}

	return out
}
