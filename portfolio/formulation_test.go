package portfolio_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/portfolio"
)

// Two-asset universe with independent returns; small enough that every
// optimum below is derivable by hand.
var (
	sigma2 = [][]float64{{0.04, 0}, {0, 0.09}}
	mu2    = []float64{0.08, 0.12}
)

func newModel2(t *testing.T) *portfolio.Model {
	t.Helper()
	m, err := portfolio.New(sigma2, mu2)
	require.NoError(t, err)

	return m
}

// TestMinimizeRisk_BindingReturn: requiring 0.10 forces exactly half
// the budget into the second asset (0.08 + 0.04*t = 0.10 at t = 0.5).
func TestMinimizeRisk_BindingReturn(t *testing.T) {
	m := newModel2(t)

	w, err := m.MinimizeRisk(0.10)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, w.Values[0], 1e-4)
	assert.InDelta(t, 0.5, w.Values[1], 1e-4)
}

// TestMinimizeRisk_SlackReturn: an easy target leaves the return row
// slack and the solve lands on the global minimum-variance point
// t = 0.04/0.13.
func TestMinimizeRisk_SlackReturn(t *testing.T) {
	m := newModel2(t)

	w, err := m.MinimizeRisk(0.05)
	require.NoError(t, err)
	assert.InDelta(t, 0.09/0.13, w.Values[0], 1e-4)
	assert.InDelta(t, 0.04/0.13, w.Values[1], 1e-4)
}

// TestMinimizeRisk_Unattainable: no long-only unit-sum portfolio earns
// above the best single asset.
func TestMinimizeRisk_Unattainable(t *testing.T) {
	m := newModel2(t)

	_, err := m.MinimizeRisk(0.50)
	assert.ErrorIs(t, err, portfolio.ErrNoSolution)
}

// TestMaximizeReturn_SlackRisk: a generous risk cap reduces the solve
// to a pure return maximization, concentrating on the best asset.
func TestMaximizeReturn_SlackRisk(t *testing.T) {
	m := newModel2(t)

	w, err := m.MaximizeReturn(1.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, w.Values[0], 1e-6)
	assert.InDelta(t, 1.0, w.Values[1], 1e-6)
}

// TestMaximizeReturn_BindingRisk: capping variance at 0.05 stops short
// of full concentration; the boundary solves
// 0.04(1-t)^2 + 0.09 t^2 = 0.05.
func TestMaximizeReturn_BindingRisk(t *testing.T) {
	m := newModel2(t)

	w, err := m.MaximizeReturn(0.05)
	require.NoError(t, err)

	want := (0.08 + math.Sqrt(0.0116)) / 0.26
	assert.InDelta(t, want, w.Values[1], 1e-3)
	assert.InDelta(t, 1-want, w.Values[0], 1e-3)

	var risk float64
	for i, wi := range w.Values {
		for j, wj := range w.Values {
			risk += sigma2[i][j] * wi * wj
		}
	}
	assert.LessOrEqual(t, risk, 0.05+1e-6, "risk cap is honored")
}

// TestEfficient_ZeroGammaMatchesMaxReturn: with no risk aversion and no
// trading limits, the efficient portfolio is the return maximizer.
func TestEfficient_ZeroGammaMatchesMaxReturn(t *testing.T) {
	m := newModel2(t)

	eff, err := m.EfficientPortfolio(0)
	require.NoError(t, err)

	ret, err := m.MaximizeReturn(1.0)
	require.NoError(t, err)

	assert.InDeltaSlice(t, ret.Values, eff.Values, 1e-6)
}

// TestEfficient_RiskAverseSpreads: a positive gamma trades return for
// diversification; with gamma = 1 the interior KKT point puts weight
// 5/13 on the first asset.
func TestEfficient_RiskAverseSpreads(t *testing.T) {
	m := newModel2(t)

	w, err := m.EfficientPortfolio(1.0)
	require.NoError(t, err)

	// mu_i - gamma*Sigma_ii*x_i equalized under sum(x)=1:
	// 0.08 - 0.04a = 0.12 - 0.09(1-a)  =>  0.13a = 0.05  =>  a = 5/13.
	assert.InDelta(t, 5.0/13.0, w.Values[0], 1e-3)
	assert.InDelta(t, 8.0/13.0, w.Values[1], 1e-3)
	assert.InDelta(t, 1.0, w.Values[0]+w.Values[1], 1e-6, "fully invested")
}

// TestEfficient_Idempotent: repeated solves on one model return the
// same allocation; nothing leaks between calls.
func TestEfficient_Idempotent(t *testing.T) {
	m := newModel2(t)

	first, err := m.EfficientPortfolio(2.0)
	require.NoError(t, err)
	second, err := m.EfficientPortfolio(2.0)
	require.NoError(t, err)

	assert.Equal(t, first.Values, second.Values)
}

// TestEfficient_NegativeGamma: risk aversion below zero is a caller
// fault, reported before any model is built.
func TestEfficient_NegativeGamma(t *testing.T) {
	m := newModel2(t)

	_, err := m.EfficientPortfolio(-0.5)
	assert.ErrorIs(t, err, portfolio.ErrBadInput)

	_, err = m.EfficientPortfolio(math.NaN())
	assert.ErrorIs(t, err, portfolio.ErrBadInput)
}

// TestEfficient_ShortingCap: with no risk aversion and shorting allowed
// up to 0.3, the optimizer shorts the weaker asset to the cap and
// leverages the stronger one to 1.3.
func TestEfficient_ShortingCap(t *testing.T) {
	m := newModel2(t)

	w, err := m.EfficientPortfolio(0, portfolio.WithMaxTotalShort(0.3))
	require.NoError(t, err)
	assert.InDelta(t, -0.3, w.Values[0], 1e-6)
	assert.InDelta(t, 1.3, w.Values[1], 1e-6)
}

// TestEfficient_ShortedRebalance: shorting combined with a rebalance
// from even holdings; with no risk aversion the weaker asset is sold
// through zero down to the cap.
func TestEfficient_ShortedRebalance(t *testing.T) {
	m := newModel2(t)

	w, err := m.EfficientPortfolio(0,
		portfolio.WithMaxTotalShort(0.2),
		portfolio.WithInitialHoldings([]float64{0.5, 0.5}),
	)
	require.NoError(t, err)
	assert.InDelta(t, -0.2, w.Values[0], 1e-6)
	assert.InDelta(t, 1.2, w.Values[1], 1e-6)
}

// TestEfficient_LongOnlyByDefault: without the shorting option every
// weight is non-negative.
func TestEfficient_LongOnlyByDefault(t *testing.T) {
	m := newModel2(t)

	w, err := m.EfficientPortfolio(1.0)
	require.NoError(t, err)
	for i, v := range w.Values {
		assert.GreaterOrEqual(t, v, -1e-6, "weight %d", i)
	}
}

// TestEfficient_MaxTrades: limiting the rebalance to one trade forces
// full concentration even when diversification would pay.
func TestEfficient_MaxTrades(t *testing.T) {
	m, err := portfolio.New(
		[][]float64{{0.04, 0}, {0, 0.04}},
		[]float64{0.10, 0.10},
	)
	require.NoError(t, err)

	w, err := m.EfficientPortfolio(1.0, portfolio.WithMaxTrades(1))
	require.NoError(t, err)

	// One buy must carry the whole budget.
	nonzero := 0
	for _, v := range w.Values {
		if math.Abs(v) > 1e-6 {
			nonzero++
			assert.InDelta(t, 1.0, v, 1e-4)
		}
	}
	assert.Equal(t, 1, nonzero)
}

// TestEfficient_MinLongThreshold: every executed buy respects the
// minimum size; small allocations are forced to zero or up to the bar.
func TestEfficient_MinLongThreshold(t *testing.T) {
	m, err := portfolio.New(
		[][]float64{{0.04, 0, 0}, {0, 0.05, 0}, {0, 0, 0.06}},
		[]float64{0.09, 0.10, 0.11},
	)
	require.NoError(t, err)

	w, err := m.EfficientPortfolio(1.0, portfolio.WithMinLong(0.25))
	require.NoError(t, err)

	var total float64
	for i, v := range w.Values {
		if v > 1e-6 {
			assert.GreaterOrEqual(t, v, 0.25-1e-4, "weight %d below the minimum buy", i)
		}
		total += v
	}
	assert.InDelta(t, 1.0, total, 1e-4, "fully invested")
}

// TestEfficient_InfeasibleLimits: a 0.2 fee per buy plus a 0.9 minimum
// buy cannot fit a unit budget; the conflict is a reported outcome.
func TestEfficient_InfeasibleLimits(t *testing.T) {
	m := newModel2(t)

	_, err := m.EfficientPortfolio(1.0,
		portfolio.WithFeesBuy(0.2),
		portfolio.WithMinLong(0.9),
	)
	assert.ErrorIs(t, err, portfolio.ErrNoSolution)
}

// TestEfficient_RebalanceWithCosts: starting fully invested in the
// weaker asset, proportional costs shrink what the switch can buy:
// selling one unit and buying t costs 0.1(1+t), so t = 9/11.
func TestEfficient_RebalanceWithCosts(t *testing.T) {
	m, err := portfolio.New(sigma2, []float64{0.05, 0.12})
	require.NoError(t, err)

	w, err := m.EfficientPortfolio(0,
		portfolio.WithInitialHoldings([]float64{1, 0}),
		portfolio.WithCostsBuy(0.1),
		portfolio.WithCostsSell(0.1),
	)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, w.Values[0], 1e-6)
	assert.InDelta(t, 9.0/11.0, w.Values[1], 1e-6)
}

// TestEfficient_HoldingsLengthChecked: a holdings vector of the wrong
// size is rejected before the solve.
func TestEfficient_HoldingsLengthChecked(t *testing.T) {
	m := newModel2(t)

	_, err := m.EfficientPortfolio(1.0, portfolio.WithInitialHoldings([]float64{1, 0, 0}))
	assert.ErrorIs(t, err, portfolio.ErrDimensionMismatch)
}

// TestOptions_PanicOnInvalid pins the constructor contracts.
func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() { portfolio.WithMaxTrades(-1) })
	assert.Panics(t, func() { portfolio.WithMaxPositions(-2) })
	assert.Panics(t, func() { portfolio.WithFeesBuy(-0.1) })
	assert.Panics(t, func() { portfolio.WithCostsSell(math.NaN()) })
	assert.Panics(t, func() { portfolio.WithMinLong(math.Inf(1)) })
	assert.Panics(t, func() { portfolio.WithMaxTotalShort(-0.5) })
}
