package mincostflow_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/mincostflow"
)

// TestSolve_Chain pushes 10 units along a single path and checks cost
// accounting per arc.
func TestSolve_Chain(t *testing.T) {
	arcs := []mincostflow.Arc{
		{From: 0, To: 1, Capacity: 16, Cost: 1},
		{From: 1, To: 2, Capacity: 10, Cost: 2},
	}
	demands := []float64{-10, 0, 10}

	res, err := mincostflow.Solve(arcs, demands)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, res.Cost, 1e-9)
	assert.InDelta(t, 10.0, res.Flows[0], 1e-9)
	assert.InDelta(t, 10.0, res.Flows[1], 1e-9)
}

// TestSolve_PrefersCheapRoute routes through the cheaper of two parallel
// paths until its capacity saturates, then spills over.
func TestSolve_PrefersCheapRoute(t *testing.T) {
	arcs := []mincostflow.Arc{
		{From: 0, To: 1, Capacity: 4, Cost: 1},  // cheap, tight
		{From: 0, To: 1, Capacity: 10, Cost: 5}, // expensive fallback
	}
	demands := []float64{-6, 6}

	res, err := mincostflow.Solve(arcs, demands)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, res.Flows[0], 1e-9, "cheap arc saturates first")
	assert.InDelta(t, 2.0, res.Flows[1], 1e-9)
	assert.InDelta(t, 14.0, res.Cost, 1e-9)
}

// TestSolve_Transshipment covers an intermediate node with zero demand
// and a diamond-shaped network.
func TestSolve_Transshipment(t *testing.T) {
	arcs := []mincostflow.Arc{
		{From: 0, To: 1, Capacity: 5, Cost: 1},
		{From: 0, To: 2, Capacity: 5, Cost: 2},
		{From: 1, To: 3, Capacity: 5, Cost: 1},
		{From: 2, To: 3, Capacity: 5, Cost: 1},
	}
	demands := []float64{-8, 0, 0, 8}

	res, err := mincostflow.Solve(arcs, demands)
	require.NoError(t, err)
	// 5 units via 0-1-3 (cost 2 each), 3 via 0-2-3 (cost 3 each).
	assert.InDelta(t, 19.0, res.Cost, 1e-9)
	assert.InDelta(t, 5.0, res.Flows[0], 1e-9)
	assert.InDelta(t, 3.0, res.Flows[1], 1e-9)
}

// TestSolve_Unsatisfiable reports the no-solution outcome when capacity
// cannot carry the demand.
func TestSolve_Unsatisfiable(t *testing.T) {
	arcs := []mincostflow.Arc{
		{From: 0, To: 1, Capacity: 3, Cost: 1},
	}
	demands := []float64{-5, 5}

	_, err := mincostflow.Solve(arcs, demands)
	assert.ErrorIs(t, err, mincostflow.ErrNoSolution)
}

// TestSolve_UnbalancedDemands: totals that cannot cancel have no
// feasible flow.
func TestSolve_UnbalancedDemands(t *testing.T) {
	arcs := []mincostflow.Arc{
		{From: 0, To: 1, Capacity: 10, Cost: 1},
	}
	demands := []float64{-2, 5}

	_, err := mincostflow.Solve(arcs, demands)
	assert.ErrorIs(t, err, mincostflow.ErrNoSolution)
}

// TestSolve_IsolatedDemandingNode: a node that requests flow but has no
// arcs is detected without running the engine.
func TestSolve_IsolatedDemandingNode(t *testing.T) {
	arcs := []mincostflow.Arc{
		{From: 0, To: 1, Capacity: 10, Cost: 1},
	}
	demands := []float64{-1, 1, 3}

	_, err := mincostflow.Solve(arcs, demands)
	assert.ErrorIs(t, err, mincostflow.ErrNoSolution)
}

// TestSolve_BadDescriptions walks the validation: endpoints out of
// range, negative capacity, non-finite cost and demand.
func TestSolve_BadDescriptions(t *testing.T) {
	demands := []float64{-1, 1}

	_, err := mincostflow.Solve([]mincostflow.Arc{{From: 0, To: 5, Capacity: 1, Cost: 1}}, demands)
	assert.ErrorIs(t, err, mincostflow.ErrBadInput, "endpoint out of range")

	_, err = mincostflow.Solve([]mincostflow.Arc{{From: 0, To: 1, Capacity: -1, Cost: 1}}, demands)
	assert.ErrorIs(t, err, mincostflow.ErrBadInput, "negative capacity")

	_, err = mincostflow.Solve([]mincostflow.Arc{{From: 0, To: 1, Capacity: 1, Cost: math.Inf(1)}}, demands)
	assert.ErrorIs(t, err, mincostflow.ErrBadInput, "infinite cost")

	_, err = mincostflow.Solve([]mincostflow.Arc{{From: 0, To: 1, Capacity: 1, Cost: 1}}, []float64{math.NaN(), 1})
	assert.ErrorIs(t, err, mincostflow.ErrBadInput, "NaN demand")
}

// TestSolve_UncappedArc allows infinite capacity on an arc.
func TestSolve_UncappedArc(t *testing.T) {
	arcs := []mincostflow.Arc{
		{From: 0, To: 1, Capacity: math.Inf(1), Cost: 2},
	}
	demands := []float64{-7, 7}

	res, err := mincostflow.Solve(arcs, demands)
	require.NoError(t, err)
	assert.InDelta(t, 14.0, res.Cost, 1e-9)
}
