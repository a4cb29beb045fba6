package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/matching"
)

// TestMaximumBipartite_PerfectMatching: a cycle-shaped graph admits a
// perfect matching.
func TestMaximumBipartite_PerfectMatching(t *testing.T) {
	edges := []matching.Edge{
		{U: 0, V: 0}, {U: 0, V: 1},
		{U: 1, V: 1}, {U: 1, V: 2},
		{U: 2, V: 2}, {U: 2, V: 0},
	}

	m, err := matching.MaximumBipartite(3, 3, edges)
	require.NoError(t, err)
	assert.Len(t, m, 3)
	assertValidMatching(t, m)
}

// TestMaximumBipartite_Bottleneck: two left vertices fighting over one
// right vertex cap the matching at one.
func TestMaximumBipartite_Bottleneck(t *testing.T) {
	edges := []matching.Edge{
		{U: 0, V: 0},
		{U: 1, V: 0},
	}

	m, err := matching.MaximumBipartite(2, 1, edges)
	require.NoError(t, err)
	assert.Len(t, m, 1)
}

// TestMaximumBipartite_NeedsAugmentation: the greedy choice (0-0) must
// be undone to reach size two; the blocking-flow search handles it.
func TestMaximumBipartite_NeedsAugmentation(t *testing.T) {
	edges := []matching.Edge{
		{U: 0, V: 0},
		{U: 1, V: 0}, // vertex 1 can only take right 0
	}
	// Give vertex 0 an alternative so both can match.
	edges = append(edges, matching.Edge{U: 0, V: 1})

	m, err := matching.MaximumBipartite(2, 2, edges)
	require.NoError(t, err)
	assert.Len(t, m, 2)
	assertValidMatching(t, m)
}

// TestMaximumBipartite_EmptyAndIsolated: no edges means no matching;
// isolated vertices are fine.
func TestMaximumBipartite_EmptyAndIsolated(t *testing.T) {
	m, err := matching.MaximumBipartite(4, 4, nil)
	require.NoError(t, err)
	assert.Empty(t, m)

	m, err = matching.MaximumBipartite(3, 3, []matching.Edge{{U: 0, V: 2}})
	require.NoError(t, err)
	assert.Equal(t, []matching.Edge{{U: 0, V: 2}}, m)
}

// TestMaximumBipartite_DuplicateEdges: a repeated edge can match at
// most once.
func TestMaximumBipartite_DuplicateEdges(t *testing.T) {
	edges := []matching.Edge{
		{U: 0, V: 0}, {U: 0, V: 0}, {U: 0, V: 0},
	}

	m, err := matching.MaximumBipartite(1, 1, edges)
	require.NoError(t, err)
	assert.Len(t, m, 1)
}

// TestMaximumBipartite_Deterministic: same input, same matching.
func TestMaximumBipartite_Deterministic(t *testing.T) {
	edges := []matching.Edge{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 0},
		{U: 1, V: 1}, {U: 2, V: 2}, {U: 3, V: 0},
	}

	first, err := matching.MaximumBipartite(4, 3, edges)
	require.NoError(t, err)
	second, err := matching.MaximumBipartite(4, 3, edges)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestMaximumBipartite_BadInput rejects negative sizes and endpoints
// outside the declared sides.
func TestMaximumBipartite_BadInput(t *testing.T) {
	_, err := matching.MaximumBipartite(-1, 2, nil)
	assert.ErrorIs(t, err, matching.ErrBadInput)

	_, err = matching.MaximumBipartite(2, 2, []matching.Edge{{U: 2, V: 0}})
	assert.ErrorIs(t, err, matching.ErrBadInput)

	_, err = matching.MaximumBipartite(2, 2, []matching.Edge{{U: 0, V: -1}})
	assert.ErrorIs(t, err, matching.ErrBadInput)
}

// assertValidMatching checks that no vertex appears twice.
func assertValidMatching(t *testing.T, m []matching.Edge) {
	t.Helper()
	left := map[int]bool{}
	right := map[int]bool{}
	for _, e := range m {
		assert.False(t, left[e.U], "left vertex %d matched twice", e.U)
		assert.False(t, right[e.V], "right vertex %d matched twice", e.V)
		left[e.U] = true
		right[e.V] = true
	}
}
