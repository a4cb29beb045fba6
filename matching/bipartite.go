package matching

import "fmt"

// MaximumBipartite computes a maximum matching between nLeft left
// vertices and nRight right vertices joined by the given edges.
//
// The result lists matched edges ordered by their first appearance in
// the input; duplicate input edges are tolerated and can match at most
// once. Deterministic: the same input always yields the same matching.
//
// Errors: ErrBadInput on negative side sizes or out-of-range endpoints.
func MaximumBipartite(nLeft, nRight int, edges []Edge) ([]Edge, error) {
	if nLeft < 0 || nRight < 0 {
		return nil, fmt.Errorf("%w: side sizes %d, %d", ErrBadInput, nLeft, nRight)
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= nLeft || e.V < 0 || e.V >= nRight {
			return nil, fmt.Errorf("%w: edge %d joins (%d,%d), want [0,%d)x[0,%d)", ErrBadInput, i, e.U, e.V, nLeft, nRight)
		}
	}

	// Vertex layout: source, left side, right side, sink.
	source := 0
	left := func(u int) int { return 1 + u }
	right := func(v int) int { return 1 + nLeft + v }
	sink := 1 + nLeft + nRight

	net := newFlowNet(sink + 1)
	for u := 0; u < nLeft; u++ {
		net.addArc(source, left(u))
	}
	for v := 0; v < nRight; v++ {
		net.addArc(right(v), sink)
	}
	mid := make([]int, len(edges))
	for i, e := range edges {
		mid[i] = net.addArc(left(e.U), right(e.V))
	}

	net.maxFlow(source, sink)

	// A saturated middle arc is a matched pair.
	var matched []Edge
	for i, id := range mid {
		if net.caps[id] == 0 {
			matched = append(matched, edges[i])
		}
	}

	return matched, nil
}
