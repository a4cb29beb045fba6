// Package matching computes maximum bipartite matchings: the largest
// set of edges between two vertex sides such that no vertex is used
// twice.
//
// 🚀 What is bipartite matching?
//
//	Given workers on one side, tasks on the other, and edges marking
//	who can do what, a maximum matching assigns as many workers to
//	tasks as the graph allows.  Also the core of:
//	  • ad/request allocation
//	  • seat, room and slot assignment
//	  • support sets for sparse recovery problems
//
// ✨ Key properties:
//   - combinatorial, not numeric – the graph is reduced to a
//     unit-capacity flow network and solved with blocking flows, so
//     results are exact integers with no tolerance knobs
//   - deterministic – matched edges come back ordered by their first
//     appearance in the input
//   - O(E·√V) on the unit network
//
// ⚙️ Usage:
//
//	edges := []matching.Edge{{U: 0, V: 1}, {U: 1, V: 1}, {U: 1, V: 0}}
//
//	m, err := matching.MaximumBipartite(2, 2, edges)
//	if err != nil { … }
//	// m == [{0 1} {1 0}]
//
// Side sizes are declared explicitly; isolated vertices are allowed
// and simply stay unmatched.
package matching
