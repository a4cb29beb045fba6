// SPDX-License-Identifier: MIT

// Package matching - maximum bipartite matching via blocking flows.
//
// The bipartite graph is reduced to a unit-capacity flow network
// (source -> left side -> right side -> sink) and solved with Dinic's
// level-graph / blocking-flow scheme. On unit networks this runs in
// O(E*sqrt(V)); the residual arcs double as the matching read-out.
package matching

// flowNet is a unit-capacity residual network over integer vertices.
// Arcs are stored pairwise: arc i and arc i^1 are each other's reverse,
// so pushing over one frees the other.
type flowNet struct {
	heads []int   // arc target vertex
	caps  []int   // residual capacity, 0 or 1
	adj   [][]int // per-vertex arc indices, in insertion order
}

func newFlowNet(vertices int) *flowNet {
	return &flowNet{adj: make([][]int, vertices)}
}

// addArc inserts u->v with unit capacity plus its zero-capacity
// reverse, returning the forward arc index.
func (f *flowNet) addArc(u, v int) int {
	id := len(f.heads)
	f.heads = append(f.heads, v, u)
	f.caps = append(f.caps, 1, 0)
	f.adj[u] = append(f.adj[u], id)
	f.adj[v] = append(f.adj[v], id+1)

	return id
}

// levels runs the BFS phase: distance from source over positive-capacity
// arcs. Reports whether the sink is still reachable.
func (f *flowNet) levels(source, sink int, level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, id := range f.adj[u] {
			if v := f.heads[id]; f.caps[id] > 0 && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level[sink] >= 0
}

// push advances one DFS augmentation along the level graph. iter keeps
// per-vertex progress so dead arcs are never rescanned within a phase.
func (f *flowNet) push(u, sink int, level, iter []int) bool {
	if u == sink {
		return true
	}
	for ; iter[u] < len(f.adj[u]); iter[u]++ {
		id := f.adj[u][iter[u]]
		v := f.heads[id]
		if f.caps[id] == 0 || level[v] != level[u]+1 {
			continue
		}
		if f.push(v, sink, level, iter) {
			f.caps[id]--
			f.caps[id^1]++

			return true
		}
	}

	return false
}

// maxFlow runs the full Dinic loop and returns the flow value.
func (f *flowNet) maxFlow(source, sink int) int {
	total := 0
	level := make([]int, len(f.adj))
	iter := make([]int, len(f.adj))
	for f.levels(source, sink, level) {
		for i := range iter {
			iter[i] = 0
		}
		for f.push(source, sink, level, iter) {
			total++
		}
	}

	return total
}
