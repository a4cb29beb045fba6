// Package solver - branch-and-bound over binary variables.
//
// Mixed-binary models are solved by a depth-first search with
// deterministic branching and eps-guarded incumbent pruning:
//  1. Each node is a pair of bound vectors; fixing a binary tightens its
//     interval to [0,0] or [1,1], relaxing leaves [0,1].
//  2. Node relaxations run on the continuous path (exact simplex for
//     linear objectives, guarded ADMM for quadratic ones), so the node
//     bound is a true lower bound on every completion of the node.
//  3. Branching picks the most fractional binary (index tiebreak) and
//     explores the rounded side first; fully deterministic.
//  4. A soft time budget is honored per node event; exhausting it yields
//     StatusInterrupted, matching the terminal-status contract of Solve.
//
// Complexity: worst case O(2^k) nodes for k binaries; pruning and the
// exactness of LP node relaxations govern practical behavior.
package solver

import "math"

// bnbMaxNodes caps the search tree as a hard safety net; realistic
// formulations prune long before this.
const bnbMaxNodes = 1_000_000

// bnbNode holds one subproblem's variable bounds.
type bnbNode struct {
	lb, ub []float64
}

// bnbEngine holds search state and policies. A dedicated engine struct
// (instead of anonymous closures) keeps dependencies explicit and the
// hot-path state predictable.
type bnbEngine struct {
	r   *runState
	eps float64

	stack []bnbNode

	bestX   []float64
	bestObj float64
	found   bool

	nodes  int
	pruned int
}

// solveBranchAndBound is the mixed-binary entry point.
func (r *runState) solveBranchAndBound() Solution {
	e := bnbEngine{
		r:       r,
		eps:     r.m.opts.eps,
		bestObj: math.Inf(1),
	}

	root := bnbNode{
		lb: append([]float64(nil), r.m.lb...),
		ub: append([]float64(nil), r.m.ub...),
	}
	e.stack = append(e.stack, root)

	for len(e.stack) > 0 {
		if r.expired() || e.nodes >= bnbMaxNodes {
			return Solution{Status: StatusInterrupted}
		}

		node := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]
		e.nodes++

		rel := r.solveContinuous(node.lb, node.ub)
		switch rel.Status {
		case StatusInfeasible:
			continue
		case StatusUnbounded:
			// An unbounded relaxation at any node means the objective is
			// not bounded over the integral completions either way the
			// caller can use; report it as the terminal verdict.
			return Solution{Status: StatusUnbounded}
		case StatusInterrupted:
			return Solution{Status: StatusInterrupted}
		}

		obj := r.minObjValue(rel.X)
		if e.found && obj >= e.bestObj-e.eps {
			e.pruned++

			continue
		}

		branch := e.mostFractional(rel.X)
		if branch < 0 {
			// Integral within eps: new incumbent.
			e.bestObj = obj
			e.bestX = append(e.bestX[:0], rel.X...)
			e.found = true
			r.log.Debug().Int("node", e.nodes).Float64("obj", obj).Msg("solver: bnb incumbent")

			continue
		}
		e.push(node, branch, rel.X[branch])
	}

	r.log.Debug().Int("nodes", e.nodes).Int("pruned", e.pruned).Bool("found", e.found).
		Msg("solver: bnb search exhausted")

	if !e.found {
		return Solution{Status: StatusInfeasible}
	}
	e.snapBinaries()

	return Solution{Status: StatusOptimal, X: e.bestX}
}

// mostFractional returns the binary variable farthest from integrality,
// or -1 when every binary is integral within eps. Ties break on the
// lower index for determinism.
func (e *bnbEngine) mostFractional(x []float64) int {
	best, bestDist := -1, e.eps
	for i, isBin := range e.r.m.binary {
		if !isBin {
			continue
		}
		dist := math.Abs(x[i] - math.Round(x[i]))
		if dist > bestDist {
			best, bestDist = i, dist
		}
	}

	return best
}

// push enqueues both children of node on variable v; the side the
// relaxation leans toward is pushed last so the LIFO pops it first.
func (e *bnbEngine) push(node bnbNode, v int, frac float64) {
	zero := bnbNode{lb: append([]float64(nil), node.lb...), ub: append([]float64(nil), node.ub...)}
	zero.lb[v], zero.ub[v] = 0, 0
	one := bnbNode{lb: append([]float64(nil), node.lb...), ub: append([]float64(nil), node.ub...)}
	one.lb[v], one.ub[v] = 1, 1

	if frac >= 0.5 {
		e.stack = append(e.stack, zero, one)
	} else {
		e.stack = append(e.stack, one, zero)
	}
}

// snapBinaries rounds incumbent binaries onto exact {0,1}; node
// relaxations leave them within eps of integrality.
func (e *bnbEngine) snapBinaries() {
	for i, isBin := range e.r.m.binary {
		if isBin {
			e.bestX[i] = math.Round(e.bestX[i])
		}
	}
}
