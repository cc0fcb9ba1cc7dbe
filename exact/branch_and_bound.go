// Package exact — reduced-cost-matrix Branch-and-Bound (Little's algorithm).
//
// The search maintains a frontier of partial-assignment nodes. Each node
// owns a working copy of the cost matrix, reduced so that every alive row
// and column contains a zero; the total subtracted during reduction is an
// admissible lower bound on any completion of the node's fixed edges.
// Branching picks the zero cell whose exclusion would raise the bound the
// most (the "highest-regret" zero) and produces two children: one that
// commits the edge (dropping its row and column and forbidding the edge
// that would close the merged path segment prematurely) and one that
// forbids it. A child whose bound already reaches the incumbent upper
// bound is pruned before it is ever enqueued.
//
// The frontier is a priority queue ordered by ascending lower bound, with
// ties broken toward nodes with more fixed edges (deeper, closer to a
// feasible completion) and finally by insertion order for determinism.
// The incumbent starts at the natural-order cycle cost and only ever
// decreases; when the smallest bound on the frontier reaches it, the
// incumbent is provably optimal and the search stops.
//
// Connectivity bookkeeping: every node carries next/prev arrays over the
// fixed edges. Committing i→j merges the segment ending at i with the
// segment starting at j; the edge from the merged segment's end back to
// its start is forced to Unreachable in the child matrix, so no subtree
// can close a cycle before all vertices are included.
//
// Complexity:
//   - Worst case exponential in n (exact search); reduction keeps each
//     node expansion at O(n²) time and O(n²) memory for its matrix copy.
package exact

import (
	"container/heap"

	"github.com/katalvlaran/atsp/core"
)

// bbNode is one partial assignment on the frontier. Nodes are immutable
// after construction; a popped node is expanded into at most two children
// and then discarded.
type bbNode struct {
	m        []int64 // n×n reduced working matrix, row-major; Unreachable marks banned cells
	rowAlive []bool  // rows still carrying an undecided outgoing edge
	colAlive []bool  // columns still carrying an undecided incoming edge
	next     []int   // fixed outgoing edge per vertex, -1 when undecided
	prev     []int   // fixed incoming edge per vertex, -1 when undecided
	bound    int64   // admissible lower bound (accumulated reductions)
	fixed    int     // number of committed edges
	row, col int     // highest-regret zero chosen for branching; row == -1 if none
	seq      uint64  // insertion order, final tie-break
}

// bbFrontier implements heap.Interface: bound ascending, fixed-edge count
// descending on ties, insertion order last.
type bbFrontier []*bbNode

func (f bbFrontier) Len() int { return len(f) }
func (f bbFrontier) Less(i, j int) bool {
	if f[i].bound != f[j].bound {
		return f[i].bound < f[j].bound
	}
	if f[i].fixed != f[j].fixed {
		return f[i].fixed > f[j].fixed
	}

	return f[i].seq < f[j].seq
}
func (f bbFrontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *bbFrontier) Push(x any) { *f = append(*f, x.(*bbNode)) }
func (f *bbFrontier) Pop() any {
	old := *f
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return node
}

// bbEngine holds the search state threaded through one solve call.
type bbEngine struct {
	n      int
	origin int
	g      core.Graph

	frontier  bbFrontier
	incumbent int64 // best complete cycle cost found so far (upper bound)
	bestTour  []int // closed tour realizing the incumbent
	seq       uint64
}

// push enqueues a node with the next insertion sequence number.
func (e *bbEngine) push(node *bbNode) {
	node.seq = e.seq
	e.seq++
	heap.Push(&e.frontier, node)
}

// newRoot copies the weight matrix, bans the diagonal, reduces and picks
// the root branching cell.
func (e *bbEngine) newRoot() *bbNode {
	var (
		n    = e.n
		node = &bbNode{
			m:        make([]int64, n*n),
			rowAlive: make([]bool, n),
			colAlive: make([]bool, n),
			next:     make([]int, n),
			prev:     make([]int, n),
			row:      -1,
			col:      -1,
		}
		i, j int
	)
	for i = 0; i < n; i++ {
		node.rowAlive[i] = true
		node.colAlive[i] = true
		node.next[i] = -1
		node.prev[i] = -1
		for j = 0; j < n; j++ {
			if i == j {
				node.m[i*n+j] = Unreachable // self-loops are never usable
				continue
			}
			node.m[i*n+j] = e.g.EdgeWeight(i, j)
		}
	}
	e.reduce(node)
	e.selectBranch(node)

	return node
}

// cloneNode deep-copies a parent into a fresh child shell.
func (e *bbEngine) cloneNode(parent *bbNode) *bbNode {
	var child = &bbNode{
		m:        append([]int64(nil), parent.m...),
		rowAlive: append([]bool(nil), parent.rowAlive...),
		colAlive: append([]bool(nil), parent.colAlive...),
		next:     append([]int(nil), parent.next...),
		prev:     append([]int(nil), parent.prev...),
		bound:    parent.bound,
		fixed:    parent.fixed,
		row:      -1,
		col:      -1,
	}

	return child
}

// reduce subtracts row minima then column minima over the alive submatrix
// and folds the subtracted total into the node's bound. Rows that are
// entirely banned are skipped; so are zero (no-op) and banned column
// minima. Arithmetic never touches Unreachable cells.
//
// Complexity: O(n²).
func (e *bbEngine) reduce(node *bbNode) {
	var (
		n    = e.n
		i, j int
		min  int64
	)

	// Row reduction.
	for i = 0; i < n; i++ {
		if !node.rowAlive[i] {
			continue
		}
		min = Unreachable
		for j = 0; j < n; j++ {
			if node.colAlive[j] && node.m[i*n+j] < min {
				min = node.m[i*n+j]
			}
		}
		if min == Unreachable {
			continue // row entirely banned
		}
		if min > 0 {
			for j = 0; j < n; j++ {
				if node.colAlive[j] && node.m[i*n+j] != Unreachable {
					node.m[i*n+j] -= min
				}
			}
		}
		node.bound += min
	}

	// Column reduction.
	for j = 0; j < n; j++ {
		if !node.colAlive[j] {
			continue
		}
		min = Unreachable
		for i = 0; i < n; i++ {
			if node.rowAlive[i] && node.m[i*n+j] < min {
				min = node.m[i*n+j]
			}
		}
		if min == Unreachable || min == 0 {
			continue // banned or already reduced
		}
		for i = 0; i < n; i++ {
			if node.rowAlive[i] && node.m[i*n+j] != Unreachable {
				node.m[i*n+j] -= min
			}
		}
		node.bound += min
	}
}

// selectBranch scans the reduced matrix for zero cells, computes each
// zero's regret (row penalty + column penalty: the bound increase its
// exclusion would cost) and designates the highest-regret zero as the
// node's branching cell. Scanning is row-major and the first maximum
// wins, so the choice is deterministic. node.row stays -1 when the alive
// submatrix carries no zero (dead subtree).
//
// Complexity: O(n²) cells, O(n) penalty scan per zero; O(n³) worst case,
// O(n²) in practice after reduction.
func (e *bbEngine) selectBranch(node *bbNode) {
	var (
		n          = e.n
		i, j, k    int
		rowPen     int64
		colPen     int64
		bestRegret = int64(-1)
	)
	for i = 0; i < n; i++ {
		if !node.rowAlive[i] {
			continue
		}
		for j = 0; j < n; j++ {
			if !node.colAlive[j] || node.m[i*n+j] != 0 {
				continue
			}

			// Row penalty: cheapest alternative exit from i.
			rowPen = Unreachable
			for k = 0; k < n; k++ {
				if k != j && node.colAlive[k] && node.m[i*n+k] < rowPen {
					rowPen = node.m[i*n+k]
				}
			}
			// Column penalty: cheapest alternative entry into j.
			colPen = Unreachable
			for k = 0; k < n; k++ {
				if k != i && node.rowAlive[k] && node.m[k*n+j] < colPen {
					colPen = node.m[k*n+j]
				}
			}

			if rowPen+colPen > bestRegret {
				bestRegret = rowPen + colPen
				node.row = i
				node.col = j
			}
		}
	}
}

// includeChild commits the parent's branching edge i→j: drop row i and
// column j, record the edge in the connectivity chain, forbid the edge
// that would close the merged path segment early, then re-reduce and pick
// the child's own branching cell.
func (e *bbEngine) includeChild(parent *bbNode) *bbNode {
	var (
		n     = e.n
		i     = parent.row
		j     = parent.col
		child = e.cloneNode(parent)
	)
	child.rowAlive[i] = false
	child.colAlive[j] = false
	child.next[i] = j
	child.prev[j] = i
	child.fixed++

	// Walk the merged segment to its endpoints and ban its closure.
	var (
		start = i
		end   = j
	)
	for child.prev[start] != -1 {
		start = child.prev[start]
	}
	for child.next[end] != -1 {
		end = child.next[end]
	}
	child.m[end*n+start] = Unreachable

	e.reduce(child)
	if child.fixed < e.n-2 {
		e.selectBranch(child)
	}

	return child
}

// excludeChild forbids the parent's branching edge i→j, leaving the
// matrix dimensions unchanged, then re-reduces and picks the child's own
// branching cell. The fixed-edge count does not change.
func (e *bbEngine) excludeChild(parent *bbNode) *bbNode {
	var child = e.cloneNode(parent)
	child.m[parent.row*e.n+parent.col] = Unreachable
	e.reduce(child)
	e.selectBranch(child)

	return child
}

// finalize costs the fully determined completion of a node with n−2
// fixed edges. Exactly two open path segments remain, so the two closing
// edges are forced: end(A)→start(B) and end(B)→start(A). The cycle cost
// is taken from the original weights, and the incumbent is updated only
// if improved (it is monotonically non-increasing by construction).
func (e *bbEngine) finalize(node *bbNode) {
	var (
		n      = e.n
		starts [2]int
		ends   [2]int
		si, ei int
		v      int
	)
	for v = 0; v < n; v++ {
		if node.prev[v] == -1 {
			starts[si] = v
			si++
		}
		if node.next[v] == -1 {
			ends[ei] = v
			ei++
		}
	}

	// Match each end with the start of the *other* segment.
	var (
		endA   = ends[0]
		endB   = ends[1]
		startA = endA
	)
	for node.prev[startA] != -1 {
		startA = node.prev[startA]
	}
	var startB = starts[0]
	if startB == startA {
		startB = starts[1]
	}

	// Total cycle cost: every fixed edge plus the two forced closures.
	var cost int64
	for v = 0; v < n; v++ {
		if node.next[v] != -1 {
			cost += e.g.EdgeWeight(v, node.next[v])
		}
	}
	cost += e.g.EdgeWeight(endA, startB)
	cost += e.g.EdgeWeight(endB, startA)

	if cost >= e.incumbent {
		return
	}
	e.incumbent = cost

	// Materialize the cycle: fixed chain plus the forced closures.
	var next = append([]int(nil), node.next...)
	next[endA] = startB
	next[endB] = startA
	var (
		tour = make([]int, n+1)
		idx  int
	)
	v = e.origin
	for idx = 0; idx < n; idx++ {
		tour[idx] = v
		v = next[v]
	}
	tour[n] = e.origin
	e.bestTour = tour
}

// expand pops a node's two children, pruning each against the incumbent.
// An include child reaching n−2 fixed edges is fully determined: it is
// finalized against the incumbent and never enqueued.
func (e *bbEngine) expand(node *bbNode) {
	var include = e.includeChild(node)
	if include.fixed == e.n-2 {
		e.finalize(include)
	} else if include.bound < e.incumbent && include.row != -1 {
		e.push(include)
	}

	var exclude = e.excludeChild(node)
	if exclude.bound < e.incumbent && exclude.row != -1 {
		e.push(exclude)
	}
}

// BranchAndBound solves the instance exactly via best-first
// reduced-matrix branch-and-bound and returns the optimal cycle cost
// together with a closed optimal tour.
//
// Contracts:
//   - g non-nil with n ≥ 2 (sentinels from types.go otherwise).
//   - g is read-only for the duration of the call; every node owns its
//     matrix copy exclusively.
//
// Loop invariant: the incumbent is the cost of a feasible cycle and
// never increases; every frontier bound is admissible. Termination with
// smallest bound ≥ incumbent therefore certifies optimality.
func BranchAndBound(g core.Graph) (Result, error) {
	n, err := validateGraph(g)
	if err != nil {
		return Result{}, err
	}

	// Incumbent seed: the natural-order cycle (always feasible on a
	// complete instance).
	var (
		perm = naturalPerm(n)
		e    = bbEngine{
			n:         n,
			origin:    n - 1,
			g:         g,
			incumbent: cycleCost(g, n, perm),
			bestTour:  closedTour(n, perm),
		}
	)
	if n == 2 {
		// One feasible cycle; nothing to branch on.
		return Result{Tour: e.bestTour, Cost: e.incumbent}, nil
	}

	var root = e.newRoot()
	if root.row != -1 && root.bound < e.incumbent {
		e.push(root)
	}

	for e.frontier.Len() > 0 {
		if e.frontier[0].bound >= e.incumbent {
			break // smallest bound reaches the upper bound: optimal
		}
		e.expand(heap.Pop(&e.frontier).(*bbNode))
	}

	return Result{Tour: e.bestTour, Cost: e.incumbent}, nil
}
