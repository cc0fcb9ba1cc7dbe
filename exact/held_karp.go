// Package exact — Held–Karp dynamic programming over vertex subsets.
//
// The state space is every (end, mask) pair where mask ⊆ {0..n−2} is the
// set of already visited non-origin vertices and end ∈ mask is the vertex
// the partial path currently stops at. memo[end][mask] holds the minimum
// cost of a path origin → … → end visiting exactly mask.
//
// Recurrence:
//
//	base:    memo[j][{j}]  = w(origin, j)
//	general: memo[j][S]    = min over k ∈ S\{j} of memo[k][S\{j}] + w(k, j)
//	answer:  min over j of memo[j][Full] + w(j, origin)
//
// States are computed lazily by memoized recursion and cached exactly
// once: a sentinel marks "unsolved" and a cached value is never
// overwritten. Each recursive call strictly shrinks the subset, with the
// preset singleton base cases terminating the descent.
//
// Complexity:
//   - Time:  O(n²·2ⁿ)
//   - Space: O(n·2ⁿ) — the memo and parent tables; practical for n ≲ 20.
package exact

import "github.com/katalvlaran/atsp/core"

// unsolved marks a Held–Karp state whose value has not been computed yet.
// Weights are non-negative, so no real state cost can collide with it.
const unsolved int64 = -1

// HeldKarp solves the instance exactly via the subset dynamic program
// and returns the optimal cycle cost together with a closed optimal tour
// reconstructed from the parent table.
//
// Contracts:
//   - g non-nil with n ≥ 2 (sentinels from types.go otherwise).
//   - g is read-only for the duration of the call.
func HeldKarp(g core.Graph) (Result, error) {
	n, err := validateGraph(g)
	if err != nil {
		return Result{}, err
	}

	var (
		origin = n - 1      // fixed tour origin
		m      = n - 1      // number of non-origin vertices
		size   = 1 << m     // number of subsets of {0..n−2}
		full   = size - 1   // the complete subset
	)

	// Allocate memo and parent tables; preset the singleton base cases.
	var (
		memo   = make([][]int64, m)
		parent = make([][]int, m)
		end, s int
	)
	for end = 0; end < m; end++ {
		memo[end] = make([]int64, size)
		parent[end] = make([]int, size)
		for s = 0; s < size; s++ {
			memo[end][s] = unsolved
			parent[end][s] = -1
		}
		memo[end][1<<end] = g.EdgeWeight(origin, end)
	}

	// solve returns memo[end][mask], computing and caching it on first use.
	var solve func(mask, end int) int64
	solve = func(mask, end int) int64 {
		if memo[end][mask] != unsolved {
			return memo[end][mask]
		}

		var (
			sub   = mask &^ (1 << end) // visited set without the end vertex
			best  = Unreachable
			bestK = -1
			k     int
			cost  int64
		)
		for k = 0; k < m; k++ {
			if sub&(1<<k) == 0 {
				continue // k not in the subset
			}
			cost = solve(sub, k) + g.EdgeWeight(k, end)
			if cost < best {
				best = cost
				bestK = k
			}
		}
		memo[end][mask] = best
		parent[end][mask] = bestK

		return best
	}

	// Fold in the return edge to the origin over every possible last vertex.
	var (
		best = Unreachable
		last = -1
		cost int64
	)
	for end = 0; end < m; end++ {
		cost = solve(full, end) + g.EdgeWeight(end, origin)
		if cost < best {
			best = cost
			last = end
		}
	}

	// Reconstruct the optimal tour by walking the parent table backwards.
	var (
		tour = make([]int, n+1)
		mask = full
		j    = last
		pos  int
		p    int
	)
	tour[0] = origin
	tour[n] = origin
	for pos = n - 1; pos >= 1; pos-- {
		tour[pos] = j
		p = parent[j][mask]
		mask &^= 1 << j
		j = p
	}

	return Result{Tour: tour, Cost: best}, nil
}
