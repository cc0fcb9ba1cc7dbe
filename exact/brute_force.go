// Package exact — exhaustive permutation search.
//
// BruteForce fixes vertex n−1 as the tour origin and enumerates every
// permutation of the remaining n−1 vertices with Heap's counter-driven
// minimal-swap scheme: each successor permutation is produced by a single
// swap, so generation costs O(1) amortized per permutation and the cycle
// cost is re-evaluated in O(n). Completeness and uniqueness of the
// enumeration are what correctness rests on; the visiting order is
// irrelevant.
//
// Complexity:
//   - Time:  O(n!·n) — (n−1)! permutations, O(n) evaluation each.
//   - Space: O(n) — the permutation buffer, the swap counters and the
//     best tour found so far.
package exact

import "github.com/katalvlaran/atsp/core"

// BruteForce solves the instance exactly by exhaustive enumeration and
// returns the optimal cycle cost together with a closed optimal tour.
//
// Contracts:
//   - g non-nil with n ≥ 2 (sentinels from types.go otherwise).
//   - g is read-only for the duration of the call.
//
// The running minimum is seeded from the natural-order permutation, so a
// single-permutation instance (n == 2) resolves without entering the
// generation loop.
func BruteForce(g core.Graph) (Result, error) {
	n, err := validateGraph(g)
	if err != nil {
		return Result{}, err
	}

	var (
		m        = n - 1          // number of permuted (non-origin) vertices
		perm     = naturalPerm(n) // working permutation, mutated in place
		best     = cycleCost(g, n, perm)
		bestPerm = make([]int, m) // snapshot of the best ordering
	)
	copy(bestPerm, perm)

	// Heap's algorithm, iterative form. counters[i] records how many
	// swaps have been applied at slot i; resetting it walks back down to
	// regenerate all sub-permutations after a higher slot advances.
	var (
		counters = make([]int, m)
		i        = 1
		swap     int   // index swapped with slot i
		cost     int64 // cost of the freshly generated permutation
	)
	for i < m {
		if counters[i] < i {
			if i%2 == 0 {
				swap = 0
			} else {
				swap = counters[i]
			}
			perm[swap], perm[i] = perm[i], perm[swap]
			counters[i]++
			i = 1

			cost = cycleCost(g, n, perm)
			if cost < best {
				best = cost
				copy(bestPerm, perm)
			}
		} else {
			counters[i] = 0
			i++
		}
	}

	return Result{Tour: closedTour(n, bestPerm), Cost: best}, nil
}
