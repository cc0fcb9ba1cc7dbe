// Package exact — cost utilities shared by the solvers.
//
// These helpers compute the total weight of a Hamiltonian cycle given as
// a vertex index tour. They are minimal, allocation-conscious and
// side-effect free.
package exact

import "github.com/katalvlaran/atsp/core"

// TourCost sums the edge weights along a closed tour and validates that
// the tour is a Hamiltonian cycle: length n+1, Tour[0] == Tour[n], every
// vertex visited exactly once, all indices in range.
//
// Contract:
//   - g must be a valid instance (see validateGraph).
//   - Returns ErrBadTour on any structural violation.
//
// Complexity: O(n) time, O(n) extra space (the visited set).
func TourCost(g core.Graph, tour []int) (int64, error) {
	n, err := validateGraph(g)
	if err != nil {
		return 0, err
	}
	if len(tour) != n+1 || tour[0] != tour[n] {
		return 0, ErrBadTour
	}

	var (
		seen    = make([]bool, n)
		sum     int64
		i, u, v int
	)
	for i = 0; i < n; i++ {
		u = tour[i]
		v = tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrBadTour
		}
		if seen[u] {
			return 0, ErrBadTour // vertex repeated before closure
		}
		seen[u] = true
		sum += g.EdgeWeight(u, v)
	}

	return sum, nil
}

// cycleCost evaluates the cycle induced by a permutation of the
// non-origin vertices: origin→perm[0], consecutive pairs, and the return
// edge perm[last]→origin. The origin is vertex n−1 by convention.
//
// Callers guarantee perm is a permutation of 0..n−2; no validation here
// (hot path of the brute-force enumeration).
//
// Complexity: O(n).
func cycleCost(g core.Graph, n int, perm []int) int64 {
	var (
		origin = n - 1
		sum    = g.EdgeWeight(origin, perm[0])
		i      int
	)
	for i = 0; i+1 < len(perm); i++ {
		sum += g.EdgeWeight(perm[i], perm[i+1])
	}
	sum += g.EdgeWeight(perm[len(perm)-1], origin)

	return sum
}

// closedTour assembles the canonical closed tour [origin, perm…, origin]
// from a permutation of the non-origin vertices.
//
// Complexity: O(n) time, O(n) space.
func closedTour(n int, perm []int) []int {
	var (
		origin = n - 1
		out    = make([]int, n+1)
	)
	out[0] = origin
	copy(out[1:], perm)
	out[n] = origin

	return out
}

// naturalPerm returns the identity ordering [0, 1, …, n−2] of the
// non-origin vertices — the deterministic seed for running minima and
// the branch-and-bound incumbent.
//
// Complexity: O(n).
func naturalPerm(n int) []int {
	var (
		perm = make([]int, n-1)
		i    int
	)
	for i = 0; i < n-1; i++ {
		perm[i] = i
	}

	return perm
}
