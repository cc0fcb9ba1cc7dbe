// Package exact: result type, algorithm selection and sentinel errors.
// Algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. No solver panics on user input.
package exact

import (
	"errors"
	"math"
)

// Sentinel errors returned by the exact solvers.
var (
	// ErrNilGraph indicates that a nil core.Graph was passed to a solver.
	ErrNilGraph = errors.New("exact: graph is nil")

	// ErrTooFewVertices indicates an instance with fewer than 2 vertices;
	// the solvers are undefined below that (precondition violation).
	ErrTooFewVertices = errors.New("exact: instance requires at least 2 vertices")

	// ErrUnsupportedAlgorithm indicates an Algorithm value the dispatcher
	// does not recognize.
	ErrUnsupportedAlgorithm = errors.New("exact: unsupported algorithm")

	// ErrBadTour indicates a tour that is not a closed Hamiltonian cycle
	// over the graph's vertices.
	ErrBadTour = errors.New("exact: malformed tour")
)

// Unreachable is the infinity sentinel used by the branch-and-bound
// working matrices: larger than any achievable bound, yet small enough
// that one stray addition cannot overflow int64. Reduction and penalty
// code skip sentinel cells instead of doing arithmetic on them.
const Unreachable int64 = math.MaxInt64 / 4

// Result holds the outcome of an exact solve.
type Result struct {
	// Tour is the optimal cycle as vertex indices, starting and ending at
	// the origin n−1. For n vertices, len(Tour) == n+1 and
	// Tour[0] == Tour[n] == n−1.
	Tour []int

	// Cost is the total weight of the optimal cycle.
	Cost int64
}

// Algorithm selects which exact solver the dispatcher routes to.
type Algorithm int

const (
	// BruteForceSearch enumerates all permutations of the non-origin
	// vertices. Exact; O(n!·n).
	BruteForceSearch Algorithm = iota

	// HeldKarpDP runs the subset dynamic program. Exact; O(n²·2ⁿ).
	HeldKarpDP

	// ReductionBnB runs reduced-cost-matrix branch-and-bound
	// (Little's algorithm). Exact; worst case exponential, pruned.
	ReductionBnB
)

// Options configures the dispatcher. Solvers themselves are pure and
// synchronous, so the only knob is the algorithm choice.
type Options struct {
	// Algo selects the solver; see the Algorithm constants.
	Algo Algorithm
}

// DefaultOptions returns the canonical dispatcher configuration:
// Held–Karp, the best general-purpose default below n ≈ 20.
func DefaultOptions() Options {
	return Options{Algo: HeldKarpDP}
}
