// Package exact - unified dispatcher for the exact solvers.
//
// Solve is the canonical entry point: validate once, route to the
// requested algorithm, return its Result unchanged. All three routes are
// exact, so no post-processing is ever applied.
package exact

import "github.com/katalvlaran/atsp/core"

// Solve routes to the solver selected by opts.Algo.
//
// Contracts:
//   - g non-nil with n ≥ 2 (sentinels from types.go otherwise).
//   - Unknown opts.Algo values yield ErrUnsupportedAlgorithm.
//
// Complexity: per chosen algorithm (see BruteForce, HeldKarp,
// BranchAndBound).
func Solve(g core.Graph, opts Options) (Result, error) {
	// Validate up front so every route fails identically on bad input.
	if _, err := validateGraph(g); err != nil {
		return Result{}, err
	}

	switch opts.Algo {
	case BruteForceSearch:
		return BruteForce(g)
	case HeldKarpDP:
		return HeldKarp(g)
	case ReductionBnB:
		return BranchAndBound(g)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}
