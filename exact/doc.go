// Package exact provides three exact solvers for the Asymmetric Traveling
// Salesman Problem (ATSP) over the core.Graph capability, plus a unified
// dispatcher.
//
// Overview:
//
//   - BruteForce enumerates all (n−1)! permutations of the non-origin
//     vertices via iterative minimal-swap generation (Heap's counters) and
//     keeps the running minimum. O(n!·n) time, O(n) extra space.
//   - HeldKarp runs the memoized dynamic program over (end, subset)
//     states. O(n²·2ⁿ) time, O(n·2ⁿ) space — exponential but strictly
//     better than factorial; practical for n ≲ 20.
//   - BranchAndBound performs best-first search over partial edge
//     assignments with reduced-cost-matrix lower bounds (Little's
//     algorithm): row/column reduction, highest-regret zero branching,
//     include/exclude children, and a connectivity chain forbidding
//     premature subcycle closure. Worst case exponential; pruning makes
//     it the practical choice among the three.
//
// All solvers fix vertex n−1 as the tour origin, return the exact optimal
// cycle cost, and report a closed optimal tour [n−1, …, n−1] of length
// n+1. Identical inputs always produce identical results.
//
// Numeric model:
//
//   - Costs are int64. Callers must pick weights so that n·max(weight)
//     fits in int64; this is a correctness precondition, not a runtime
//     check. Unreachable is the internal infinity sentinel: larger than
//     any achievable bound, safe under a single addition.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:            a nil Graph was passed to a solver.
//   - ErrTooFewVertices:      the instance has fewer than 2 vertices.
//   - ErrUnsupportedAlgorithm: Solve received an unknown Algorithm.
//   - ErrBadTour:             TourCost received a malformed tour.
//
// Concurrency:
//
//   - Every solver call owns its working structures exclusively and never
//     mutates the input graph. Concurrent calls on independent graphs are
//     safe; a single call is not internally parallelized, and no
//     cancellation or deadline is built in (impose one externally).
package exact
