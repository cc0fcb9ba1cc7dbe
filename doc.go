// Package atsp is a compact toolkit for solving the Asymmetric Traveling
// Salesman Problem exactly — no heuristics, no approximation, just the
// provably optimal cycle cost.
//
// 🚀 What is atsp?
//
//	A deterministic, dependency-light library that brings together three
//	exact solvers over a single read-only graph capability:
//		• Brute force: iterative minimal-swap permutation enumeration, O(n!·n)
//		• Held–Karp: memoized dynamic programming over vertex subsets, O(n²·2ⁿ)
//		• Branch-and-Bound: best-first search with reduced-cost-matrix lower
//		  bounds (Little's algorithm), exact with aggressive pruning
//
// ✨ Why choose atsp?
//
//   - Exactness guaranteed – every solver returns the true optimum or a sentinel error
//   - Deterministic – identical inputs yield identical tours, no time-based randomness
//   - Pure Go – no cgo, no hidden deps
//   - Re-entrant – no shared state; concurrent solves on independent graphs are safe
//
// Everything is organized under two subpackages:
//
//	core/  — the Graph capability, the immutable Dense weight matrix and
//	         a deterministic random-instance generator
//	exact/ — the three exact solvers plus a unified dispatcher
//
// Quick orientation: vertex n−1 is the fixed tour origin, weights are
// non-negative int64, and a solved Result carries both the optimal cost
// and a closed tour [n−1, …, n−1] of length n+1.
//
//	go get github.com/katalvlaran/atsp
package atsp
