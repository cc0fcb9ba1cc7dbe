// Package core: the graph capability and sentinel error set.
// This file defines ONLY the Graph interface and package-level sentinel
// errors used across the package. All constructors MUST return these
// sentinels and tests MUST check them via errors.Is. No function panics
// on user-triggered error conditions; panics are reserved for programmer
// errors (out-of-range indices on a validated instance).
package core

import "errors"

// Sentinel errors returned by instance constructors.
var (
	// ErrNilWeights indicates that a nil weight matrix was passed to NewDense.
	ErrNilWeights = errors.New("core: weight matrix is nil")

	// ErrNonSquare indicates that the weight matrix is not square
	// (some row length differs from the number of rows).
	ErrNonSquare = errors.New("core: weight matrix is not square")

	// ErrTooFewVertices indicates an instance with fewer than 2 vertices;
	// a Hamiltonian cycle needs at least two.
	ErrTooFewVertices = errors.New("core: instance requires at least 2 vertices")

	// ErrNegativeWeight indicates a negative off-diagonal edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadMaxWeight indicates a non-positive weight cap passed to RandomComplete.
	ErrBadMaxWeight = errors.New("core: maximum weight must be positive")
)

// Graph is the read-only capability every exact solver consumes:
// a complete directed weighted graph over vertices 0..n−1, with vertex
// n−1 designated as the fixed tour origin.
//
// Contracts:
//   - VertexCount returns n ≥ 2 for any valid instance.
//   - EdgeWeight(i, j) returns a finite non-negative weight for i ≠ j
//     with 0 ≤ i, j < n; the value for i == j is unspecified and ignored
//     by all solvers.
//   - Implementations must be immutable for the duration of a solve.
type Graph interface {
	// VertexCount reports the number of vertices n.
	VertexCount() int

	// EdgeWeight reports the directed weight of edge i→j.
	EdgeWeight(i, j int) int64
}
