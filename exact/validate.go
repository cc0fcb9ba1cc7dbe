// Package exact - shared fail-fast precondition checks.
//
// Inputs are assumed well-formed beyond what is checked here (finite
// non-negative weights, square shape — the core constructors enforce
// those). A malformed instance is a precondition violation and fails
// fast with a sentinel instead of silently computing a wrong answer.
package exact

import "github.com/katalvlaran/atsp/core"

// validateGraph verifies the solver preconditions shared by all three
// solvers and returns the vertex count n on success.
//
// Complexity: O(1).
func validateGraph(g core.Graph) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	var n = g.VertexCount()
	if n < 2 {
		return 0, ErrTooFewVertices
	}

	return n, nil
}
