// Package exact_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal
// and avoid duplicating functionality that already lives in focused test
// files.
package exact_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/atsp/core"
	"github.com/katalvlaran/atsp/exact"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the base deterministic seed for instance generation.
	seedDet = int64(7)

	// maxWDet is the weight cap used by seeded random instances.
	maxWDet = int64(100)

	// goldenOptimal is the independently verified optimum of goldenInstance
	// (tours 3→1→0→2→3 and 3→2→0→1→3, both costing 80).
	goldenOptimal = int64(80)
)

// -----------------------------------------------------------------------------
// Instance builders
// -----------------------------------------------------------------------------

// mustDense wraps core.NewDense and fails the test on any constructor error.
func mustDense(t *testing.T, w [][]int64) *core.Dense {
	t.Helper()
	g, err := core.NewDense(w)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	return g
}

// goldenInstance returns the canonical 4-vertex instance with origin 3:
// w(0,1)=10 w(0,2)=15 w(0,3)=20, w(1,0)=10 w(1,2)=35 w(1,3)=25,
// w(2,0)=15 w(2,1)=35 w(2,3)=30, w(3,0)=20 w(3,1)=25 w(3,2)=30.
func goldenInstance(t *testing.T) *core.Dense {
	t.Helper()

	return mustDense(t, [][]int64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})
}

// constantInstance returns an n-vertex instance where every off-diagonal
// weight equals c; any Hamiltonian cycle costs exactly n·c.
func constantInstance(t *testing.T, n int, c int64) *core.Dense {
	t.Helper()
	w := make([][]int64, n)
	var i, j int
	for i = 0; i < n; i++ {
		w[i] = make([]int64, n)
		for j = 0; j < n; j++ {
			if i != j {
				w[i][j] = c
			}
		}
	}

	return mustDense(t, w)
}

// stubGraph is a minimal Graph used to trigger precondition sentinels
// that core.NewDense refuses to construct (e.g. n < 2).
type stubGraph struct{ n int }

func (s stubGraph) VertexCount() int          { return s.n }
func (s stubGraph) EdgeWeight(i, j int) int64 { return 0 }

var _ core.Graph = stubGraph{}

// -----------------------------------------------------------------------------
// Independent ground truth
// -----------------------------------------------------------------------------

// referenceOptimum computes the optimal cycle cost by plain recursive
// enumeration, sharing no code with the solvers under test. Only for
// tiny n.
func referenceOptimum(g core.Graph) int64 {
	var (
		n      = g.VertexCount()
		origin = n - 1
		used   = make([]bool, n-1)
		best   = int64(-1)
	)
	var walk func(last int, depth int, cost int64)
	walk = func(last int, depth int, cost int64) {
		if depth == n-1 {
			total := cost + g.EdgeWeight(last, origin)
			if best == -1 || total < best {
				best = total
			}

			return
		}
		for v := 0; v < n-1; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			walk(v, depth+1, cost+g.EdgeWeight(last, v))
			used[v] = false
		}
	}
	walk(origin, 0, 0)

	return best
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int // loop iterator
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustValidResult asserts that res carries a closed Hamiltonian tour
// anchored at the origin whose recomputed cost equals res.Cost.
func mustValidResult(t *testing.T, g core.Graph, res exact.Result) {
	t.Helper()
	var (
		n      = g.VertexCount()
		origin = n - 1
	)
	if len(res.Tour) != n+1 {
		t.Fatalf("tour length: got %d, want %d", len(res.Tour), n+1)
	}
	if res.Tour[0] != origin || res.Tour[n] != origin {
		t.Fatalf("tour not anchored at origin %d: %v", origin, res.Tour)
	}
	cost, err := exact.TourCost(g, res.Tour)
	if err != nil {
		t.Fatalf("TourCost rejected returned tour %v: %v", res.Tour, err)
	}
	if cost != res.Cost {
		t.Fatalf("tour cost %d does not match reported cost %d", cost, res.Cost)
	}
}

// mustUnchanged asserts that g still equals its pre-solve snapshot.
func mustUnchanged(t *testing.T, g *core.Dense, snapshot *core.Dense) {
	t.Helper()
	var i, j int
	for i = 0; i < g.VertexCount(); i++ {
		for j = 0; j < g.VertexCount(); j++ {
			if g.EdgeWeight(i, j) != snapshot.EdgeWeight(i, j) {
				t.Fatalf("graph mutated at (%d,%d): got %d, want %d",
					i, j, g.EdgeWeight(i, j), snapshot.EdgeWeight(i, j))
			}
		}
	}
}
