// Package exact_test provides end-to-end checks across the three solvers.
// Goals:
//  1. All solvers agree on the optimal cost for random well-formed
//     instances with n ≤ 10.
//  2. Every returned tour is a valid Hamiltonian cycle whose recomputed
//     cost matches the reported optimum.
//  3. Repeated solves leave the instance untouched and reproduce the
//     same answer.
package exact_test

import (
	"testing"

	"github.com/katalvlaran/atsp/core"
	"github.com/katalvlaran/atsp/exact"
)

// TestIntegration_AllSolversAgree sweeps sizes and seeds and requires
// exact cost agreement between brute force, Held–Karp and
// branch-and-bound. Brute force dominates the runtime, so sizes stay
// small; the agreement property is what matters.
func TestIntegration_AllSolversAgree(t *testing.T) {
	var (
		n    int
		seed int64
	)
	for n = 2; n <= 10; n++ {
		for seed = 1; seed <= 3; seed++ {
			g, err := core.RandomComplete(n, maxWDet, int64(n)*100+seed)
			if err != nil {
				t.Fatalf("RandomComplete(n=%d) failed: %v", n, err)
			}

			bf, err := exact.BruteForce(g)
			if err != nil {
				t.Fatalf("BruteForce(n=%d) failed: %v", n, err)
			}
			hk, err := exact.HeldKarp(g)
			if err != nil {
				t.Fatalf("HeldKarp(n=%d) failed: %v", n, err)
			}
			bb, err := exact.BranchAndBound(g)
			if err != nil {
				t.Fatalf("BranchAndBound(n=%d) failed: %v", n, err)
			}

			if bf.Cost != hk.Cost || bf.Cost != bb.Cost {
				t.Fatalf("n=%d seed=%d disagreement: brute=%d heldkarp=%d bnb=%d",
					n, seed, bf.Cost, hk.Cost, bb.Cost)
			}
			mustValidResult(t, g, bf)
			mustValidResult(t, g, hk)
			mustValidResult(t, g, bb)
		}
	}
}

// TestIntegration_SolveDispatcherAgrees routes the same instance through
// the dispatcher with every algorithm and cross-checks the direct calls.
func TestIntegration_SolveDispatcherAgrees(t *testing.T) {
	g, err := core.RandomComplete(8, maxWDet, seedDet)
	if err != nil {
		t.Fatalf("RandomComplete failed: %v", err)
	}
	want, err := exact.HeldKarp(g)
	if err != nil {
		t.Fatalf("HeldKarp failed: %v", err)
	}

	for _, algo := range []exact.Algorithm{
		exact.BruteForceSearch, exact.HeldKarpDP, exact.ReductionBnB,
	} {
		res, serr := exact.Solve(g, exact.Options{Algo: algo})
		if serr != nil {
			t.Fatalf("Solve(algo=%d) failed: %v", algo, serr)
		}
		if res.Cost != want.Cost {
			t.Fatalf("algo=%d: cost %d, want %d", algo, res.Cost, want.Cost)
		}
	}
}
