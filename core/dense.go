// Package core: Dense is the canonical Graph implementation — an
// immutable row-major weight matrix stored in a flat slice for
// performance and cache friendliness.
package core

// Dense is an immutable n×n weight matrix over int64 values.
// n is the vertex count and w holds n*n weights in row-major order.
type Dense struct {
	n int     // number of vertices
	w []int64 // flat backing storage, length == n*n
}

// Compile-time capability check.
var _ Graph = (*Dense)(nil)

// NewDense builds a Dense instance from the given weight matrix.
// Stage 1 (Validate): non-nil, square, n ≥ 2, non-negative off-diagonal.
// Stage 2 (Prepare): deep-copy rows into a flat backing slice.
// Stage 3 (Finalize): return the immutable instance.
//
// The input slices are not retained; mutating them afterwards does not
// affect the returned graph. Diagonal entries are stored verbatim but
// carry no meaning (EdgeWeight(i,i) is unspecified by contract).
//
// Complexity: O(n²) time and memory.
func NewDense(weights [][]int64) (*Dense, error) {
	// Validate shape.
	if weights == nil {
		return nil, ErrNilWeights
	}
	var n = len(weights)
	if n < 2 {
		return nil, ErrTooFewVertices
	}

	var (
		i, j int   // loop indices
		row  []int64
	)
	for i = 0; i < n; i++ { // every row must match the order
		if len(weights[i]) != n {
			return nil, ErrNonSquare
		}
	}

	// Validate values and copy into flat storage in one pass.
	var w = make([]int64, n*n)
	for i = 0; i < n; i++ {
		row = weights[i]
		for j = 0; j < n; j++ {
			if i != j && row[j] < 0 {
				return nil, ErrNegativeWeight
			}
			w[i*n+j] = row[j]
		}
	}

	return &Dense{n: n, w: w}, nil
}

// VertexCount reports the number of vertices n.
// Complexity: O(1).
func (d *Dense) VertexCount() int {
	return d.n // return stored order
}

// EdgeWeight reports the directed weight of edge i→j.
// Indices must satisfy 0 ≤ i, j < n; out-of-range indices are a
// programmer error and panic via the backing-slice bounds check.
// Complexity: O(1).
func (d *Dense) EdgeWeight(i, j int) int64 {
	return d.w[i*d.n+j] // row-major lookup
}

// Clone returns an independent deep copy of the instance.
// Useful for tests asserting that solvers leave their input untouched.
// Complexity: O(n²).
func (d *Dense) Clone() *Dense {
	var cp = make([]int64, len(d.w))
	copy(cp, d.w)

	return &Dense{n: d.n, w: cp}
}
