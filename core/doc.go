// Package core defines the read-only graph capability consumed by the
// exact ATSP solvers, together with its canonical implementation and a
// deterministic instance generator for tests and benchmarks.
//
// Overview:
//
//   - Graph is the minimal capability every solver consumes: a vertex
//     count and a directed edge-weight lookup. Vertex n−1 is, by
//     convention, the fixed tour origin.
//   - Dense is an immutable row-major weight matrix implementing Graph.
//     Construction validates shape and values once; afterwards the
//     instance is safe to share across concurrent solver calls.
//   - RandomComplete builds seeded complete instances with the fixed
//     seed==0 policy (seed 0 maps to a stable default), so property
//     tests and benchmarks stay reproducible across runs and platforms.
//
// Error handling (sentinel errors):
//
//   - ErrNilWeights:     a nil weight matrix was passed to NewDense.
//   - ErrNonSquare:      the weight matrix rows have unequal lengths.
//   - ErrTooFewVertices: the instance has fewer than 2 vertices.
//   - ErrNegativeWeight: an off-diagonal weight is negative.
//
// Thread safety:
//
//   - Dense is immutable after construction; any number of goroutines may
//     read it concurrently. Mutating the [][]int64 passed to NewDense
//     after construction has no effect (rows are deep-copied).
package core
