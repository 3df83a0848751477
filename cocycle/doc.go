// SPDX-License-Identifier: MIT

// Package cocycle computes bases of 2-cocycles of finite-dimensional brackets.
//
// A bracket on generators v_0..v_{n-1} is given by structure constants
// [v_i, v_j] = Σ_a c^a_ij v_a (i < j < a). A 2-cocycle is a skew-symmetric
// bilinear form B with
//
//	B([v_i,v_j], v_k) + B([v_j,v_k], v_i) + B([v_k,v_i], v_j) = 0
//
// for all i < j < k. Each cocycle B defines a one-dimensional central
// extension: add a generator z and set [v_i, v_j] += B(i, j) z.
//
// Pipeline:
//
//	Table + Mode ─► BuildConstraints ─► System (one Block, or one Block per degree)
//	             ─► sparse.Eliminate per constrained Block
//	             ─► kernel read-off per Block ─► Basis
//
// Modes:
//
//   - Nilpotent: every constraint lives in a single matrix.
//   - Graded / Carnot: generators carry integer weights (WithWeights);
//     constraints and unknowns are split by weight sum and solved per degree.
//     A degree with no constraints contributes its full span.
//
// All arithmetic is exact (package rational). Every call allocates its own
// matrices; nothing is cached between calls, so concurrent calls are safe.
//
// Logging is silent by default; see SetLogger.
package cocycle
