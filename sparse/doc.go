// SPDX-License-Identifier: MIT

// Package sparse implements sparse rational matrices whose columns are labelled
// by ordered index pairs instead of fixed integer positions, together with
// exact Gauss–Jordan elimination over those labels.
//
// What is inside:
//
//   - Pair: a column label (x, y); comparable and usable as a map key.
//   - Row: an insertion-ordered mapping Pair → rational.Rat.
//   - Matrix: an ordered list of rows with stable row removal.
//   - Eliminate: in-place reduction to reduced row-echelon form.
//
// Determinism:
//
//	Row iteration follows insertion order, and Eliminate always picks the
//	first surviving entry of a row as its pivot. Running the same input twice
//	yields the same pivots and the same reduced rows.
//
// Complexity:
//
//	Eliminate is O(R² · C) in the worst case for R rows with at most C stored
//	entries each; typical constraint rows touch only a handful of columns.
package sparse
