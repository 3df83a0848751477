// SPDX-License-Identifier: MIT

package cocycle

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lieext/sparse"
)

const opBuildConstraints = "BuildConstraints"

// Layout tells whether a System holds one matrix or one matrix per degree.
type Layout int

const (
	// LayoutSingle holds exactly one Block covering every pair.
	LayoutSingle Layout = iota

	// LayoutByDegree holds one Block per degree, ascending.
	LayoutByDegree
)

// Block is one independent linear system: the unknowns E_xy for Columns and
// the constraint rows in Matrix.
//
// Matrix is nil exactly when no constraint fell into this degree (possible only
// in LayoutByDegree); its kernel is then the full span of Columns.
type Block struct {
	Degree  int
	Columns []sparse.Pair
	Matrix  *sparse.Matrix
}

// Unconstrained reports whether the block carries no constraint matrix.
func (b Block) Unconstrained() bool { return b.Matrix == nil }

// System is the set of cocycle constraints for one bracket table.
type System struct {
	Layout Layout
	Blocks []Block
}

// BuildConstraints derives the cocycle-identity constraints of table.
//
// Implementation:
//   - Stage 1: For each triple i < j < k build one row over columns (x, y), x < y:
//     for j < a < k and a defined coefficient c of v_a in [v_i, v_j], column
//     (a, k) gets c; for each rotation (x, y, z) of (i, j, k) and b > k with a
//     defined coefficient c of v_b in [v_x, v_y], column (z, b) gets -c.
//   - Stage 2: Rows without entries are dropped. Nilpotent mode appends rows to
//     one matrix; graded modes route them by weight[i]+weight[j]+weight[k].
//   - Stage 3: Column universe: all (a, b), a < b; graded modes split it by
//     weight[a]+weight[b]. A degree without rows becomes an unconstrained Block.
//
// Errors:
//   - ErrMissingWeights in graded modes when len(weights) < len(table).
func BuildConstraints(table Table, mode Mode, weights []int) (System, error) {
	n := len(table)
	if mode.IsGraded() && len(weights) < n {
		return System{}, fmt.Errorf("%s: %d weights for %d generators: %w",
			opBuildConstraints, len(weights), n, ErrMissingWeights)
	}

	if !mode.IsGraded() {
		m := sparse.NewMatrix()
		forEachConstraint(table, func(_, _, _ int, row *sparse.Row) {
			m.Append(row)
		})

		return System{
			Layout: LayoutSingle,
			Blocks: []Block{{Columns: allPairs(n), Matrix: m}},
		}, nil
	}

	matrices := make(map[int]*sparse.Matrix)
	forEachConstraint(table, func(i, j, k int, row *sparse.Row) {
		deg := weights[i] + weights[j] + weights[k]
		m, ok := matrices[deg]
		if !ok {
			m = sparse.NewMatrix()
			matrices[deg] = m
		}
		m.Append(row)
	})

	columns := make(map[int][]sparse.Pair)
	for _, p := range allPairs(n) {
		deg := weights[p.X] + weights[p.Y]
		columns[deg] = append(columns[deg], p)
	}
	degrees := make([]int, 0, len(columns))
	for deg := range columns {
		degrees = append(degrees, deg)
	}
	slices.Sort(degrees)

	sys := System{Layout: LayoutByDegree, Blocks: make([]Block, 0, len(degrees))}
	for _, deg := range degrees {
		// matrices[deg] is nil when no triple produced a row of this degree.
		sys.Blocks = append(sys.Blocks, Block{Degree: deg, Columns: columns[deg], Matrix: matrices[deg]})
	}

	return sys, nil
}

// forEachConstraint calls emit with every non-empty constraint row, triples in
// lexicographic order.
func forEachConstraint(table Table, emit func(i, j, k int, row *sparse.Row)) {
	n := len(table)
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				if row := constraintRow(table, i, j, k); row.Len() > 0 {
					emit(i, j, k, row)
				}
			}
		}
	}
}

// constraintRow encodes B([i,j],k) + B([j,k],i) + B([k,i],j) = 0 in the
// unknowns E_xy, x < y.
func constraintRow(table Table, i, j, k int) *sparse.Row {
	n := len(table)
	row := sparse.NewRow()

	for a := j + 1; a < k; a++ {
		if c, ok := table.Coeff(i, j, a); ok {
			row.Set(sparse.P(a, k), c)
		}
	}

	rotations := [3][3]int{{i, j, k}, {j, k, i}, {k, i, j}}
	for _, rot := range rotations {
		x, y, z := rot[0], rot[1], rot[2]
		for b := k + 1; b < n; b++ {
			if c, ok := table.Coeff(x, y, b); ok {
				row.Set(sparse.P(z, b), c.Neg())
			}
		}
	}

	return row
}

// allPairs lists (a, b), a < b < n, in lexicographic order.
func allPairs(n int) []sparse.Pair {
	if n < 2 {
		return nil
	}
	out := make([]sparse.Pair, 0, n*(n-1)/2)
	for a := 0; a < n-1; a++ {
		for b := a + 1; b < n; b++ {
			out = append(out, sparse.P(a, b))
		}
	}

	return out
}
