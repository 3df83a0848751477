// SPDX-License-Identifier: MIT

package cocycle

import "github.com/katalvlaran/lieext/sparse"

// kernel reads a null-space basis off a matrix already reduced by
// sparse.Eliminate.
//
// Implementation:
//   - Stage 1: Compact m to drop zeros left behind by elimination.
//   - Stage 2: Every column of columns that is not a pivot is a free variable
//     and yields one cocycle: free column → 1, and for each row r holding an
//     entry v under that column, the pivot (x, y) of r gets B(x, y) = -v.
//
// Only columns drives emission; labels that appear in m but not in columns are
// never visited. The result has len(columns) - red.Rank() elements.
func kernel(m *sparse.Matrix, red sparse.Reduction, columns []sparse.Pair) Basis {
	m.Compact()

	out := make(Basis, 0, max(0, len(columns)-red.Rank()))
	for _, pair := range columns {
		if red.IsPivot(pair) {
			continue
		}
		c := seedCocycle(pair)
		for r := 0; r < m.Len(); r++ {
			v, ok := m.Row(r).Get(pair)
			if !ok {
				continue
			}
			c.set(red.Pivots[r], v.Neg())
		}
		out = append(out, c)
	}

	return out
}

// fullSpan returns one seed cocycle per column: the kernel of an empty system.
func fullSpan(columns []sparse.Pair) Basis {
	out := make(Basis, 0, len(columns))
	for _, p := range columns {
		out = append(out, seedCocycle(p))
	}

	return out
}
