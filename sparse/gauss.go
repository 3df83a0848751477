// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lieext/rational"
)

const opEliminate = "Eliminate"

// Reduction is the bookkeeping produced by Eliminate.
//
//   - Pivots maps a row index of the reduced matrix to that row's pivot column.
//   - Columns lists every pivot column in the order pivots were chosen.
type Reduction struct {
	Pivots  map[int]Pair
	Columns []Pair
}

// Rank returns the number of pivots, i.e. the rank of the reduced matrix.
func (red Reduction) Rank() int { return len(red.Columns) }

// IsPivot reports whether p was chosen as a pivot column.
func (red Reduction) IsPivot(p Pair) bool { return slices.Contains(red.Columns, p) }

// Eliminate reduces m in place to reduced row-echelon form over the rationals.
//
// Implementation:
//   - Stage 1: For row r, drop exact zeros; the first surviving entry in
//     insertion order is the pivot. No magnitude-based pivoting.
//   - Stage 2: An empty row is removed (later rows shift down) and index r is
//     examined again without advancing.
//   - Stage 3: Otherwise divide row r by its pivot value so the pivot becomes 1
//     and record the pivot.
//   - Stage 4: Every other row r2 that stores the pivot label (even as an exact
//     zero) gets row[r2] -= row[r2][pivot] * row[r]. Missing labels are
//     inserted; results that become zero stay stored until the next scan or
//     Matrix.Compact.
//
// Returns:
//   - Reduction: pivot per row and pivot columns in order.
//   - error: ErrNilMatrix for a nil matrix.
//
// Complexity:
//   - Time O(R²·C), Space O(1) beyond fill-in.
func Eliminate(m *Matrix) (Reduction, error) {
	if m == nil {
		return Reduction{}, fmt.Errorf("%s: %w", opEliminate, ErrNilMatrix)
	}
	red := Reduction{Pivots: make(map[int]Pair)}

	r := 0
	for r < m.Len() {
		row := m.Row(r)

		// Stage 1: clean the row and pick its pivot.
		row.DeleteZeros()
		if row.Len() == 0 {
			// Stage 2: whatever shifts into r is processed next.
			m.RemoveRow(r)

			continue
		}
		pivot := row.keys[0]

		// Stage 3: normalise so the pivot entry is exactly 1.
		if err := divideRow(row, row.vals[pivot]); err != nil {
			return Reduction{}, fmt.Errorf("%s: row %d: %w", opEliminate, r, err)
		}
		red.Pivots[r] = pivot
		red.Columns = append(red.Columns, pivot)

		// Stage 4: clear the pivot column everywhere else.
		for r2 := 0; r2 < m.Len(); r2++ {
			if r2 == r {
				continue
			}
			other := m.Row(r2)
			if factor, ok := other.Get(pivot); ok {
				subtractScaled(other, row, factor)
			}
		}
		r++
	}

	return red, nil
}

// divideRow divides every entry of row by d.
func divideRow(row *Row, d rational.Rat) error {
	for _, k := range row.keys {
		q, err := row.vals[k].Quo(d)
		if err != nil {
			return err
		}
		row.vals[k] = q
	}

	return nil
}

// subtractScaled performs dst -= factor*src entry by entry, in src order.
func subtractScaled(dst, src *Row, factor rational.Rat) {
	for _, k := range src.keys {
		val := factor.Mul(src.vals[k])
		if cur, ok := dst.Get(k); ok {
			dst.vals[k] = cur.Sub(val)

			continue
		}
		dst.Set(k, val.Neg())
	}
}
