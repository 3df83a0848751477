// SPDX-License-Identifier: MIT

package cocycle

import (
	"github.com/katalvlaran/lieext/rational"
	"github.com/katalvlaran/lieext/sparse"
)

// Table holds structure constants: Table[a][Pair{i, j}] is the coefficient of
// v_a in [v_i, v_j]. Entries are normally stored with i < j < a; a reversed
// entry (j, i) is also understood, with the opposite sign implied.
// len(Table) is the number of generators. A Table is treated as read-only.
type Table []map[sparse.Pair]rational.Rat

// NewTable returns an empty table for n generators.
func NewTable(n int) Table {
	t := make(Table, n)
	for a := range t {
		t[a] = make(map[sparse.Pair]rational.Rat)
	}

	return t
}

// Set records c as the coefficient of v_a in [v_i, v_j].
func (t Table) Set(i, j, a int, c rational.Rat) {
	if t[a] == nil {
		t[a] = make(map[sparse.Pair]rational.Rat)
	}
	t[a][sparse.P(i, j)] = c
}

// Coeff returns the coefficient of v_a in [v_x, v_y] and whether the table
// defines it. An entry stored under (x, y) is returned as is; otherwise an
// entry under (y, x) is returned negated.
func (t Table) Coeff(x, y, a int) (rational.Rat, bool) {
	if a < 0 || a >= len(t) {
		return rational.Rat{}, false
	}
	if v, ok := t[a][sparse.P(x, y)]; ok {
		return v, true
	}
	if v, ok := t[a][sparse.P(y, x)]; ok {
		return v.Neg(), true
	}

	return rational.Rat{}, false
}

// Clone returns a copy with fresh per-generator maps.
func (t Table) Clone() Table {
	c := make(Table, len(t))
	for a, m := range t {
		c[a] = make(map[sparse.Pair]rational.Rat, len(m))
		for p, v := range m {
			c[a][p] = v
		}
	}

	return c
}
