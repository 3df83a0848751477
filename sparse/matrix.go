// SPDX-License-Identifier: MIT

package sparse

import "strings"

// Matrix is an ordered list of sparse rows indexed densely 0..Len()-1.
// Columns are whatever labels the rows carry; there is no fixed column count.
type Matrix struct {
	rows []*Row
}

// NewMatrix returns an empty matrix.
func NewMatrix() *Matrix { return &Matrix{} }

// Len returns the current number of rows.
func (m *Matrix) Len() int { return len(m.rows) }

// Row returns row i. It panics if i is out of range, like slice indexing.
func (m *Matrix) Row(i int) *Row { return m.rows[i] }

// Append adds row at the end and returns its index.
func (m *Matrix) Append(row *Row) int {
	m.rows = append(m.rows, row)

	return len(m.rows) - 1
}

// RemoveRow removes row i, shifting every later row down by one index.
// The row previously at i+1 now lives at i.
func (m *Matrix) RemoveRow(i int) {
	copy(m.rows[i:], m.rows[i+1:])
	m.rows[len(m.rows)-1] = nil
	m.rows = m.rows[:len(m.rows)-1]
}

// Compact deletes residual exact zeros from every row.
func (m *Matrix) Compact() {
	for _, row := range m.rows {
		row.DeleteZeros()
	}
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{rows: make([]*Row, len(m.rows))}
	for i, row := range m.rows {
		c.rows[i] = row.Clone()
	}

	return c
}

// String formats one row per line.
func (m *Matrix) String() string {
	lines := make([]string, len(m.rows))
	for i, row := range m.rows {
		lines[i] = row.String()
	}

	return strings.Join(lines, "\n")
}
