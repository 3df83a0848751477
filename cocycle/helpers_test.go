// SPDX-License-Identifier: MIT

package cocycle_test

import (
	"testing"

	"github.com/katalvlaran/lieext/cocycle"
	"github.com/katalvlaran/lieext/rational"
	"github.com/katalvlaran/lieext/sparse"
	"github.com/stretchr/testify/require"
)

// algebra is a small fixture: structure constants, weights and the known
// dimension of its space of 2-cocycles.
type algebra struct {
	name    string
	table   cocycle.Table
	weights []int
	dim     int
}

var one = rational.One()

// heisenberg3: [v0,v1] = v2.
func heisenberg3() algebra {
	t := cocycle.NewTable(3)
	t.Set(0, 1, 2, one)

	return algebra{name: "heisenberg3", table: t, weights: []int{1, 1, 2}, dim: 3}
}

// heisenberg5: [v0,v1] = [v2,v3] = v4.
func heisenberg5() algebra {
	t := cocycle.NewTable(5)
	t.Set(0, 1, 4, one)
	t.Set(2, 3, 4, one)

	return algebra{name: "heisenberg5", table: t, weights: []int{1, 1, 1, 1, 2}, dim: 6}
}

// filiform4: [v0,v1] = v2, [v0,v2] = v3.
func filiform4() algebra {
	t := cocycle.NewTable(4)
	t.Set(0, 1, 2, one)
	t.Set(0, 2, 3, one)

	return algebra{name: "filiform4", table: t, weights: []int{1, 1, 2, 3}, dim: 4}
}

// free23: free nilpotent algebra of rank 2 and step 3.
func free23() algebra {
	t := cocycle.NewTable(5)
	t.Set(0, 1, 2, one)
	t.Set(0, 2, 3, one)
	t.Set(1, 2, 4, one)

	return algebra{name: "free23", table: t, weights: []int{1, 1, 2, 3, 3}, dim: 6}
}

// fractional: [v0,v1] = 2/3 v2, [v0,v2] = -1/2 v3, [v1,v2] = 3 v3.
func fractional() algebra {
	t := cocycle.NewTable(4)
	t.Set(0, 1, 2, rational.MustNew(2, 3))
	t.Set(0, 2, 3, rational.MustNew(-1, 2))
	t.Set(1, 2, 3, rational.FromInt(3))

	return algebra{name: "fractional", table: t, weights: []int{1, 1, 2, 3}, dim: 4}
}

// abelian4: no brackets at all.
func abelian4() algebra {
	return algebra{name: "abelian4", table: cocycle.NewTable(4), weights: []int{1, 1, 1, 1}, dim: 6}
}

func fixtures() []algebra {
	return []algebra{heisenberg3(), heisenberg5(), filiform4(), free23(), fractional(), abelian4()}
}

// filiform returns the n-dimensional model filiform algebra [v0,vi] = v(i+1).
func filiform(n int) cocycle.Table {
	t := cocycle.NewTable(n)
	for i := 1; i < n-1; i++ {
		t.Set(0, i, i+1, one)
	}

	return t
}

// rankOf returns the rank of the basis seen as vectors over ordered pairs.
func rankOf(t *testing.T, basis cocycle.Basis) int {
	t.Helper()
	m := sparse.NewMatrix()
	for _, c := range basis {
		row := sparse.NewRow()
		for _, p := range c.Support() {
			row.Set(p, c.At(p.X, p.Y))
		}
		m.Append(row)
	}
	red, err := sparse.Eliminate(m)
	require.NoError(t, err)

	return red.Rank()
}

func basisStrings(basis cocycle.Basis) []string {
	out := make([]string, len(basis))
	for i, c := range basis {
		out[i] = c.String()
	}

	return out
}
