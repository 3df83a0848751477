// SPDX-License-Identifier: MIT

package sparse

import (
	"cmp"
	"fmt"
)

// Pair labels a column by an ordered pair of generator indices (X, Y).
// For bilinear forms it names the basis element E_XY.
type Pair struct {
	X int
	Y int
}

// P is shorthand for Pair{X: x, Y: y}.
func P(x, y int) Pair { return Pair{X: x, Y: y} }

// Swap returns (Y, X).
func (p Pair) Swap() Pair { return Pair{X: p.Y, Y: p.X} }

// Ordered reports whether X < Y.
func (p Pair) Ordered() bool { return p.X < p.Y }

// String formats the pair as "x,y".
func (p Pair) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// ComparePairs orders pairs lexicographically by (X, Y); usable with slices.SortFunc.
func ComparePairs(a, b Pair) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}

	return cmp.Compare(a.Y, b.Y)
}
