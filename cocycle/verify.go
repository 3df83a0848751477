// SPDX-License-Identifier: MIT

package cocycle

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lieext/rational"
	"github.com/katalvlaran/lieext/sparse"
)

const opVerify = "Verify"

// Verify checks that c is a 2-cocycle of table: every stored coefficient lies
// on generators of table, the form is skew-symmetric, and
// B([i,j],k) + B([j,k],i) + B([k,i],j) = 0 for every i < j < k.
//
// Errors:
//   - ErrIndexOutOfRange for a coefficient outside [0, len(table)).
//   - ErrNotCocycle for a skew-symmetry or cocycle-identity violation; the
//     message names the first offending pair or triple.
//
// Complexity:
//   - Time O(n⁴) for n generators.
func Verify(table Table, c Cocycle) error {
	n := len(table)

	keys := make([]sparse.Pair, 0, len(c.coeffs))
	for p := range c.coeffs {
		keys = append(keys, p)
	}
	slices.SortFunc(keys, sparse.ComparePairs)
	for _, p := range keys {
		v := c.coeffs[p]
		if p.X < 0 || p.Y < 0 || p.X >= n || p.Y >= n {
			return fmt.Errorf("%s: pair %v with %d generators: %w", opVerify, p, n, ErrIndexOutOfRange)
		}
		if p.X == p.Y {
			if !v.IsZero() {
				return fmt.Errorf("%s: diagonal B(%d,%d)=%s: %w", opVerify, p.X, p.Y, v, ErrNotCocycle)
			}

			continue
		}
		if w := c.At(p.Y, p.X); !w.Equal(v.Neg()) {
			return fmt.Errorf("%s: B(%d,%d)=%s but B(%d,%d)=%s: %w",
				opVerify, p.X, p.Y, v, p.Y, p.X, w, ErrNotCocycle)
		}
	}

	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				sum := evalOnBracket(table, c, i, j, k).
					Add(evalOnBracket(table, c, j, k, i)).
					Add(evalOnBracket(table, c, k, i, j))
				if !sum.IsZero() {
					return fmt.Errorf("%s: triple (%d,%d,%d) sums to %s: %w", opVerify, i, j, k, sum, ErrNotCocycle)
				}
			}
		}
	}

	return nil
}

// evalOnBracket returns B([v_x, v_y], v_z).
func evalOnBracket(table Table, c Cocycle, x, y, z int) rational.Rat {
	var sum rational.Rat
	for a := range table {
		coef, ok := table.Coeff(x, y, a)
		if !ok {
			continue
		}
		sum = sum.Add(coef.Mul(c.At(a, z)))
	}

	return sum
}
