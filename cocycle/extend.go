// SPDX-License-Identifier: MIT

package cocycle

import (
	"fmt"

	"github.com/katalvlaran/lieext/rational"
	"github.com/katalvlaran/lieext/sparse"
)

const opExtend = "Extend"

// Extend builds the central extension of table by the cocycle c: a new
// generator z = v_n is appended and [v_i, v_j] gains B(i, j)·z for every
// i < j. The input table is not modified.
//
// When weights is non-nil it must cover every generator; z then gets the
// degree shared by the support of c, and the extended weights are returned.
// With nil weights the returned weights are nil.
//
// Errors:
//   - ErrNotCocycle / ErrIndexOutOfRange from Verify.
//   - ErrZeroCocycle when c has no support.
//   - ErrMissingWeights when weights is too short.
//   - ErrInhomogeneous when the support of c mixes degrees.
func Extend(table Table, weights []int, c Cocycle) (Table, []int, error) {
	if err := Verify(table, c); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opExtend, err)
	}
	support := c.Support()
	if len(support) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", opExtend, ErrZeroCocycle)
	}

	var outWeights []int
	if weights != nil {
		if len(weights) < len(table) {
			return nil, nil, fmt.Errorf("%s: %d weights for %d generators: %w",
				opExtend, len(weights), len(table), ErrMissingWeights)
		}
		deg, err := c.Degree(weights)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opExtend, err)
		}
		outWeights = make([]int, len(table), len(table)+1)
		copy(outWeights, weights[:len(table)])
		outWeights = append(outWeights, deg)
	}

	out := table.Clone()
	z := make(map[sparse.Pair]rational.Rat, len(support))
	for _, p := range support {
		z[p] = c.At(p.X, p.Y)
	}
	out = append(out, z)
	Logger().Debug("cocycle: central extension",
		"generators", len(out), "support", len(support))

	return out, outWeights, nil
}
