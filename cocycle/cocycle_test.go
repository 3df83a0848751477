// SPDX-License-Identifier: MIT

package cocycle_test

import (
	"testing"

	"github.com/katalvlaran/lieext/cocycle"
	"github.com/katalvlaran/lieext/rational"
	"github.com/katalvlaran/lieext/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCocycle_SkewAndSkips(t *testing.T) {
	c := cocycle.NewCocycle(map[sparse.Pair]rational.Rat{
		sparse.P(1, 0): rational.FromInt(2),
		sparse.P(2, 2): rational.FromInt(5), // diagonal: skipped
		sparse.P(1, 3): rational.Zero(),     // zero: skipped
	})
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "-2", c.At(0, 1).String())
	assert.Equal(t, "2", c.At(1, 0).String())
	assert.False(t, c.Has(2, 2))
	assert.False(t, c.Has(1, 3))
	assert.True(t, c.At(5, 6).IsZero(), "absent coefficients read as zero")
	assert.Equal(t, []sparse.Pair{sparse.P(0, 1)}, c.Support())
}

func TestCocycle_String(t *testing.T) {
	c := cocycle.NewCocycle(map[sparse.Pair]rational.Rat{
		sparse.P(0, 1): rational.FromInt(-1),
		sparse.P(1, 2): rational.MustNew(2, 3),
		sparse.P(0, 2): rational.FromInt(-5),
	})
	assert.Equal(t, "-E0,1 - 5·E0,2 + 2/3·E1,2", c.String())
	assert.Equal(t, "0", cocycle.NewCocycle(nil).String())
}

func TestCocycle_Degree(t *testing.T) {
	weights := []int{1, 1, 2, 3}

	c := cocycle.NewCocycle(map[sparse.Pair]rational.Rat{
		sparse.P(0, 3): rational.MustNew(-1, 6),
		sparse.P(1, 3): rational.One(),
	})
	deg, err := c.Degree(weights)
	require.NoError(t, err)
	assert.Equal(t, 4, deg)

	mixed := cocycle.NewCocycle(map[sparse.Pair]rational.Rat{
		sparse.P(0, 1): rational.One(),
		sparse.P(0, 2): rational.One(),
	})
	_, err = mixed.Degree(weights)
	assert.ErrorIs(t, err, cocycle.ErrInhomogeneous)

	_, err = cocycle.NewCocycle(nil).Degree(weights)
	assert.ErrorIs(t, err, cocycle.ErrZeroCocycle)

	_, err = c.Degree([]int{1, 1})
	assert.ErrorIs(t, err, cocycle.ErrIndexOutOfRange)
}

func TestCocycle_Equal(t *testing.T) {
	a := cocycle.NewCocycle(map[sparse.Pair]rational.Rat{sparse.P(0, 1): rational.MustNew(2, 4)})
	b := cocycle.NewCocycle(map[sparse.Pair]rational.Rat{sparse.P(1, 0): rational.MustNew(-1, 2)})
	c := cocycle.NewCocycle(map[sparse.Pair]rational.Rat{sparse.P(0, 1): rational.One()})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(cocycle.NewCocycle(nil)))
}
