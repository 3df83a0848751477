// SPDX-License-Identifier: MIT

package cocycle

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lieext/rational"
	"github.com/katalvlaran/lieext/sparse"
)

// Cocycle is a skew-symmetric bilinear form stored by coefficient.
// Whenever (x, y) → v is stored, (y, x) → -v is stored too.
type Cocycle struct {
	coeffs map[sparse.Pair]rational.Rat
}

// NewCocycle builds a form from coefficients. Each entry (x, y) → v also sets
// (y, x) → -v; zero values and diagonal pairs are skipped. Later entries win
// when two entries name the same unordered pair.
func NewCocycle(coeffs map[sparse.Pair]rational.Rat) Cocycle {
	c := emptyCocycle()
	keys := make([]sparse.Pair, 0, len(coeffs))
	for p := range coeffs {
		keys = append(keys, p)
	}
	slices.SortFunc(keys, sparse.ComparePairs)
	for _, p := range keys {
		v := coeffs[p]
		if v.IsZero() || p.X == p.Y {
			continue
		}
		c.set(p, v)
	}

	return c
}

func emptyCocycle() Cocycle {
	return Cocycle{coeffs: make(map[sparse.Pair]rational.Rat)}
}

// seedCocycle returns the form with p → 1 and its swap → -1.
func seedCocycle(p sparse.Pair) Cocycle {
	c := emptyCocycle()
	c.set(p, rational.One())

	return c
}

func (c Cocycle) set(p sparse.Pair, v rational.Rat) {
	c.coeffs[p] = v
	c.coeffs[p.Swap()] = v.Neg()
}

// At returns B(i, j); absent coefficients are zero.
func (c Cocycle) At(i, j int) rational.Rat {
	return c.coeffs[sparse.P(i, j)]
}

// Has reports whether a coefficient is stored for (i, j).
func (c Cocycle) Has(i, j int) bool {
	_, ok := c.coeffs[sparse.P(i, j)]

	return ok
}

// Len returns the number of stored coefficients, both orientations counted.
func (c Cocycle) Len() int { return len(c.coeffs) }

// Support returns the pairs (x, y), x < y, with a nonzero coefficient, sorted.
func (c Cocycle) Support() []sparse.Pair {
	out := make([]sparse.Pair, 0, len(c.coeffs)/2)
	for p, v := range c.coeffs {
		if p.Ordered() && !v.IsZero() {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, sparse.ComparePairs)

	return out
}

// Degree returns weights[x]+weights[y], shared by every support pair (x, y).
//
// Errors:
//   - ErrZeroCocycle for an empty support.
//   - ErrIndexOutOfRange if a support index has no weight.
//   - ErrInhomogeneous if support pairs have different degrees.
func (c Cocycle) Degree(weights []int) (int, error) {
	support := c.Support()
	if len(support) == 0 {
		return 0, fmt.Errorf("Degree: %w", ErrZeroCocycle)
	}
	deg := 0
	for idx, p := range support {
		if p.Y >= len(weights) || p.X < 0 {
			return 0, fmt.Errorf("Degree: pair %v: %w", p, ErrIndexOutOfRange)
		}
		d := weights[p.X] + weights[p.Y]
		if idx == 0 {
			deg = d
		} else if d != deg {
			return 0, fmt.Errorf("Degree: pair %v has degree %d, want %d: %w", p, d, deg, ErrInhomogeneous)
		}
	}

	return deg, nil
}

// Equal reports whether c and o define the same form.
func (c Cocycle) Equal(o Cocycle) bool {
	a, b := c.Support(), o.Support()
	if !slices.Equal(a, b) {
		return false
	}
	for _, p := range a {
		if !c.At(p.X, p.Y).Equal(o.At(p.X, p.Y)) {
			return false
		}
	}

	return true
}

// String formats the form over its support, e.g. "E0,1 - 2/3·E1,3".
func (c Cocycle) String() string {
	support := c.Support()
	if len(support) == 0 {
		return "0"
	}
	var sb strings.Builder
	for idx, p := range support {
		v := c.At(p.X, p.Y)
		switch {
		case idx == 0 && v.Sign() < 0:
			sb.WriteString("-")
		case idx > 0 && v.Sign() < 0:
			sb.WriteString(" - ")
		case idx > 0:
			sb.WriteString(" + ")
		}
		mag := v
		if v.Sign() < 0 {
			mag = v.Neg()
		}
		if !mag.Equal(rational.One()) {
			sb.WriteString(mag.String())
			sb.WriteString("·")
		}
		fmt.Fprintf(&sb, "E%d,%d", p.X, p.Y)
	}

	return sb.String()
}

// Basis is an ordered list of linearly independent cocycles.
type Basis []Cocycle

// Dimension returns the number of cocycles in the basis.
func (b Basis) Dimension() int { return len(b) }

// CannotBracket reports whether no cocycle in basis has a nonzero coefficient
// at (i, j), i.e. no central extension can introduce a bracket along (i, j).
func CannotBracket(basis Basis, i, j int) bool {
	for _, c := range basis {
		if !c.At(i, j).IsZero() {
			return false
		}
	}

	return true
}

// Forbidden lists every pair (i, j), i < j < n, for which CannotBracket holds.
func (b Basis) Forbidden(n int) []sparse.Pair {
	var out []sparse.Pair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if CannotBracket(b, i, j) {
				out = append(out, sparse.P(i, j))
			}
		}
	}

	return out
}
