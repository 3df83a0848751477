// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math/big"
)

// Rat is an exact signed fraction num/den with sign carried separately.
//
// Invariants:
//   - num >= 0, den > 0 (stored as magnitudes; nil num means 0, nil den means 1).
//   - sign is +1 or -1; the sign of a zero value is never inspected.
//   - The big.Int values are never mutated after construction, so copies of a
//     Rat may share them freely.
type Rat struct {
	num  *big.Int
	den  *big.Int
	sign int
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Zero returns 0.
func Zero() Rat { return Rat{} }

// One returns 1.
func One() Rat { return Rat{num: bigOne, den: bigOne, sign: 1} }

// FromInt returns n/1.
func FromInt(n int64) Rat {
	return FromBig(new(big.Rat).SetInt64(n))
}

// New returns num/den in lowest terms. The sign is the product of the signs of
// num and den. A zero den yields ErrZeroDenominator.
func New(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, fmt.Errorf("New(%d, %d): %w", num, den, ErrZeroDenominator)
	}

	return FromBig(big.NewRat(num, den)), nil
}

// MustNew is like New but panics on a zero denominator.
// Intended for literals in tests and examples.
func MustNew(num, den int64) Rat {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// NewParts builds a Rat from explicit magnitudes and a sign.
// Any negative sign selects -1, anything else +1.
func NewParts(num, den uint64, sign int) (Rat, error) {
	if den == 0 {
		return Rat{}, fmt.Errorf("NewParts(%d, %d, %d): %w", num, den, sign, ErrZeroDenominator)
	}
	r := FromBig(new(big.Rat).SetFrac(new(big.Int).SetUint64(num), new(big.Int).SetUint64(den)))
	if sign < 0 && !r.IsZero() {
		r.sign = -1
	}

	return r, nil
}

// FromBig converts a big.Rat into a Rat. The argument is not retained.
func FromBig(q *big.Rat) Rat {
	r := Rat{
		num:  new(big.Int).Abs(q.Num()),
		den:  new(big.Int).Set(q.Denom()),
		sign: 1,
	}
	if q.Sign() < 0 {
		r.sign = -1
	}

	return r
}

func (x Rat) n() *big.Int {
	if x.num == nil {
		return bigZero
	}

	return x.num
}

func (x Rat) d() *big.Int {
	if x.den == nil {
		return bigOne
	}

	return x.den
}

func (x Rat) s() int {
	if x.sign < 0 {
		return -1
	}

	return 1
}

// Big returns x as a freshly allocated big.Rat.
func (x Rat) Big() *big.Rat {
	n := new(big.Int).Set(x.n())
	if x.s() < 0 {
		n.Neg(n)
	}

	return new(big.Rat).SetFrac(n, x.d())
}

// Num returns a copy of the numerator magnitude.
func (x Rat) Num() *big.Int { return new(big.Int).Set(x.n()) }

// Denom returns a copy of the denominator.
func (x Rat) Denom() *big.Int { return new(big.Int).Set(x.d()) }

// Sign returns -1, 0 or +1.
func (x Rat) Sign() int {
	if x.IsZero() {
		return 0
	}

	return x.s()
}

// IsZero reports whether the numerator is zero, regardless of sign or denominator.
func (x Rat) IsZero() bool { return x.n().Sign() == 0 }

// Neg returns -x: same magnitude, flipped sign.
func (x Rat) Neg() Rat {
	return Rat{num: x.num, den: x.den, sign: -x.s()}
}

// Add returns x + y.
func (x Rat) Add(y Rat) Rat {
	return FromBig(new(big.Rat).Add(x.Big(), y.Big()))
}

// Sub returns x - y.
func (x Rat) Sub(y Rat) Rat {
	return FromBig(new(big.Rat).Sub(x.Big(), y.Big()))
}

// Mul returns x * y.
func (x Rat) Mul(y Rat) Rat {
	return FromBig(new(big.Rat).Mul(x.Big(), y.Big()))
}

// Quo returns x / y.
//
// The magnitude comes from the underlying quotient; the sign is recomputed as
// sign(x)*sign(y) and overrides whatever sign the quotient carried.
//
// Errors:
//   - ErrDivisionByZero if y is zero.
func (x Rat) Quo(y Rat) (Rat, error) {
	if y.IsZero() {
		return Rat{}, fmt.Errorf("Quo(%s, %s): %w", x, y, ErrDivisionByZero)
	}
	q := FromBig(new(big.Rat).Quo(x.Big(), y.Big()))
	q.sign = x.s() * y.s()
	if q.IsZero() {
		q.sign = 1
	}

	return q, nil
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Rat) Cmp(y Rat) int { return x.Big().Cmp(y.Big()) }

// Equal reports whether x and y denote the same value.
func (x Rat) Equal(y Rat) bool { return x.Cmp(y) == 0 }

// String formats x as "p/q", or "p" when the denominator is 1.
func (x Rat) String() string {
	return x.Big().RatString()
}
