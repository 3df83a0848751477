// SPDX-License-Identifier: MIT

// Package rational provides an exact signed fraction type for symbolic linear algebra.
//
// A Rat is an immutable value made of a non-negative numerator, a positive
// denominator and a separate sign in {+1, -1}. All arithmetic is exact and
// backed by math/big; results are kept in lowest terms so equal values have
// equal representations.
//
// Division contract:
//
//	The sign of x.Quo(y) is ALWAYS sign(x)*sign(y), computed from the operands
//	themselves rather than read back from the quotient produced by the
//	underlying primitive. Callers (the sparse eliminator) rely on this to
//	normalise pivot rows without sign drift.
//
// Quick example:
//
//	a := rational.MustNew(-3, 4)
//	b := rational.MustNew(1, 2)
//	q, _ := a.Quo(b) // -3/2
//	fmt.Println(q)
//
// Zero value:
//
//	The zero value of Rat is 0 and is ready to use.
package rational
