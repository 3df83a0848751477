// SPDX-License-Identifier: MIT
// Package rational: sentinel errors.
// Callers MUST match these with errors.Is; operations attach context via %w.

package rational

import "errors"

var (
	// ErrDivisionByZero is returned by Quo when the divisor is zero.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrZeroDenominator is returned by constructors and Parse when a fraction
	// is written with a zero denominator.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrSyntax indicates that a textual rational could not be parsed.
	ErrSyntax = errors.New("rational: invalid syntax")
)
