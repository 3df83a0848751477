// SPDX-License-Identifier: MIT
// Package cocycle: sentinel errors.
// Match with errors.Is; functions wrap them with "Op: ..." context via %w.

package cocycle

import "errors"

var (
	// ErrMissingWeights is returned in graded modes when the weight table does
	// not cover every generator of the bracket table.
	ErrMissingWeights = errors.New("cocycle: graded mode needs a weight per generator")

	// ErrIndexOutOfRange indicates a cocycle coefficient on a generator index
	// outside the bracket table.
	ErrIndexOutOfRange = errors.New("cocycle: generator index out of range")

	// ErrNotCocycle indicates a form that is not skew-symmetric or violates the
	// cocycle identity for some triple.
	ErrNotCocycle = errors.New("cocycle: form is not a 2-cocycle")

	// ErrInhomogeneous indicates a cocycle whose support spans several degrees.
	ErrInhomogeneous = errors.New("cocycle: cocycle is not homogeneous")

	// ErrZeroCocycle indicates an operation that needs a nonzero cocycle.
	ErrZeroCocycle = errors.New("cocycle: zero cocycle")
)
