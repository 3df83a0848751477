// SPDX-License-Identifier: MIT

package sparse

import "errors"

// ErrNilMatrix is returned when an operation receives a nil *Matrix.
var ErrNilMatrix = errors.New("sparse: nil matrix")
