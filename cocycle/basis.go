// SPDX-License-Identifier: MIT

package cocycle

import (
	"fmt"

	"github.com/katalvlaran/lieext/sparse"
)

const opCentralExtensionBasis = "CentralExtensionBasis"

// CentralExtensionBasis returns a basis of the 2-cocycles of table.
//
// In Nilpotent mode the whole constraint system is solved at once. In graded
// modes (WithWeights required) each degree is solved on its own and the
// per-degree kernels are concatenated in ascending degree; a degree without
// constraints contributes one cocycle per column.
//
// The table is only read. Brackets are not validated: the caller guarantees
// i < j < a for stored entries.
//
// Errors:
//   - ErrMissingWeights in graded modes without a weight per generator.
func CentralExtensionBasis(table Table, mode Mode, opts ...Option) (Basis, error) {
	cfg := newConfig(opts)

	sys, err := BuildConstraints(table, mode, cfg.weights)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCentralExtensionBasis, err)
	}
	log := Logger()
	log.Debug("cocycle: constraint system",
		"generators", len(table), "mode", mode.String(), "blocks", len(sys.Blocks))

	var basis Basis
	for _, block := range sys.Blocks {
		ker, err := solveBlock(block)
		if err != nil {
			return nil, fmt.Errorf("%s: degree %d: %w", opCentralExtensionBasis, block.Degree, err)
		}
		basis = append(basis, ker...)
	}

	return basis, nil
}

// solveBlock returns the kernel of one block. The block's matrix is reduced in
// place.
func solveBlock(block Block) (Basis, error) {
	log := Logger()
	if block.Unconstrained() {
		log.Debug("cocycle: unconstrained block",
			"degree", block.Degree, "columns", len(block.Columns))

		return fullSpan(block.Columns), nil
	}

	rows := block.Matrix.Len()
	red, err := sparse.Eliminate(block.Matrix)
	if err != nil {
		return nil, err
	}
	ker := kernel(block.Matrix, red, block.Columns)
	log.Debug("cocycle: block reduced",
		"degree", block.Degree, "columns", len(block.Columns), "rows", rows,
		"rank", red.Rank(), "kernel", len(ker))

	return ker, nil
}
