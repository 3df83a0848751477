// Package lieext computes 2-cocycles of finite-dimensional brackets over exact
// rationals, the data needed to classify one-dimensional central extensions.
//
// 🚀 What is lieext?
//
//	A small, pure-Go library plus a command-line driver that brings together:
//		• Exact arithmetic: sign-carrying rationals on top of math/big
//		• Sparse linear algebra: pair-keyed rows, Gauss–Jordan reduction
//		• Cocycles: constraint systems, kernels, verification, extensions
//		• Grading: per-degree blocks for graded and Carnot brackets
//
// Under the hood, everything is organized under these packages:
//
//	rational/  : Rat, parsing and text encoding
//	sparse/    : Pair, Row, Matrix and Eliminate
//	cocycle/   : Table, CentralExtensionBasis, Verify, Extend
//	cmd/lieext/: basis, check, extend and watch commands over YAML/TOML files
//
// Quick example:
//
//	table := cocycle.NewTable(3)
//	table.Set(0, 1, 2, rational.One()) // Heisenberg: [v0, v1] = v2
//	basis, err := cocycle.CentralExtensionBasis(table, cocycle.Nilpotent)
//	// basis: E0,1  E0,2  E1,2
//
// Install:
//
//	go install github.com/katalvlaran/lieext/cmd/lieext@latest
package lieext
