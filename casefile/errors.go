// SPDX-License-Identifier: MIT
// Package: lsgen/casefile
//
// errors.go — sentinel errors for the casefile package.
//
// Error policy follows the module convention: package-level sentinels,
// errors.Is for branching, %w wrapping with context at call sites, no
// runtime panics.

package casefile

import "errors"

// ErrBadDimension indicates non-positive Nodes, Items or Periods.
var ErrBadDimension = errors.New("casefile: dimensions must be positive")

// ErrVectorLength indicates a per-item vector whose length differs from
// Items.
var ErrVectorLength = errors.New("casefile: per-item vector length mismatch")

// ErrNegativeValue indicates a cost, usage, capacity, inventory or demand
// value below zero where only non-negative values are meaningful.
var ErrNegativeValue = errors.New("casefile: value must be non-negative")

// ErrIndexOutOfRange indicates a sparse entry referencing a node, item or
// period outside the declared dimensions.
var ErrIndexOutOfRange = errors.New("casefile: index out of range")

// ErrTransferDisabled indicates transfer-cost or big-M entries supplied
// while EnableTransfer is false.
var ErrTransferDisabled = errors.New("casefile: transfer sections require enable_transfer")

// ErrBadSolverParam indicates a solver parameter outside its documented
// domain (negative gap/eps, non-positive time limit or iteration cap).
var ErrBadSolverParam = errors.New("casefile: invalid solver parameter")
