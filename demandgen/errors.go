// SPDX-License-Identifier: MIT
// Package: lsgen/demandgen
//
// errors.go — sentinel errors for the demandgen package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w` at the call site.
//   • The pipeline MUST NOT panic at runtime; every failure surfaces as an
//     error return.
//
// AI-Hints:
//   • ErrCapacityExceeded marks a defect in the allocator itself, never bad
//     input; treat it as fatal and report it upstream verbatim.
//   • Validation sentinels fire only from Config.Validate / GenerateSimple;
//     Generate assumes a pre-validated Config by contract.

package demandgen

import "errors"

// ErrNonPositiveDimension indicates that one of the problem dimensions
// (nodes, items, periods) is zero or negative.
// Classification: validation error (parameters).
// Usage: if errors.Is(err, ErrNonPositiveDimension) { /* reject sizes */ }.
var ErrNonPositiveDimension = errors.New("demandgen: dimension must be positive")

// ErrNegativeCapacity indicates a negative capacity parameter (raw capacity,
// unit capacity cost or changeover cost).
// Usage: if errors.Is(err, ErrNegativeCapacity) { /* reject capacities */ }.
var ErrNegativeCapacity = errors.New("demandgen: capacity parameter must be non-negative")

// ErrParameterOutOfRange indicates that a ratio parameter (utilization,
// intensity, concentration, size variance) lies outside its documented
// closed or half-open interval.
// Usage: if errors.Is(err, ErrParameterOutOfRange) { /* clamp or reject */ }.
var ErrParameterOutOfRange = errors.New("demandgen: parameter out of range")

// ErrBadAmountRange indicates MinAmount/MaxAmount of a SimpleConfig are
// inverted or non-positive.
// Usage: if errors.Is(err, ErrBadAmountRange) { /* fix amount bounds */ }.
var ErrBadAmountRange = errors.New("demandgen: invalid amount range")

// ErrUnknownMode indicates a SimpleConfig.Mode value outside the declared
// enumeration.
// Usage: if errors.Is(err, ErrUnknownMode) { /* fix sampling mode */ }.
var ErrUnknownMode = errors.New("demandgen: unknown sampling mode")

// ErrCapacityExceeded indicates the post-hoc feasibility check found a
// (node, period) cell whose recomputed consumption exceeds its budget beyond
// FeasibilityTolerance. This never legitimately fires given a correct
// allocator; it exists purely to catch regressions and is non-recoverable.
// Usage: if errors.Is(err, ErrCapacityExceeded) { /* internal defect */ }.
var ErrCapacityExceeded = errors.New("demandgen: capacity budget exceeded")
