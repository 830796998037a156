// SPDX-License-Identifier: MIT
// Package: lsgen/casefile
//
// types.go — the full instance record and its sparse entry types.
//
// Design:
//   • All indices are 0-based. Sparse tables (overrides, demand, transfer,
//     bigM) list only explicit entries; anything absent defaults to the
//     record-level default (capacity, inventory) or zero (demand).
//   • Per-item vectors are indexed by item and MUST have length Items;
//     Validate enforces this before any serialization.

package casefile

import "github.com/katalvlaran/lsgen/demandgen"

// CapacityOverride replaces the default capacity of one (node, period) cell.
type CapacityOverride struct {
	Node   int
	Period int
	Value  float64
}

// InventoryOverride replaces the default initial inventory of one
// (node, item) pair.
type InventoryOverride struct {
	Node  int
	Item  int
	Value float64
}

// TransferCost prices moving one unit of an item between two nodes in a
// period. Only meaningful when Case.EnableTransfer is set.
type TransferCost struct {
	From   int
	To     int
	Item   int
	Period int
	Cost   float64
}

// BigM is the linearization constant for one (item, period) pair of the
// transfer formulation.
type BigM struct {
	Item   int
	Period int
	Value  float64
}

// SolverParams carries the solver-facing knobs written to the solver
// section verbatim; the generator itself never interprets them.
type SolverParams struct {
	MIPGap          float64
	TimeLimitSec    int
	Threads         int
	SepViolationEps float64
	MaxIters        int
}

// DefaultSolverParams returns the documented solver defaults.
func DefaultSolverParams() SolverParams {
	return SolverParams{
		MIPGap:          defaultMIPGap,
		TimeLimitSec:    defaultTimeLimitSec,
		Threads:         defaultThreads,
		SepViolationEps: defaultSepViolationEps,
		MaxIters:        defaultMaxIters,
	}
}

// Case is one complete problem instance. Build it field by field or start
// from NewUniform when every item shares the same cost structure.
type Case struct {
	Nodes   int
	Items   int
	Periods int

	EnableTransfer bool

	// Per-item vectors, length == Items.
	ProductionCost []float64 // cX
	SetupCost      []float64 // cY
	HoldingCost    []float64 // cI
	UnitUsage      []float64 // sX, capacity per produced unit
	ChangeoverUse  []float64 // sY, capacity per changeover

	DefaultCapacity  float64
	DefaultInventory float64

	CapacityOverrides  []CapacityOverride
	InventoryOverrides []InventoryOverride

	Demand demandgen.DemandSet

	TransferCosts []TransferCost
	BigM          []BigM

	Solver SolverParams
}

// NewUniform builds a Case whose per-item vectors all carry a single shared
// value, the common shape of synthetic instances.
// Complexity: O(I) time and space.
func NewUniform(nodes, items, periods int, cX, cY, cI, sX, sY float64) *Case {
	fill := func(v float64) []float64 {
		vec := make([]float64, items)
		for i := range vec {
			vec[i] = v
		}

		return vec
	}

	return &Case{
		Nodes:          nodes,
		Items:          items,
		Periods:        periods,
		ProductionCost: fill(cX),
		SetupCost:      fill(cY),
		HoldingCost:    fill(cI),
		UnitUsage:      fill(sX),
		ChangeoverUse:  fill(sY),
		Solver:         DefaultSolverParams(),
	}
}
