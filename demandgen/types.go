// SPDX-License-Identifier: MIT
// Package: lsgen/demandgen
//
// types.go — configuration record, demand point types and the dense
// capacity grid shared by the generation pipeline.
//
// Design:
//   • Config is the single source of truth for one generation call.
//     It is passed by VALUE to every stage (immutable to callers).
//   • capacityGrid replaces the associative (node,period)→capacity map of
//     sparse designs with two dense slices indexed u·T+t; U×T is small in
//     every realistic instance, and dense indexing keeps the fallback scan
//     allocation-free.
//
// AI-Hints:
//   • Construct Config from DefaultConfig() and override fields; call
//     Validate before Generate when parameters come from user input.
//   • DemandSet order reflects generation sequence and is part of the
//     reproducibility contract; it carries no semantic meaning downstream.

package demandgen

// Config holds every parameter of one capacity-driven generation call.
// Created once per call and never mutated; Generate performs no validation
// of its own beyond the documented zero-capacity/zero-intensity edge cases,
// so callers handling untrusted input should run Validate first.
//
// Fields:
//   - Nodes, Items, Periods — problem dimensions U, I, T (positive).
//   - RawCapacity           — raw per-period capacity, uniform across all
//     (node, period) cells.
//   - UnitCapacityCost      — capacity consumed per produced unit (sX).
//   - ChangeoverCost        — capacity consumed per production changeover,
//     independent of quantity (sY).
//   - Utilization           — target capacity utilization ratio in (0,1].
//   - Intensity             — fraction of the U·I·T space materialized as
//     demand points, in [0,1]; 0 yields an empty set.
//   - TimeConcentration, NodeConcentration, ItemConcentration — per-axis
//     concentration knobs in [0,1]; 0 means exactly uniform.
//   - SizeVariance          — demand amount spread around the mean, in [0,1].
//   - Seed                  — seed of the single pseudorandom stream.
type Config struct {
	Nodes   int
	Items   int
	Periods int

	RawCapacity      float64
	UnitCapacityCost float64
	ChangeoverCost   float64

	Utilization float64
	Intensity   float64

	TimeConcentration float64
	NodeConcentration float64
	ItemConcentration float64

	SizeVariance float64

	Seed int64
}

// DefaultConfig returns the documented deterministic defaults: a single-shift
// day of capacity (1440), one capacity unit per produced unit, a moderate
// changeover cost and mildly concentrated distributions.
// Complexity: O(1) time, O(1) space.
func DefaultConfig() Config {
	return Config{
		Nodes:             defaultNodes,
		Items:             defaultItems,
		Periods:           defaultPeriods,
		RawCapacity:       defaultRawCapacity,
		UnitCapacityCost:  defaultUnitCapacityCost,
		ChangeoverCost:    defaultChangeoverCost,
		Utilization:       defaultUtilization,
		Intensity:         defaultIntensity,
		TimeConcentration: defaultTimeConcentration,
		NodeConcentration: defaultNodeConcentration,
		ItemConcentration: defaultItemConcentration,
		SizeVariance:      defaultSizeVariance,
		Seed:              defaultSeed,
	}
}

// DemandPoint is one generated demand record: node u requires Amount units
// of item i in period t. Amount is always positive.
type DemandPoint struct {
	Node   int
	Item   int
	Period int
	Amount float64
}

// DemandSet is the ordered sequence of points produced by one generation
// call. Order reflects generation sequence (reproducibility); consumers must
// not read meaning into it.
type DemandSet []DemandPoint

// capacityGrid tracks the per-(node,period) capacity budget and its
// monotonically increasing consumption during a single allocation pass.
// Both slices are indexed node·periods+period; the grid is exclusively owned
// by one Generate call and discarded on return.
type capacityGrid struct {
	nodes   int
	periods int
	budget  []float64
	used    []float64
}

// newCapacityGrid allocates a zeroed grid for nodes×periods cells.
// Complexity: O(U·T) time and space.
func newCapacityGrid(nodes, periods int) *capacityGrid {
	return &capacityGrid{
		nodes:   nodes,
		periods: periods,
		budget:  make([]float64, nodes*periods),
		used:    make([]float64, nodes*periods),
	}
}

// index maps a (node, period) pair to its slot in the dense slices.
func (g *capacityGrid) index(u, t int) int {
	return u*g.periods + t
}

// remaining reports the unconsumed budget of cell (u,t).
func (g *capacityGrid) remaining(u, t int) float64 {
	idx := g.index(u, t)

	return g.budget[idx] - g.used[idx]
}

// consume records cost units of capacity usage against cell (u,t).
// Usage only ever increases; there is no release operation.
func (g *capacityGrid) consume(u, t int, cost float64) {
	g.used[g.index(u, t)] += cost
}

// totalBudget sums the budget over all cells.
// Complexity: O(U·T).
func (g *capacityGrid) totalBudget() float64 {
	var total float64
	for _, b := range g.budget {
		total += b
	}

	return total
}

// firstFree scans cells in key order (node ascending, then period ascending)
// and returns the first cell with spare budget. The low-index bias of this
// order is documented behavior; changing it would silently change the
// reproducibility contract. ok is false when every cell is exhausted.
// Complexity: O(U·T) worst case.
func (g *capacityGrid) firstFree() (u, t int, ok bool) {
	for u = 0; u < g.nodes; u++ {
		for t = 0; t < g.periods; t++ {
			if g.remaining(u, t) > 0 {
				return u, t, true
			}
		}
	}

	return 0, 0, false
}
