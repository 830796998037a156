// SPDX-License-Identifier: MIT
// Package: lsgen/demandgen
//
// allocate.go — the core stochastic allocation loop.
//
// Canonical model:
//   • Up to n = floor(U·I·T·intensity) points are attempted. For each point
//     the stream is consumed in the fixed order: period, node, item, amount
//     (the amount uniform is NOT consumed when the point is dropped).
//   • A point whose drawn (node,period) cell is exhausted is redirected to
//     the first cell with spare budget in key order (node asc, period asc);
//     when no such cell exists anywhere the point is dropped silently and
//     the final set is smaller than n. Dropping is expected behavior under
//     contention, never an error.
//   • Amounts are drawn uniformly from [min,max] derived from the average
//     per-point capacity share and the size variance, clamped to the cell's
//     remaining budget and floored at MinDemandAmount.
//
// Determinism:
//   • Stable draw order and stable fallback scan order make the emitted
//     sequence byte-identical for identical Config values.
//
// Complexity:
//   • O(n) attempts, each O(log U + log I + log T) for the draws and
//     O(U·T) worst case for the fallback scan ⇒ O(n·U·T) worst case total.

package demandgen

import "math/rand"

// allocateDemand runs the single mutating pass of the pipeline: it draws up
// to n (node, item, period) triples from the axis weights and assigns
// amounts that respect the remaining capacity budget, tracking consumption
// on grid as it proceeds. Returns the emitted points in generation order.
//
// If the total budget across all cells is not positive the allocator returns
// immediately with an empty set.
func allocateDemand(cfg Config, grid *capacityGrid, periodW, nodeW, itemW []float64, n int, rng *rand.Rand) DemandSet {
	demands := DemandSet{}

	total := grid.totalBudget()
	if total <= 0 {
		return demands
	}

	// Expected capacity share per point, expressed in produced units.
	avgAmount := (total / float64(n)) / cfg.UnitCapacityCost

	minAmount := avgAmount * (1.0 - cfg.SizeVariance)
	maxAmount := avgAmount * (1.0 + cfg.SizeVariance)
	if minAmount < MinDemandAmount {
		minAmount = MinDemandAmount
	}
	if maxAmount < minAmount+1 {
		maxAmount = minAmount + 1
	}

	periodSampler := newSampler(periodW)
	nodeSampler := newSampler(nodeW)
	itemSampler := newSampler(itemW)

	for idx := 0; idx < n; idx++ {
		// Fixed per-point draw order: period, node, item.
		t := periodSampler.draw(rng)
		u := nodeSampler.draw(rng)
		i := itemSampler.draw(rng)

		remaining := grid.remaining(u, t)
		if remaining <= 0 {
			// Drawn cell is exhausted: redirect to the first free cell in
			// key order, or drop the point when none exists.
			var ok bool
			if u, t, ok = grid.firstFree(); !ok {
				continue
			}
			remaining = grid.remaining(u, t)
		}

		amount := minAmount + rng.Float64()*(maxAmount-minAmount)

		// Never exceed the cell's remaining budget.
		if ceiling := remaining / cfg.UnitCapacityCost; amount > ceiling {
			amount = ceiling
		}
		if amount < MinDemandAmount {
			amount = MinDemandAmount
		}

		grid.consume(u, t, amount*cfg.UnitCapacityCost)
		demands = append(demands, DemandPoint{Node: u, Item: i, Period: t, Amount: amount})
	}

	return demands
}
