// Package demandgen: post-hoc feasibility verification.
package demandgen

import "fmt"

// verifyFeasibility re-derives per-(node,period) capacity consumption from
// the emitted demand set and confirms it does not exceed the budget by more
// than FeasibilityTolerance.
//
// A violation is an assertion failure on the allocator's own contract, not
// an input error: it aborts generation and reports the offending node,
// period, recomputed usage and budget wrapped around ErrCapacityExceeded.
// Given a correct allocator this check never fires.
// Complexity: O(|demands| + U·T) time, O(U·T) space.
func verifyFeasibility(cfg Config, demands DemandSet, grid *capacityGrid) error {
	usage := make([]float64, len(grid.budget))
	for _, d := range demands {
		usage[grid.index(d.Node, d.Period)] += d.Amount * cfg.UnitCapacityCost
	}

	for u := 0; u < grid.nodes; u++ {
		for t := 0; t < grid.periods; t++ {
			idx := grid.index(u, t)
			if usage[idx] > grid.budget[idx]*FeasibilityTolerance {
				return fmt.Errorf("%s: node=%d period=%d usage=%.6f budget=%.6f: %w",
					MethodVerify, u, t, usage[idx], grid.budget[idx], ErrCapacityExceeded)
			}
		}
	}

	return nil
}
