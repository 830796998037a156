// Package demandgen: capacity budget derivation.
package demandgen

// allocateCapacity derives, for every (node, period) cell, how much raw
// capacity remains for production quantity after reserving an estimated
// changeover overhead, scaled by the target utilization.
//
// The overhead is a rough expectation, not an exact count: each of the I
// item types is assumed to trigger at most one changeover per period,
// thinned by the demand intensity. Capacity is uniform across nodes and
// periods, so the same budget is written to every cell. If the
// overhead alone consumes all raw capacity the budget floors at zero and the
// cell will receive no demand.
//
// Pure function of Config; no randomness is consumed.
// Complexity: O(U·T) time and space.
func allocateCapacity(cfg Config) *capacityGrid {
	// Expected changeovers per period, thinned by intensity.
	setupsPerPeriod := float64(cfg.Items) * cfg.Intensity
	setupOverhead := setupsPerPeriod * cfg.ChangeoverCost

	available := cfg.RawCapacity - setupOverhead
	if available < 0 {
		available = 0
	}
	available *= cfg.Utilization

	grid := newCapacityGrid(cfg.Nodes, cfg.Periods)
	for idx := range grid.budget {
		grid.budget[idx] = available
	}

	return grid
}
