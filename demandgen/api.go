// SPDX-License-Identifier: MIT
// Package: lsgen/demandgen
//
// api.go — thin public entry point for capacity-driven generation.
//
// Design contract (strict):
//   - One orchestrator: Generate(cfg). Seeds the stream, derives the budget,
//     builds the weight vectors, runs the allocation pass, verifies.
//   - Single-threaded, fully synchronous, no retries or backtracking beyond
//     the allocator's linear fallback scan.
//   - Stream consumption order is fixed and documented: period weights, node
//     weights, item weights, then per-point period/node/item/amount draws.
//     Identical Config (seed included) ⇒ byte-identical DemandSet.
//   - Budget and usage state are local to one call; nothing persists.
//
// AI-Hints:
//   - Generate trusts its Config; run Config.Validate first when parameters
//     come from user input.
//   - An ErrCapacityExceeded return is an internal defect, not bad input.

package demandgen

import (
	"fmt"
	"math/rand"
)

// Generate produces a demand set that is feasible by construction against
// the capacity model described by cfg.
//
// Pipeline: Configure → Allocate Capacity → Generate Weights → Allocate
// Demand → Verify → Return. At most floor(U·I·T·intensity) points are
// emitted; fewer under capacity contention is expected. An intensity of zero
// returns an empty set before any capacity state is built; a fully consumed
// or zero raw capacity returns an empty set regardless of intensity.
//
// The only error Generate can return is the verifier's
// ErrCapacityExceeded, signaling a defect in the allocator itself.
// Complexity: O(U·T + n·U·T) worst case, typically O(U·T + n·log(U·I·T)).
func Generate(cfg Config) (DemandSet, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	n := int(float64(cfg.Nodes*cfg.Items*cfg.Periods) * cfg.Intensity)
	if n == 0 {
		// Nothing to generate; capacity state is never built nor read.
		return DemandSet{}, nil
	}

	grid := allocateCapacity(cfg)

	// Fixed axis order is part of the reproducibility contract.
	periodW := axisWeights(cfg.Periods, cfg.TimeConcentration, rng)
	nodeW := axisWeights(cfg.Nodes, cfg.NodeConcentration, rng)
	itemW := axisWeights(cfg.Items, cfg.ItemConcentration, rng)

	demands := allocateDemand(cfg, grid, periodW, nodeW, itemW, n, rng)

	if err := verifyFeasibility(cfg, demands, grid); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	return demands, nil
}
