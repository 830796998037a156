// SPDX-License-Identifier: MIT
// Package: lsgen/casefile
//
// tables.go — auxiliary table generation for transfer-enabled instances.
//
// Design:
//   • Transfer costs cover every ordered node pair u≠v for every item and
//     period at a uniform-random cost in [minCost, maxCost). Flat nested
//     loops, no structure beyond the index ranges.
//   • Big-M values are per (item, period) and bound the transferable
//     quantity; a safe bound is the total demand of the item across the
//     horizon, or a caller-supplied floor when the item has no demand.
//
// Contract:
//   • Both generators are deterministic under a fixed seed and allocate
//     their full table up front.

package casefile

import (
	"math/rand"

	"github.com/katalvlaran/lsgen/demandgen"
)

// GenerateTransferCosts fills TransferCosts with one entry per ordered node
// pair (u≠v), item and period, drawing each cost uniformly from
// [minCost, maxCost). Existing entries are replaced.
// Complexity: O(U² · I · T) time and space.
func (c *Case) GenerateTransferCosts(minCost, maxCost float64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	span := maxCost - minCost

	costs := make([]TransferCost, 0, c.Nodes*(c.Nodes-1)*c.Items*c.Periods)
	for u := 0; u < c.Nodes; u++ {
		for v := 0; v < c.Nodes; v++ {
			if u == v {
				continue
			}
			for i := 0; i < c.Items; i++ {
				for t := 0; t < c.Periods; t++ {
					costs = append(costs, TransferCost{
						From:   u,
						To:     v,
						Item:   i,
						Period: t,
						Cost:   minCost + rng.Float64()*span,
					})
				}
			}
		}
	}

	c.TransferCosts = costs
}

// GenerateBigM fills BigM with one entry per (item, period). Each value is
// the item's total demand across the horizon, which safely bounds any
// single-period transfer of that item; items without demand fall back to
// floor so the constant stays positive. Existing entries are replaced.
// Complexity: O(|demand| + I·T) time, O(I·T) space.
func (c *Case) GenerateBigM(floor float64) {
	perItem := make([]float64, c.Items)
	for _, d := range c.Demand {
		perItem[d.Item] += d.Amount
	}

	entries := make([]BigM, 0, c.Items*c.Periods)
	for i := 0; i < c.Items; i++ {
		m := perItem[i]
		if m < floor {
			m = floor
		}
		for t := 0; t < c.Periods; t++ {
			entries = append(entries, BigM{Item: i, Period: t, Value: m})
		}
	}

	c.BigM = entries
}

// AttachDemand replaces the demand table wholesale; a convenience seam
// between the generator and the record.
func (c *Case) AttachDemand(d demandgen.DemandSet) {
	c.Demand = d
}
