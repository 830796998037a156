// SPDX-License-Identifier: MIT
// Package: lsgen/demandgen
//
// simple.go — legacy sampling modes without a capacity model.
//
// These predate the capacity-driven generator and survive for fixtures that
// do not need feasibility guarantees: amounts are drawn uniformly from a
// configured range with no budget tracking whatsoever.
//
// Determinism: each mode consumes its seeded stream in a fixed, documented
// cell order, so identical SimpleConfig values yield identical sets.

package demandgen

import (
	"fmt"
	"math/rand"
)

// Mode selects the layout of a legacy (non-capacity-driven) generation pass.
type Mode int

const (
	// AllCombinations visits every (u,i,t) cell and keeps it with
	// probability Density.
	AllCombinations Mode = iota
	// SparseRandom shuffles the full (u,i,t) space and keeps the first
	// floor(U·I·T·Density) cells.
	SparseRandom
	// PerItemPerTime visits every (i,t) pair with probability Density and
	// assigns a uniformly random node.
	PerItemPerTime
	// PerNodePerTime visits every (u,t) pair with probability Density and
	// assigns a shuffled subset of max(1, floor(I·Density)) items.
	PerNodePerTime
)

// String returns the canonical mode name for logging and scenario files.
func (m Mode) String() string {
	switch m {
	case AllCombinations:
		return "ALL_COMBINATIONS"
	case SparseRandom:
		return "SPARSE_RANDOM"
	case PerItemPerTime:
		return "PER_ITEM_PER_TIME"
	case PerNodePerTime:
		return "PER_NODE_PER_TIME"
	default:
		return "UNKNOWN"
	}
}

// SimpleConfig parameterizes one legacy generation pass.
// Amounts are drawn uniformly from [MinAmount, MaxAmount); Density ∈ [0,1]
// thins the visited space per the selected Mode.
type SimpleConfig struct {
	Nodes   int
	Items   int
	Periods int

	MinAmount float64
	MaxAmount float64

	Density float64
	Seed    int64
	Mode    Mode
}

// DefaultSimpleConfig returns the documented legacy defaults: a dense layout
// over amounts in [1,100).
func DefaultSimpleConfig() SimpleConfig {
	return SimpleConfig{
		MinAmount: MinDemandAmount,
		MaxAmount: 100,
		Density:   1.0,
		Seed:      defaultSeed,
		Mode:      AllCombinations,
	}
}

// GenerateSimple emits demand points according to cfg.Mode without any
// capacity model. Unlike Generate it validates its own parameters, since it
// is a standalone entry point with no separate validation step.
// Complexity: O(U·I·T) time for every mode; SparseRandom additionally holds
// the full cell space in memory for the shuffle.
func GenerateSimple(cfg SimpleConfig) (DemandSet, error) {
	if cfg.Nodes <= 0 || cfg.Items <= 0 || cfg.Periods <= 0 {
		return nil, fmt.Errorf("%s: U=%d I=%d T=%d: %w",
			MethodGenerateSimple, cfg.Nodes, cfg.Items, cfg.Periods, ErrNonPositiveDimension)
	}
	if cfg.Density < 0 || cfg.Density > 1 {
		return nil, fmt.Errorf("%s: density %g not in [0,1]: %w",
			MethodGenerateSimple, cfg.Density, ErrParameterOutOfRange)
	}
	if cfg.MinAmount <= 0 || cfg.MaxAmount < cfg.MinAmount {
		return nil, fmt.Errorf("%s: amount range [%g,%g]: %w",
			MethodGenerateSimple, cfg.MinAmount, cfg.MaxAmount, ErrBadAmountRange)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	amount := func() float64 {
		return cfg.MinAmount + rng.Float64()*(cfg.MaxAmount-cfg.MinAmount)
	}

	demands := DemandSet{}

	switch cfg.Mode {
	case AllCombinations:
		// Stable cell order: u asc, i asc, t asc; one keep-trial per cell.
		for u := 0; u < cfg.Nodes; u++ {
			for i := 0; i < cfg.Items; i++ {
				for t := 0; t < cfg.Periods; t++ {
					if rng.Float64() < cfg.Density {
						demands = append(demands, DemandPoint{Node: u, Item: i, Period: t, Amount: amount()})
					}
				}
			}
		}

	case SparseRandom:
		cells := make([]DemandPoint, 0, cfg.Nodes*cfg.Items*cfg.Periods)
		for u := 0; u < cfg.Nodes; u++ {
			for i := 0; i < cfg.Items; i++ {
				for t := 0; t < cfg.Periods; t++ {
					cells = append(cells, DemandPoint{Node: u, Item: i, Period: t})
				}
			}
		}
		rng.Shuffle(len(cells), func(a, b int) { cells[a], cells[b] = cells[b], cells[a] })

		keep := int(float64(len(cells)) * cfg.Density)
		for idx := 0; idx < keep; idx++ {
			p := cells[idx]
			p.Amount = amount()
			demands = append(demands, p)
		}

	case PerItemPerTime:
		for i := 0; i < cfg.Items; i++ {
			for t := 0; t < cfg.Periods; t++ {
				if rng.Float64() < cfg.Density {
					u := rng.Intn(cfg.Nodes)
					demands = append(demands, DemandPoint{Node: u, Item: i, Period: t, Amount: amount()})
				}
			}
		}

	case PerNodePerTime:
		for u := 0; u < cfg.Nodes; u++ {
			for t := 0; t < cfg.Periods; t++ {
				if rng.Float64() >= cfg.Density {
					continue
				}
				count := int(float64(cfg.Items) * cfg.Density)
				if count < 1 {
					count = 1
				}
				items := rng.Perm(cfg.Items)
				for idx := 0; idx < count; idx++ {
					demands = append(demands, DemandPoint{Node: u, Item: items[idx], Period: t, Amount: amount()})
				}
			}
		}

	default:
		return nil, fmt.Errorf("%s: mode %d: %w", MethodGenerateSimple, cfg.Mode, ErrUnknownMode)
	}

	return demands, nil
}
