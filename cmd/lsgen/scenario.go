// SPDX-License-Identifier: MIT
// Package: lsgen/cmd/lsgen
//
// scenario.go — YAML scenario files describing a full generation run.
//
// A scenario replaces the case and demand flag groups wholesale: keys
// present in the file win, keys absent fall back to the built-in defaults
// (never to flag values, so a scenario is reproducible regardless of the
// invoking command line). Unknown keys are rejected.

package main

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Scenario is the on-disk schema of one generation run.
type Scenario struct {
	Case struct {
		Nodes          int     `yaml:"nodes"`
		Items          int     `yaml:"items"`
		Periods        int     `yaml:"periods"`
		EnableTransfer bool    `yaml:"enable_transfer"`
		ProductionCost float64 `yaml:"production_cost"`
		SetupCost      float64 `yaml:"setup_cost"`
		HoldingCost    float64 `yaml:"holding_cost"`
		UnitUsage      float64 `yaml:"unit_usage"`
		ChangeoverUse  float64 `yaml:"changeover_use"`
		Capacity       float64 `yaml:"capacity"`
		Inventory      float64 `yaml:"inventory"`

		TransferCostMin float64 `yaml:"transfer_cost_min"`
		TransferCostMax float64 `yaml:"transfer_cost_max"`
		TransferSeed    int64   `yaml:"transfer_seed"`
		BigMFloor       float64 `yaml:"bigm_floor"`
	} `yaml:"case"`

	Demand struct {
		Mode string `yaml:"mode"`
		Seed int64  `yaml:"seed"`

		Utilization       float64 `yaml:"utilization"`
		Intensity         float64 `yaml:"intensity"`
		TimeConcentration float64 `yaml:"time_concentration"`
		NodeConcentration float64 `yaml:"node_concentration"`
		ItemConcentration float64 `yaml:"item_concentration"`
		SizeVariance      float64 `yaml:"size_variance"`

		MinAmount float64 `yaml:"min_amount"`
		MaxAmount float64 `yaml:"max_amount"`
		Density   float64 `yaml:"density"`
	} `yaml:"demand"`
}

// defaultScenario returns a Scenario carrying the same defaults as the flag
// declarations, so keys omitted from a file keep their documented values.
func defaultScenario() *Scenario {
	var s Scenario

	s.Case.Nodes = 5
	s.Case.Items = 300
	s.Case.Periods = 20
	s.Case.ProductionCost = 1.0
	s.Case.SetupCost = 60.0
	s.Case.HoldingCost = 1.0
	s.Case.UnitUsage = 1.0
	s.Case.ChangeoverUse = 10.0
	s.Case.Capacity = 1440
	s.Case.TransferCostMin = 0.5
	s.Case.TransferCostMax = 3.0
	s.Case.TransferSeed = 42
	s.Case.BigMFloor = 1.0

	s.Demand.Mode = "capacity"
	s.Demand.Seed = 42
	s.Demand.Utilization = 0.85
	s.Demand.Intensity = 0.15
	s.Demand.TimeConcentration = 0.2
	s.Demand.NodeConcentration = 0.3
	s.Demand.ItemConcentration = 0.3
	s.Demand.SizeVariance = 0.3
	s.Demand.MinAmount = 10
	s.Demand.MaxAmount = 100
	s.Demand.Density = 0.3

	return &s
}

// LoadScenario reads and strictly parses a scenario file; unknown keys are
// an error so typos never silently fall back to defaults.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	s := defaultScenario()
	if err = yaml.UnmarshalStrict(raw, s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	switch s.Demand.Mode {
	case "capacity", "all", "sparse", "per-item", "per-node":
	default:
		return nil, fmt.Errorf("parsing %s: unknown demand mode %q", path, s.Demand.Mode)
	}

	return s, nil
}

// Apply overwrites the flag-derived configuration with the scenario values.
func (s *Scenario) Apply(cc *CaseConfig, dc *DemandConfig) {
	*cc = CaseConfig{
		Nodes:           s.Case.Nodes,
		Items:           s.Case.Items,
		Periods:         s.Case.Periods,
		EnableTransfer:  s.Case.EnableTransfer,
		ProductionCost:  s.Case.ProductionCost,
		SetupCost:       s.Case.SetupCost,
		HoldingCost:     s.Case.HoldingCost,
		UnitUsage:       s.Case.UnitUsage,
		ChangeoverUse:   s.Case.ChangeoverUse,
		Capacity:        s.Case.Capacity,
		Inventory:       s.Case.Inventory,
		TransferCostMin: s.Case.TransferCostMin,
		TransferCostMax: s.Case.TransferCostMax,
		TransferSeed:    s.Case.TransferSeed,
		BigMFloor:       s.Case.BigMFloor,
	}
	*dc = DemandConfig{
		Mode:              s.Demand.Mode,
		Seed:              s.Demand.Seed,
		Utilization:       s.Demand.Utilization,
		Intensity:         s.Demand.Intensity,
		TimeConcentration: s.Demand.TimeConcentration,
		NodeConcentration: s.Demand.NodeConcentration,
		ItemConcentration: s.Demand.ItemConcentration,
		SizeVariance:      s.Demand.SizeVariance,
		MinAmount:         s.Demand.MinAmount,
		MaxAmount:         s.Demand.MaxAmount,
		Density:           s.Demand.Density,
	}
}
