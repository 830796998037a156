// SPDX-License-Identifier: MIT
// Package: lsgen/cmd/lsgen
//
// scenario_test.go — scenario parsing, defaults and strictness.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadScenario_PartialKeepsDefaults(t *testing.T) {
	path := writeScenario(t, `
case:
  nodes: 3
  capacity: 720
demand:
  intensity: 0.4
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Case.Nodes)
	assert.Equal(t, 720.0, s.Case.Capacity)
	assert.Equal(t, 0.4, s.Demand.Intensity)

	// Omitted keys keep built-in defaults.
	assert.Equal(t, 300, s.Case.Items)
	assert.Equal(t, 20, s.Case.Periods)
	assert.Equal(t, "capacity", s.Demand.Mode)
	assert.Equal(t, int64(42), s.Demand.Seed)
	assert.Equal(t, 0.85, s.Demand.Utilization)
}

func TestLoadScenario_RejectsUnknownKeys(t *testing.T) {
	path := writeScenario(t, `
case:
  nodes: 3
  capcity: 720
`)

	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestLoadScenario_RejectsUnknownMode(t *testing.T) {
	path := writeScenario(t, `
demand:
  mode: bursty
`)

	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestScenarioApply_OverwritesFlags(t *testing.T) {
	path := writeScenario(t, `
case:
  nodes: 2
  items: 10
  periods: 4
  enable_transfer: true
demand:
  mode: sparse
  density: 0.5
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)

	// Flag-derived values that must not survive.
	cc := CaseConfig{Nodes: 99, Items: 99, Periods: 99}
	dc := DemandConfig{Mode: "capacity", Seed: 7}
	s.Apply(&cc, &dc)

	assert.Equal(t, 2, cc.Nodes)
	assert.Equal(t, 10, cc.Items)
	assert.Equal(t, 4, cc.Periods)
	assert.True(t, cc.EnableTransfer)
	assert.Equal(t, "sparse", dc.Mode)
	assert.Equal(t, 0.5, dc.Density)
	assert.Equal(t, int64(42), dc.Seed, "seed reverts to the scenario default, not the flag value")
}
