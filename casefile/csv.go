// SPDX-License-Identifier: MIT
// Package: lsgen/casefile
//
// csv.go — sectioned CSV emission in the fixed solver-facing schema.
//
// Contract:
//   • Every row is section,key,u,v,i,t,value; index slots that do not apply
//     serialize as empty fields.
//   • Sections appear in exact schema order: meta, cost, cap_usage,
//     capacity (defaults first, overrides after — later rows win on the
//     reader side), init, demand, transfer+bigM (only when enabled), solver.
//   • Emission is deterministic; identical Case values produce
//     byte-identical output.
//
// AI-Hints:
//   • WriteCSV validates first; a written file is always structurally sound.
//   • Floats use the shortest round-trip representation ('g', -1); the
//     schema carries no column typing, readers parse by key.

package casefile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// rowWriter adapts encoding/csv to the fixed 7-column schema.
type rowWriter struct {
	cw *csv.Writer
}

// writeHeader emits the schema header row.
func (r rowWriter) writeHeader() error {
	return r.cw.Write([]string{"section", "key", "u", "v", "i", "t", "value"})
}

// write emits one schema row; noIndex columns become empty fields.
func (r rowWriter) write(section, key string, u, v, i, t int, value string) error {
	return r.cw.Write([]string{section, key, indexField(u), indexField(v), indexField(i), indexField(t), value})
}

// indexField renders an index column, mapping noIndex to the empty field.
func indexField(idx int) string {
	if idx == noIndex {
		return ""
	}

	return strconv.Itoa(idx)
}

// floatField renders a value column with the shortest exact representation.
func floatField(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// boolField renders a flag as 0/1, matching the schema's integer booleans.
func boolField(b bool) string {
	if b {
		return "1"
	}

	return "0"
}

// WriteCSV validates the Case and serializes it to w in schema order.
// Complexity: O(U·T + U·I + I + |sparse entries|) rows.
func (c *Case) WriteCSV(w io.Writer) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	r := rowWriter{cw: csv.NewWriter(w)}
	if err := r.writeHeader(); err != nil {
		return fmt.Errorf("WriteCSV: header: %w", err)
	}

	// 1) meta
	_ = r.write(sectionMeta, keyNodes, noIndex, noIndex, noIndex, noIndex, strconv.Itoa(c.Nodes))
	_ = r.write(sectionMeta, keyItems, noIndex, noIndex, noIndex, noIndex, strconv.Itoa(c.Items))
	_ = r.write(sectionMeta, keyPeriods, noIndex, noIndex, noIndex, noIndex, strconv.Itoa(c.Periods))
	_ = r.write(sectionMeta, keyEnableTransfer, noIndex, noIndex, noIndex, noIndex, boolField(c.EnableTransfer))

	// 2) cost — one row per item, vector by vector.
	for i, v := range c.ProductionCost {
		_ = r.write(sectionCost, keyProductionCost, noIndex, noIndex, i, noIndex, floatField(v))
	}
	for i, v := range c.SetupCost {
		_ = r.write(sectionCost, keySetupCost, noIndex, noIndex, i, noIndex, floatField(v))
	}
	for i, v := range c.HoldingCost {
		_ = r.write(sectionCost, keyHoldingCost, noIndex, noIndex, i, noIndex, floatField(v))
	}

	// 3) cap_usage
	for i, v := range c.UnitUsage {
		_ = r.write(sectionCapUsage, keyUnitUsage, noIndex, noIndex, i, noIndex, floatField(v))
	}
	for i, v := range c.ChangeoverUse {
		_ = r.write(sectionCapUsage, keyChangeoverUse, noIndex, noIndex, i, noIndex, floatField(v))
	}

	// 4) capacity — full default table first, explicit overrides after.
	for u := 0; u < c.Nodes; u++ {
		for t := 0; t < c.Periods; t++ {
			_ = r.write(sectionCapacity, keyCapacity, u, noIndex, noIndex, t, floatField(c.DefaultCapacity))
		}
	}
	for _, o := range c.CapacityOverrides {
		_ = r.write(sectionCapacity, keyCapacity, o.Node, noIndex, noIndex, o.Period, floatField(o.Value))
	}

	// 5) init — same default-then-override layout.
	for u := 0; u < c.Nodes; u++ {
		for i := 0; i < c.Items; i++ {
			_ = r.write(sectionInit, keyInventory, u, noIndex, i, noIndex, floatField(c.DefaultInventory))
		}
	}
	for _, o := range c.InventoryOverrides {
		_ = r.write(sectionInit, keyInventory, o.Node, noIndex, o.Item, noIndex, floatField(o.Value))
	}

	// 6) demand — explicit entries only; absent cells are zero by schema.
	for _, d := range c.Demand {
		_ = r.write(sectionDemand, keyDemand, d.Node, noIndex, d.Item, d.Period, floatField(d.Amount))
	}

	// 7) transfer + bigM, only when enabled.
	if c.EnableTransfer {
		for _, tc := range c.TransferCosts {
			_ = r.write(sectionTransfer, keyTransferCost, tc.From, tc.To, tc.Item, tc.Period, floatField(tc.Cost))
		}
		for _, m := range c.BigM {
			_ = r.write(sectionBigM, keyBigM, noIndex, noIndex, m.Item, m.Period, floatField(m.Value))
		}
	}

	// 8) solver
	_ = r.write(sectionSolver, keyMIPGap, noIndex, noIndex, noIndex, noIndex, floatField(c.Solver.MIPGap))
	_ = r.write(sectionSolver, keyTimeLimit, noIndex, noIndex, noIndex, noIndex, strconv.Itoa(c.Solver.TimeLimitSec))
	_ = r.write(sectionSolver, keyThreads, noIndex, noIndex, noIndex, noIndex, strconv.Itoa(c.Solver.Threads))
	_ = r.write(sectionSolver, keySepViolation, noIndex, noIndex, noIndex, noIndex, floatField(c.Solver.SepViolationEps))
	_ = r.write(sectionSolver, keyMaxIters, noIndex, noIndex, noIndex, noIndex, strconv.Itoa(c.Solver.MaxIters))

	r.cw.Flush()
	if err := r.cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: flush: %w", err)
	}

	return nil
}

// RowCount reports how many data rows WriteCSV will emit (header excluded),
// useful for run summaries without serializing twice.
func (c *Case) RowCount() int {
	count := 4 // meta
	count += 3 * c.Items
	count += 2 * c.Items
	count += c.Nodes*c.Periods + len(c.CapacityOverrides)
	count += c.Nodes*c.Items + len(c.InventoryOverrides)
	count += len(c.Demand)
	if c.EnableTransfer {
		count += len(c.TransferCosts) + len(c.BigM)
	}
	count += 5 // solver

	return count
}
