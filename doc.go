// Package lsgen generates synthetic test instances for multi-node,
// multi-item, multi-period lot-sizing optimization problems.
//
// 🚀 What is lsgen?
//
//	A deterministic, seedable instance generator that brings together:
//		• Capacity-driven demand generation: demand that is feasible by
//		  construction against a per-(node,period) production budget
//		• Concentration knobs: skew demand toward few periods, nodes or items
//		• Legacy sampling modes: dense, sparse-random and per-axis layouts
//		• Case assembly: cost tables, capacity/inventory overrides,
//		  optional transfer-cost and big-M sections
//		• Sectioned CSV emission in a fixed, solver-facing schema
//
// ✨ Why choose lsgen?
//
//   - Feasibility by construction – generated demand never exceeds the
//     capacity model it was generated from; a post-hoc verifier guards the
//     allocator's own contract
//   - Reproducible – one seeded stream, fixed draw order, byte-identical
//     output for identical configuration
//   - Pure Go core – the generator packages depend on the standard library
//     only; CLI plumbing lives in cmd/lsgen
//
// Under the hood, everything is organized under two subpackages and a cmd:
//
//	demandgen/ — the capacity-driven core: budgets, weights, allocation,
//	             verification, plus the legacy v1 sampling modes
//	casefile/  — full instance records, validation, auxiliary tables and
//	             the section,key,u,v,i,t,value CSV schema
//	cmd/lsgen/ — command-line front end: flags, scenarios, logging,
//	             timestamped output naming and run summaries
//
// Quick sketch of the data flow:
//
//	Config → capacity budget → weight vectors → demand points → verifier
//	       → Case record → CSV
//
// Dive into the demandgen package documentation for the generation
// contract, and into casefile for the on-disk schema.
//
//	go get github.com/katalvlaran/lsgen
package lsgen
