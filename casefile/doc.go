// Package casefile assembles complete lot-sizing problem instances and
// serializes them into the flat, sectioned CSV schema consumed by the
// solver side:
//
//	section,key,u,v,i,t,value
//
// A Case aggregates the problem dimensions, per-item cost and
// capacity-usage vectors, default capacity and initial inventory with
// sparse overrides, the demand list produced by the demandgen package, and
// optional transfer-cost / big-M sections plus solver parameters.
//
// Sections are emitted in a fixed schema order (meta, cost, cap_usage,
// capacity, init, demand, transfer, bigM, solver); index columns that do
// not apply to a row are left empty. Emission is deterministic: identical
// Case values serialize to byte-identical files.
//
// Validation mirrors the write path: WriteCSV refuses a Case that fails
// Validate, so a file on disk always describes a structurally sound
// instance. The package never reads case files back; parsing is explicitly
// out of scope.
package casefile
