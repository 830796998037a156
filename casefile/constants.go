// Package casefile defines shared constants: canonical section and key
// tokens of the CSV schema, plus solver defaults.
package casefile

//-----------------------------------------------------------------------------
// Schema Tokens
//   The on-disk vocabulary is part of the public contract; renaming any of
//   these breaks downstream consumers.
//-----------------------------------------------------------------------------

const (
	sectionMeta     = "meta"
	sectionCost     = "cost"
	sectionCapUsage = "cap_usage"
	sectionCapacity = "capacity"
	sectionInit     = "init"
	sectionDemand   = "demand"
	sectionTransfer = "transfer"
	sectionBigM     = "bigM"
	sectionSolver   = "solver"
)

const (
	keyNodes          = "U"
	keyItems          = "I"
	keyPeriods        = "T"
	keyEnableTransfer = "enable_transfer"
	keyProductionCost = "cX"
	keySetupCost      = "cY"
	keyHoldingCost    = "cI"
	keyUnitUsage      = "sX"
	keyChangeoverUse  = "sY"
	keyCapacity       = "C"
	keyInventory      = "I0"
	keyDemand         = "Demand"
	keyTransferCost   = "cT"
	keyBigM           = "M"
	keyMIPGap         = "mip_gap"
	keyTimeLimit      = "time_limit_sec"
	keyThreads        = "threads"
	keySepViolation   = "sep_violation_eps"
	keyMaxIters       = "max_iters"
)

// noIndex marks an index column that does not apply to a row; it serializes
// to an empty field.
const noIndex = -1

//-----------------------------------------------------------------------------
// Solver Defaults
//-----------------------------------------------------------------------------

const (
	defaultMIPGap          = 1e-6
	defaultTimeLimitSec    = 60
	defaultThreads         = 0 // 0 = solver decides
	defaultSepViolationEps = 1e-8
	defaultMaxIters        = 50
)
