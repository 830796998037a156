// Package demandgen defines shared constants used by the generation
// pipeline, ensuring consistent defaults and validation across all stages.
package demandgen

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the originating stage for context.
//-----------------------------------------------------------------------------

const (
	// MethodGenerate is the canonical name of the capacity-driven entry point.
	MethodGenerate = "Generate"
	// MethodGenerateSimple is the canonical name of the legacy-mode entry point.
	MethodGenerateSimple = "GenerateSimple"
	// MethodValidate is the canonical name of the Config validator.
	MethodValidate = "Validate"
	// MethodVerify is the canonical name of the feasibility verifier.
	MethodVerify = "VerifyFeasibility"
)

//-----------------------------------------------------------------------------
// Parameter Domains
//-----------------------------------------------------------------------------

// MinConcentration is the inclusive lower bound of every concentration
// parameter; at exactly this value an axis distribution is uniform.
const MinConcentration = 0.0

// MaxConcentration is the inclusive upper bound of every concentration
// parameter.
const MaxConcentration = 1.0

// MinIntensity is the inclusive lower bound of the demand intensity; zero is
// legal and yields an empty demand set.
const MinIntensity = 0.0

// MaxIntensity is the inclusive upper bound of the demand intensity: at 1.0
// the whole U·I·T space is targeted.
const MaxIntensity = 1.0

//-----------------------------------------------------------------------------
// Feasibility and Amount Bounds
//-----------------------------------------------------------------------------

// FeasibilityTolerance is the multiplicative slack allowed by the verifier:
// per-cell usage may exceed the budget by at most 1%.
const FeasibilityTolerance = 1.01

// MinDemandAmount is the floor applied to every emitted demand amount.
const MinDemandAmount = 1.0

//-----------------------------------------------------------------------------
// Weight Synthesis
//-----------------------------------------------------------------------------

// Base weights are drawn uniformly from [baseWeightMin, baseWeightMax) and
// raised to 1 + c·concentrationPower; at c = MaxConcentration the exponent
// reaches 4, amplifying the spread already present in the uniform draws.
const (
	baseWeightMin      = 0.5
	baseWeightMax      = 1.5
	concentrationPower = 3.0
)

//-----------------------------------------------------------------------------
// Deterministic Defaults
//-----------------------------------------------------------------------------

const (
	defaultNodes             = 5
	defaultItems             = 300
	defaultPeriods           = 20
	defaultRawCapacity       = 1440.0 // one 24h shift in minutes
	defaultUnitCapacityCost  = 1.0
	defaultChangeoverCost    = 10.0
	defaultUtilization       = 0.85
	defaultIntensity         = 0.15
	defaultTimeConcentration = 0.2
	defaultNodeConcentration = 0.3
	defaultItemConcentration = 0.3
	defaultSizeVariance      = 0.3
	defaultSeed              = int64(42)
)
