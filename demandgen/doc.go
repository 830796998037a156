// Package demandgen implements capacity-driven demand generation for
// lot-sizing problem instances: it materializes a stochastic set of
// (node, item, period, amount) demand points that is feasible by
// construction against a per-(node, period) production capacity budget.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Config:          immutable parameter record for one generation call.
//     – DefaultConfig:   deterministic, documented defaults.
//     – Config.Validate: caller-side parameter validation.
//   - Generation pipeline (one linear pass, no retries):
//     – capacity budget: raw capacity minus estimated changeover overhead,
//     scaled by the target utilization, identical for every (node, period).
//     – weight vectors:  one concentration-controlled categorical
//     distribution per axis (period, node, item).
//     – demand points:   stochastic draws against the remaining budget,
//     with a first-free fallback scan and silent drops under contention.
//     – verification:    post-hoc recomputation of per-cell consumption
//     against the budget (1% tolerance).
//   - Legacy sampling modes (no capacity model):
//     – GenerateSimple with AllCombinations, SparseRandom, PerItemPerTime
//     and PerNodePerTime layouts.
//
// Guarantees:
//
//   - Feasibility by construction: for every (node, period) cell, the sum of
//     amount × unit capacity cost over emitted points never exceeds the
//     cell's budget by more than FeasibilityTolerance.
//   - Determinism: a single seeded stream is consumed in a fixed, documented
//     order (period weights, node weights, item weights, then per-point
//     period/node/item/amount draws); identical Config values yield
//     identical DemandSets, element for element.
//   - Bounded output: at most floor(U·I·T·intensity) points are emitted;
//     fewer under capacity contention is expected behavior, not an error.
//   - No cross-call state: budgets and usage live only for one Generate call.
//
// The only fatal condition the package can raise is the feasibility check
// failing, which signals a defect in the allocator itself and is surfaced as
// ErrCapacityExceeded with the offending node, period, usage and budget.
//
// See individual function documentation for detailed contracts, edge cases
// and complexity notes.
package demandgen
