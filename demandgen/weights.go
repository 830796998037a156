// SPDX-License-Identifier: MIT
// Package: lsgen/demandgen
//
// weights.go — concentration-controlled categorical distributions and the
// cumulative-distribution sampler used to draw from them.
//
// Contract:
//   • axisWeights(n, 0, rng) returns exactly 1/n per entry and consumes NO
//     randomness (the uniform case bypasses the stream entirely).
//   • For c > 0 each entry draws one uniform base from [0.5,1.5), raises it
//     to the power 1+3c and renormalizes; larger c sharpens the spread
//     already present in the draws. This is a stochastic skew, not a
//     deterministic selection of a small support.
//   • Axis order is fixed by the caller (period, then node, then item) so a
//     given seed reproduces identical vectors across runs.
//
// AI-Hints:
//   • sampler.draw costs O(log n) via binary search over prefix sums; build
//     one sampler per axis and reuse it for every point.

package demandgen

import (
	"math"
	"math/rand"
	"sort"
)

// axisWeights produces one categorical probability distribution over an axis
// of size n with concentration c ∈ [0,1]. The returned weights are
// non-negative and sum to 1.
// Complexity: O(n) time, O(n) space; consumes n uniforms iff c > 0.
func axisWeights(n int, c float64, rng *rand.Rand) []float64 {
	weights := make([]float64, n)

	if c == 0 {
		// Exactly uniform, bypassing the stream: 1/n per entry.
		uniform := 1.0 / float64(n)
		for i := range weights {
			weights[i] = uniform
		}

		return weights
	}

	exponent := 1.0 + c*concentrationPower

	var total float64
	for i := range weights {
		base := baseWeightMin + rng.Float64()*(baseWeightMax-baseWeightMin)
		weights[i] = math.Pow(base, exponent)
		total += weights[i]
	}

	// Renormalize so the entries form a probability distribution.
	for i := range weights {
		weights[i] /= total
	}

	return weights
}

// sampler draws categorical indices proportionally to a fixed weight vector
// using prefix sums and binary search.
type sampler struct {
	cum []float64
}

// newSampler precomputes the cumulative distribution of weights.
// Complexity: O(n) time and space.
func newSampler(weights []float64) sampler {
	cum := make([]float64, len(weights))
	var running float64
	for i, w := range weights {
		running += w
		cum[i] = running
	}

	return sampler{cum: cum}
}

// draw consumes exactly one uniform from rng and returns an index with
// probability proportional to its weight.
// Complexity: O(log n) time, O(1) space.
func (s sampler) draw(rng *rand.Rand) int {
	// Scale by the final prefix sum rather than assuming exactly 1.0 to stay
	// robust against renormalization rounding.
	r := rng.Float64() * s.cum[len(s.cum)-1]

	idx := sort.Search(len(s.cum), func(i int) bool { return s.cum[i] > r })
	if idx == len(s.cum) {
		idx = len(s.cum) - 1
	}

	return idx
}
