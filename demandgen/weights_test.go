// Package demandgen contains unit tests for the weight synthesis and the
// cumulative-distribution sampler (internal surfaces).
package demandgen

import (
	"math"
	"math/rand"
	"testing"
)

const weightSumEps = 1e-12

// TestAxisWeights_UniformBypassesRNG verifies that concentration 0 yields
// exactly 1/n per entry and consumes no randomness from the stream.
func TestAxisWeights_UniformBypassesRNG(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	before := rng.Float64() // consume one value to fix the stream position

	rng = rand.New(rand.NewSource(7))
	weights := axisWeights(4, 0, rng)

	for i, w := range weights {
		if w != 0.25 {
			t.Errorf("weights[%d]: expected exactly 0.25, got %g", i, w)
		}
	}

	// The next draw must equal the first draw of a fresh stream: the uniform
	// branch must not have consumed anything.
	if got := rng.Float64(); got != before {
		t.Errorf("uniform branch consumed randomness: expected next draw %g, got %g", before, got)
	}
}

// TestAxisWeights_ConcentratedNormalized verifies that c > 0 produces
// positive weights summing to 1 and consumes exactly n uniforms.
func TestAxisWeights_ConcentratedNormalized(t *testing.T) {
	t.Parallel()

	const n = 16
	rng := rand.New(rand.NewSource(42))
	weights := axisWeights(n, 0.8, rng)

	if len(weights) != n {
		t.Fatalf("expected %d weights, got %d", n, len(weights))
	}

	var sum float64
	for i, w := range weights {
		if w <= 0 {
			t.Errorf("weights[%d]: expected positive, got %g", i, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightSumEps {
		t.Errorf("weights sum: expected 1.0 within %g, got %.15f", weightSumEps, sum)
	}

	// Same seed, same concentration ⇒ identical vector.
	again := axisWeights(n, 0.8, rand.New(rand.NewSource(42)))
	for i := range weights {
		if weights[i] != again[i] {
			t.Errorf("weights[%d]: determinism broken: %g vs %g", i, weights[i], again[i])
		}
	}
}

// TestSampler_DegenerateWeight verifies that a distribution with all mass on
// one index always draws that index.
func TestSampler_DegenerateWeight(t *testing.T) {
	t.Parallel()

	s := newSampler([]float64{0, 1, 0})
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 64; trial++ {
		if idx := s.draw(rng); idx != 1 {
			t.Fatalf("trial %d: expected index 1, got %d", trial, idx)
		}
	}
}

// TestSampler_CoversSupport verifies that a uniform sampler stays in range
// and eventually visits every index.
func TestSampler_CoversSupport(t *testing.T) {
	t.Parallel()

	const n = 4
	s := newSampler([]float64{0.25, 0.25, 0.25, 0.25})
	rng := rand.New(rand.NewSource(99))

	seen := make([]bool, n)
	for trial := 0; trial < 1024; trial++ {
		idx := s.draw(rng)
		if idx < 0 || idx >= n {
			t.Fatalf("trial %d: index %d out of range [0,%d)", trial, idx, n)
		}
		seen[idx] = true
	}
	for i, ok := range seen {
		if !ok {
			t.Errorf("index %d never drawn in 1024 uniform trials", i)
		}
	}
}
