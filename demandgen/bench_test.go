package demandgen_test

import (
	"testing"

	"github.com/katalvlaran/lsgen/demandgen"
)

// benchmarkGenerate runs the capacity-driven generator for the given
// dimensions, resetting the timer after configuration setup.
func benchmarkGenerate(b *testing.B, nodes, items, periods int) {
	cfg := demandgen.DefaultConfig()
	cfg.Nodes = nodes
	cfg.Items = items
	cfg.Periods = periods

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := demandgen.Generate(cfg); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_Small benchmarks a 3×50×8 instance.
func BenchmarkGenerate_Small(b *testing.B) {
	benchmarkGenerate(b, 3, 50, 8)
}

// BenchmarkGenerate_Default benchmarks the documented 5×300×20 defaults.
func BenchmarkGenerate_Default(b *testing.B) {
	benchmarkGenerate(b, 5, 300, 20)
}

// BenchmarkGenerateSimple_Sparse benchmarks the legacy shuffled-prefix mode,
// which holds the full cell space in memory.
func BenchmarkGenerateSimple_Sparse(b *testing.B) {
	cfg := demandgen.DefaultSimpleConfig()
	cfg.Nodes, cfg.Items, cfg.Periods = 5, 300, 20
	cfg.Density = 0.3
	cfg.Mode = demandgen.SparseRandom

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := demandgen.GenerateSimple(cfg); err != nil {
			b.Fatalf("GenerateSimple failed: %v", err)
		}
	}
}
