package clifford_test

import (
	"testing"

	"github.com/qubitkit/clifftab/clifford"
)

// BenchmarkCompose_TwoQubit measures the core operation of every table
// build: one 2-qubit tableau composition.
func BenchmarkCompose_TwoQubit(b *testing.B) {
	lhs, err := clifford.Element2Q(851)
	if err != nil {
		b.Fatalf("Element2Q failed: %v", err)
	}
	rhs, err := clifford.Element2Q(806)
	if err != nil {
		b.Fatalf("Element2Q failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = clifford.Compose(lhs, rhs); err != nil {
			b.Fatalf("Compose failed: %v", err)
		}
	}
}

// BenchmarkElement2Q measures decoding one enumeration number into its
// layered circuit.
func BenchmarkElement2Q(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := clifford.Element2Q(i % clifford.NumClifford2Q); err != nil {
			b.Fatalf("Element2Q failed: %v", err)
		}
	}
}

// BenchmarkAdjoint_TwoQubit measures one inversion, the per-row cost of the
// 2-qubit inverse table.
func BenchmarkAdjoint_TwoQubit(b *testing.B) {
	e, err := clifford.Element2Q(5760)
	if err != nil {
		b.Fatalf("Element2Q failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Adjoint()
	}
}
