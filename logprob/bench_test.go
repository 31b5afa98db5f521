package logprob_test

import (
	"testing"

	"github.com/mmcharchuta/NaiveR/logprob"
	"github.com/mmcharchuta/NaiveR/matrix"
)

// benchmarkEstimate runs Estimate on a synthetic K×G input with predictable
// contents. It resets the timer after setup and fails on unexpected errors.
func benchmarkEstimate(b *testing.B, kmers, genera int) {
	counts, err := matrix.NewDense(kmers, genera)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}
	counts.Apply(func(i, j int, _ float64) float64 {
		return float64((i*genera + j) % 17) // spread of small count values
	})

	priors := make([]float64, kmers)
	for i := range priors {
		priors[i] = 0.5
	}
	totals := make([]float64, genera)
	for j := range totals {
		totals[j] = float64(100 + j)
	}

	b.ResetTimer() // ignore setup time
	for n := 0; n < b.N; n++ {
		if _, err := logprob.Estimate(counts, priors, totals); err != nil {
			b.Fatalf("Estimate failed: %v", err)
		}
	}
}

// BenchmarkEstimate_Small benchmarks a 1024×32 model (toy reference sets).
func BenchmarkEstimate_Small(b *testing.B) {
	benchmarkEstimate(b, 1024, 32)
}

// BenchmarkEstimate_Medium benchmarks a 16384×128 model.
func BenchmarkEstimate_Medium(b *testing.B) {
	benchmarkEstimate(b, 16384, 128)
}

// BenchmarkEstimate_8merScale benchmarks the 4^8 k-mer row count used by
// 16S classifiers with a moderate genus set.
func BenchmarkEstimate_8merScale(b *testing.B) {
	benchmarkEstimate(b, 65536, 64)
}
