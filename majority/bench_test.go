package majority_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/majority/majority"
)

// majorityArray builds a shuffled slice of length n where 42 occurs ⌊n/2⌋+1 times.
func majorityArray(n int, rng *rand.Rand) []int {
	out := make([]int, n)
	k := n/2 + 1
	for i := 0; i < k; i++ {
		out[i] = 42
	}
	for i := k; i < n; i++ {
		out[i] = rng.Intn(1000)
	}
	rng.Shuffle(n, func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}

// benchmarkFind runs fn over a fixed majority array of length n.
func benchmarkFind(b *testing.B, n int, fn func([]int) (int, bool)) {
	data := majorityArray(n, rand.New(rand.NewSource(42)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := fn(data); !ok {
			b.Fatalf("expected a majority for n=%d", n)
		}
	}
}

func BenchmarkFindMajority_Small(b *testing.B) {
	benchmarkFind(b, 100, majority.FindMajority[int])
}

func BenchmarkFindMajority_Medium(b *testing.B) {
	benchmarkFind(b, 1000, majority.FindMajority[int])
}

func BenchmarkFindMajority_Large(b *testing.B) {
	benchmarkFind(b, 10000, majority.FindMajority[int])
}

func BenchmarkFindMajorityAssumeExists_Small(b *testing.B) {
	benchmarkFind(b, 100, majority.FindMajorityAssumeExists[int])
}

func BenchmarkFindMajorityAssumeExists_Medium(b *testing.B) {
	benchmarkFind(b, 1000, majority.FindMajorityAssumeExists[int])
}

func BenchmarkFindMajorityAssumeExists_Large(b *testing.B) {
	benchmarkFind(b, 10000, majority.FindMajorityAssumeExists[int])
}

// BenchmarkMeasure_Large shows the overhead of instrumentation.
func BenchmarkMeasure_Large(b *testing.B) {
	data := majorityArray(10000, rand.New(rand.NewSource(42)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		majority.Measure(data, majority.WithInputType("bench-large"))
	}
}
