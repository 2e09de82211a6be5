package assignment_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/asap/assignment"
	"github.com/katalvlaran/asap/sparse"
)

// randomFeasible returns an n×n matrix with a guaranteed diagonal plus about
// k random entries per row.
func randomFeasible(b *testing.B, n, k int) *sparse.CSR {
	rng := rand.New(rand.NewPCG(1, 2))
	bl, err := sparse.NewBuilder(n, n)
	if err != nil {
		b.Fatalf("NewBuilder: %v", err)
	}
	seen := make(map[[2]int]bool)
	var i, e, j int
	for i = 0; i < n; i++ {
		_ = bl.Insert(i, i, rng.Float64()*100)
		seen[[2]int{i, i}] = true
		for e = 0; e < k; e++ {
			j = rng.IntN(n)
			if seen[[2]int{i, j}] {
				continue
			}
			seen[[2]int{i, j}] = true
			_ = bl.Insert(i, j, rng.Float64()*100)
		}
	}

	return bl.Build()
}

func benchmarkMinWeight(b *testing.B, n, k int) {
	m := randomFeasible(b, n, k)
	opts := assignment.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := assignment.MinWeightFullBipartiteMatching(m, opts); err != nil {
			b.Fatalf("MinWeightFullBipartiteMatching failed: %v", err)
		}
	}
}

func BenchmarkMinWeight_200x200_k8(b *testing.B)   { benchmarkMinWeight(b, 200, 8) }
func BenchmarkMinWeight_2000x2000_k8(b *testing.B) { benchmarkMinWeight(b, 2000, 8) }
