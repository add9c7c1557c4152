package floydwarshall_test

import (
	"math/rand"
	"testing"

	"github.com/SPIN0ZAi/Data-Structures-Visualizer-sub000/floydwarshall"
	"github.com/SPIN0ZAi/Data-Structures-Visualizer-sub000/matrix"
)

// benchCost builds a deterministic n×n cost matrix: zero diagonal, roughly a
// third of the off-diagonal cells unreachable, the rest small positive
// weights. Fatal on allocation failure.
func benchCost(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()

	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				rows[i][j] = 0
			case rng.Float64() < 0.3:
				rows[i][j] = matrix.Unreachable()
			default:
				rows[i][j] = float64(rng.Intn(20) + 1)
			}
		}
	}

	m, err := matrix.FromRows(rows)
	if err != nil {
		b.Fatalf("FromRows(%d): %v", n, err)
	}

	return m
}

// benchmarkSolve runs Solve with the given options on an n×n fixture.
func benchmarkSolve(b *testing.B, n int, opts ...floydwarshall.Option) {
	cost := benchCost(b, n, 1)

	b.ResetTimer() // ignore fixture construction
	for i := 0; i < b.N; i++ {
		if _, err := floydwarshall.Solve(cost, opts...); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// FullTrace sizes stay small on purpose: every update step snapshots the
// whole matrix, which is the intended memory profile of the traced mode.

func BenchmarkSolve_FullTrace_10(b *testing.B) {
	benchmarkSolve(b, 10)
}

func BenchmarkSolve_FullTrace_25(b *testing.B) {
	benchmarkSolve(b, 25)
}

func BenchmarkSolve_NoTrace_25(b *testing.B) {
	benchmarkSolve(b, 25, floydwarshall.WithoutTrace())
}

func BenchmarkSolve_NoTrace_100(b *testing.B) {
	benchmarkSolve(b, 100, floydwarshall.WithoutTrace())
}

func BenchmarkMinCycle_100(b *testing.B) {
	cost := benchCost(b, 100, 2)
	dist, _, err := floydwarshall.SolveDistances(cost)
	if err != nil {
		b.Fatalf("SolveDistances: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = floydwarshall.MinCycle(dist); err != nil {
			b.Fatalf("MinCycle failed: %v", err)
		}
	}
}
