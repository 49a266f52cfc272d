// Package matrix_test provides benchmarks for the matrix kernels and the solver,
// using deterministic diagonally dominant fixtures.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/engmath/matrix"
)

// benchSizes are the system sizes to benchmark.
var benchSizes = []int{16, 64, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustFromRows(b, diagDominantRows(n, 1337))
			B := MustFromRows(b, diagDominantRows(n, 4242))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		for _, p := range []matrix.Pivoting{matrix.PartialPivoting, matrix.NoPivoting} {
			b.Run(fmt.Sprintf("n=%d/pivoting=%d", n, p), func(b *testing.B) {
				A := MustFromRows(b, diagDominantRows(n, 11))
				rhs := randomVec(n, 22)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					x, err := matrix.Solve(A, rhs, matrix.WithPivoting(p))
					if err != nil {
						b.Fatal(err)
					}
					sinkV = x
				}
			})
		}
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustFromRows(b, diagDominantRows(n, 77))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
