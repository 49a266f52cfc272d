// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels and the solver.
//   • Keep all data finite and well-formed unless a test is about the numeric policy.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/engmath/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance used for solver round-trips on well-conditioned data.
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At/Set fallback paths in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFromRows builds a *Dense from rows or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireMatrixInDelta compares m against want element-wise within delta.
func RequireMatrixInDelta(t testing.TB, want [][]float64, m matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], MustAt(t, m, i, j), delta, "element [%d,%d]", i, j)
		}
	}
}

// diagDominantRows returns a random n×n strictly diagonally dominant matrix,
// which is non-singular and well-conditioned; seeded for determinism.
func diagDominantRows(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	var i, j int
	var off float64
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		off = 0
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			rows[i][j] = rng.Float64()*2 - 1
			if rows[i][j] < 0 {
				off -= rows[i][j]
			} else {
				off += rows[i][j]
			}
		}
		rows[i][i] = off + 1 + rng.Float64()
	}

	return rows
}

// randomVec returns a seeded vector with entries in [-10, 10).
func randomVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*20 - 10
	}

	return v
}

// cloneRows deep-copies rows so tests can assert that inputs stay untouched.
func cloneRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i := range rows {
		out[i] = append([]float64(nil), rows[i]...)
	}

	return out
}
