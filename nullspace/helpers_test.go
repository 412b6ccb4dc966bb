package nullspace_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/homography"
	"github.com/katalvlaran/planar/matrix"
)

// hide wraps any Matrix to force the generic At/Set paths.
type hide struct{ matrix.Matrix }

// fromRows builds a *Dense from row slices or fails the test.
func fromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	flat := make([]float64, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		flat = append(flat, row...)
	}
	m, err := matrix.NewDenseFrom(len(rows), len(rows[0]), flat)
	require.NoError(t, err)

	return m
}

// rankDeficientGram returns BᵀB for a random r×n B (r < n), which has a
// one-dimensional null space when r == n-1.
func rankDeficientGram(t testing.TB, r, n int, seed int64) matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*n)
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}
	b, err := matrix.NewDenseFrom(r, n, data)
	require.NoError(t, err)
	bt, err := matrix.Transpose(b)
	require.NoError(t, err)
	g, err := matrix.Mul(bt, b)
	require.NoError(t, err)

	return g
}

// estimatorGram returns the 9×9 Gram matrix Homography estimation builds
// for four correspondences in general position: normalized points, the
// 8×9 design matrix A, then AᵀA.
func estimatorGram(t testing.TB) matrix.Matrix {
	t.Helper()
	h0, err := homography.New([9]float64{1.1, 0.2, 3, -0.1, 0.9, -2, 0.02, 0.01, 1})
	require.NoError(t, err)
	src := []homography.Point{{X: 0, Y: 0}, {X: 4, Y: 0.5}, {X: 3.5, Y: 5}, {X: -0.5, Y: 4}}
	dst, err := h0.ApplyAll(src)
	require.NoError(t, err)

	ns, _, err := homography.Normalize(src)
	require.NoError(t, err)
	nd, _, err := homography.Normalize(dst)
	require.NoError(t, err)

	data := make([]float64, 0, 8*9)
	for i := range ns {
		x, y, u, v := ns[i].X, ns[i].Y, nd[i].X, nd[i].Y
		data = append(data,
			-x, -y, -1, 0, 0, 0, x*u, y*u, u,
			0, 0, 0, -x, -y, -1, x*v, y*v, v,
		)
	}
	a, err := matrix.NewDenseFrom(8, 9, data)
	require.NoError(t, err)
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	g, err := matrix.Mul(at, a)
	require.NoError(t, err)

	return g
}

// requireUnit asserts ‖v‖₂ == 1 within tol.
func requireUnit(t *testing.T, v []float64, tol float64) {
	t.Helper()
	var s float64
	for _, x := range v {
		s += x * x
	}
	require.InDelta(t, 1.0, math.Sqrt(s), tol)
}

// requireSameVector asserts a and b agree componentwise within tol.
func requireSameVector(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i], got[i], tol, "component %d", i)
	}
}
