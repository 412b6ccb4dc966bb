package homography_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/homography"
	"github.com/katalvlaran/planar/matrix"
)

func TestNormalize_CentroidAndSpread(t *testing.T) {
	for _, ps := range [][]homography.Point{unitSquare, twoSquare, board} {
		out, sim, err := homography.Normalize(ps)
		require.NoError(t, err)
		require.Len(t, out, len(ps))

		var cx, cy, d float64
		for _, p := range out {
			cx += p.X
			cy += p.Y
			d += p.Norm()
		}
		n := float64(len(out))
		require.InDelta(t, 0, cx/n, 1e-12)
		require.InDelta(t, 0, cy/n, 1e-12)
		require.InDelta(t, math.Sqrt2, d/n, 1e-12)
		require.Greater(t, sim.Scale, 0.0)
	}
}

func TestNormalize_UnitSquare(t *testing.T) {
	out, sim, err := homography.Normalize(unitSquare)
	require.NoError(t, err)
	require.InDelta(t, 2.0, sim.Scale, 1e-12)
	require.Equal(t, homography.Point{X: 0.5, Y: 0.5}, sim.Centroid)
	requirePoint(t, homography.Point{X: -1, Y: -1}, out[0], 1e-12)
	requirePoint(t, homography.Point{X: 1, Y: 1}, out[2], 1e-12)
}

func TestSimilarity_MatrixInverts(t *testing.T) {
	out, sim, err := homography.Normalize(board)
	require.NoError(t, err)

	inv, err := matrix.Inverse3(sim.Matrix())
	require.NoError(t, err)
	prod, err := matrix.Mul(inv, sim.Matrix())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := prod.At(i, j)
			require.NoError(t, err)
			want := 0.0
			if i == j {
				want = 1
			}
			require.InDelta(t, want, v, 1e-12)
		}
	}

	// The inverse maps normalized points back onto the originals.
	back, err := homography.FromMatrix(inv)
	require.NoError(t, err)
	for i, p := range out {
		q, err := back.Apply(p)
		require.NoError(t, err)
		requirePoint(t, board[i], q, 1e-9)
	}
}

func TestNormalize_Errors(t *testing.T) {
	_, _, err := homography.Normalize(nil)
	require.ErrorIs(t, err, homography.ErrPointCount)

	_, _, err = homography.Normalize([]homography.Point{{X: 1, Y: 2}, {X: 1, Y: 2}})
	require.ErrorIs(t, err, homography.ErrCoincidentPoints)

	_, _, err = homography.Normalize([]homography.Point{{X: 1, Y: math.Inf(1)}, {X: 0, Y: 0}})
	require.ErrorIs(t, err, homography.ErrNonFinite)
}
