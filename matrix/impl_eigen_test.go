package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/matrix"
)

func TestEigenSym_Diagonal(t *testing.T) {
	m := FromRows(t, [][]float64{{3, 0, 0}, {0, 1, 0}, {0, 0, 2}})
	e, err := matrix.EigenSym(m, 1e-12, 100)
	require.NoError(t, err)
	require.Equal(t, 0, e.Rotations)
	require.Equal(t, []float64{3, 1, 2}, e.Values)
	require.Equal(t, 1, e.MinIndex())
}

func TestEigenSym_Known2x2(t *testing.T) {
	// [[2,1],[1,2]] has eigenpairs 1:(1,-1)/√2 and 3:(1,1)/√2.
	m := FromRows(t, [][]float64{{2, 1}, {1, 2}})
	e, err := matrix.EigenSym(m, 1e-12, 10)
	require.NoError(t, err)
	k := e.MinIndex()
	require.InDelta(t, 1.0, e.Values[k], 1e-12)
	v, err := e.Vector(k)
	require.NoError(t, err)
	require.InDelta(t, 0, v[0]+v[1], 1e-12)
	require.InDelta(t, 1/math.Sqrt2, math.Abs(v[0]), 1e-12)
}

// TestEigenSym_Reconstruct verifies A·v = λ·v and orthonormal Q for random symmetric inputs.
func TestEigenSym_Reconstruct(t *testing.T) {
	for _, n := range []int{3, 5, 9} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			a := RandomSymmetric(t, n, int64(n))
			for _, m := range []matrix.Matrix{a, hide{a}} {
				e, err := matrix.EigenSym(m, 1e-12, matrix.DefaultEigenMaxIter)
				require.NoError(t, err)
				for k := 0; k < n; k++ {
					v, err := e.Vector(k)
					require.NoError(t, err)
					av, err := matrix.MatVec(a, v)
					require.NoError(t, err)
					for i := 0; i < n; i++ {
						require.InDelta(t, e.Values[k]*v[i], av[i], 1e-9)
					}
				}
				qt, err := matrix.Transpose(e.Vectors)
				require.NoError(t, err)
				qtq, err := matrix.Mul(qt, e.Vectors)
				require.NoError(t, err)
				for i := 0; i < n; i++ {
					for j := 0; j < n; j++ {
						want := 0.0
						if i == j {
							want = 1
						}
						require.InDelta(t, want, MustAt(t, qtq, i, j), 1e-10)
					}
				}
			}
		})
	}
}

func TestEigenSym_Errors(t *testing.T) {
	_, err := matrix.EigenSym(MustDense(t, 2, 3), 1e-12, 10)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.EigenSym(FromRows(t, [][]float64{{1, 2}, {0, 1}}), 1e-12, 10)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	// One rotation cannot diagonalize a dense 9×9 matrix.
	_, err = matrix.EigenSym(RandomSymmetric(t, 9, 3), 1e-12, 1)
	require.ErrorIs(t, err, matrix.ErrEigenFailed)
}
