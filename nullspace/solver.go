package nullspace

import (
	"fmt"
	"math"

	"github.com/katalvlaran/planar/matrix"
)

// validateSymmetric checks a is non-nil, square and symmetric within tol.
func validateSymmetric(op string, a matrix.Matrix, tol float64) error {
	if err := matrix.ValidateSymmetric(a, tol); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// rayleigh returns vᵀ·A·v.
func rayleigh(a matrix.Matrix, v []float64) (float64, error) {
	av, err := matrix.MatVec(a, v)
	if err != nil {
		return 0, err
	}
	return matrix.Dot(v, av)
}

// canonicalSign flips v in place so its largest-magnitude entry is positive.
// Eigenvectors are defined up to sign; this makes solvers comparable.
func canonicalSign(v []float64) {
	k := 0
	for i := range v {
		if math.Abs(v[i]) > math.Abs(v[k]) {
			k = i
		}
	}
	if v[k] < 0 {
		for i := range v {
			v[i] = -v[i]
		}
	}
}

// finalize normalizes v, fixes its sign and fills in the Rayleigh quotient.
func finalize(op string, a matrix.Matrix, v []float64, iterations int, converged bool) (Result, error) {
	u, err := matrix.NormalizeVec(v)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %v: %w", op, err, ErrDiverged)
	}
	canonicalSign(u)
	lambda, err := rayleigh(a, u)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}
	return Result{Vector: u, Eigenvalue: lambda, Iterations: iterations, Converged: converged}, nil
}
