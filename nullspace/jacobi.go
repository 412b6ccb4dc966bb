package nullspace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/planar/matrix"
)

const opJacobi = "Jacobi"

// Jacobi finds the null-space direction with a full Jacobi eigen-decomposition
// (matrix.EigenSym) and picks the column of the smallest eigenvalue.
// It is deterministic and has no random start.
type Jacobi struct {
	maxIter int
	tol     float64
	symTol  float64
}

// NewJacobi builds a Jacobi solver. WithMaxIter caps rotations
// (default matrix.DefaultEigenMaxIter); WithTolerance sets the off-diagonal
// threshold (default matrix.DefaultEigenTolerance). Seeds are ignored.
func NewJacobi(opts ...Option) *Jacobi {
	o := gatherOptions(opts)
	return &Jacobi{
		maxIter: orDefault(o.maxIter, matrix.DefaultEigenMaxIter),
		tol:     orDefaultF(o.tol, matrix.DefaultEigenTolerance),
		symTol:  o.symTol,
	}
}

// Solve implements Solver.
//
// Errors:
//   - matrix.ErrNilMatrix / ErrNonSquare / ErrAsymmetry for bad input.
//   - ErrNotConverged (also matching matrix.ErrEigenFailed) when rotations run out.
func (s *Jacobi) Solve(a matrix.Matrix) (Result, error) {
	if err := validateSymmetric(opJacobi, a, s.symTol); err != nil {
		return Result{}, err
	}
	e, err := matrix.EigenSym(a, s.tol, s.maxIter)
	if err != nil {
		if errors.Is(err, matrix.ErrEigenFailed) {
			return Result{}, fmt.Errorf("%s: %w: %w", opJacobi, ErrNotConverged, err)
		}
		return Result{}, fmt.Errorf("%s: %w", opJacobi, err)
	}
	v, err := e.Vector(e.MinIndex())
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opJacobi, err)
	}

	return finalize(opJacobi, a, v, e.Rotations, true)
}
