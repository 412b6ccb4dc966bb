package nullspace

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/planar/matrix"
)

const opGonum = "Gonum"

// Gonum delegates to gonum's LAPACK-backed symmetric eigensolver, whose
// eigenvalues come back in ascending order. It is an independent reference
// for the in-house Jacobi solver.
type Gonum struct {
	symTol float64
}

// NewGonum builds the gonum-backed solver. Iteration and seed options are ignored.
func NewGonum(opts ...Option) *Gonum {
	o := gatherOptions(opts)
	return &Gonum{symTol: o.symTol}
}

// Solve implements Solver.
func (s *Gonum) Solve(a matrix.Matrix) (Result, error) {
	if err := validateSymmetric(opGonum, a, s.symTol); err != nil {
		return Result{}, err
	}
	n := a.Rows()
	sym := mat.NewSymDense(n, flatten(a))

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return Result{}, fmt.Errorf("%s: %w", opGonum, ErrNotConverged)
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	v := mat.Col(nil, 0, &vecs) // column of the smallest eigenvalue

	return finalize(opGonum, a, v, 0, true)
}
