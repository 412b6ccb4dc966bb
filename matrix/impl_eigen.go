// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// EigenDecomposition holds the result of EigenSym.
//   - Values[k] is the k-th eigenvalue (diagonal of the rotated matrix, unsorted).
//   - Vectors holds the matching unit eigenvectors as columns.
//   - Rotations counts the Jacobi rotations that were applied.
type EigenDecomposition struct {
	Values    []float64
	Vectors   *Dense
	Rotations int
}

// Vector returns a copy of the k-th eigenvector (column k of Vectors).
func (e *EigenDecomposition) Vector(k int) ([]float64, error) {
	n := e.Vectors.r
	if k < 0 || k >= e.Vectors.c {
		return nil, denseErrorf(ctxAt, 0, k, ErrOutOfRange)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = e.Vectors.data[i*n+k]
	}

	return out, nil
}

// MinIndex returns the index of the smallest eigenvalue (first one on ties).
func (e *EigenDecomposition) MinIndex() int {
	best := 0
	for k := 1; k < len(e.Values); k++ {
		if e.Values[k] < e.Values[best] {
			best = k
		}
	}

	return best
}

// EigenSym computes eigenvalues and eigenvectors of a symmetric matrix via
// classical Jacobi rotations.
//
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Copy into a working Dense A and start Q = I.
//   - Stage 3: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order,
//     apply the rotation that zeroes it to A and accumulate it into Q.
//   - Stage 4: Stop once max |A[p,q]| < tol; fail after maxIter rotations.
//
// Inputs:
//   - m: symmetric Matrix (within tol).
//   - tol: convergence threshold on the largest off-diagonal (typ. 1e-10..1e-12).
//   - maxIter: cap on the number of rotations (must be > 0).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry (validation),
//     ErrEigenFailed (max off-diagonal ≥ tol after maxIter rotations).
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(n²) pivot search + O(n) update per rotation, Space O(n²).
func EigenSym(m Matrix, tol float64, maxIter int) (*EigenDecomposition, error) {
	if err := ValidateSymmetric(m, math.Max(tol, DefaultEpsilon)); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	if maxIter <= 0 {
		return nil, matrixErrorf(opEigen, fmt.Errorf("maxIter=%d: %w", maxIter, ErrEigenFailed))
	}

	n := m.Rows()
	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	q, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}

	var (
		iter               int
		i, j, p, q0        int
		maxOff, off        float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		theta, t, c, s     float64
	)
	A, Q := a.data, q.data
	for iter = 0; iter < maxIter; iter++ {
		// J.1: pivot (p,q0) maximizing |A[p,q0]|
		maxOff = ZeroSum
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(A[i*n+j])
				if off > maxOff {
					maxOff, p, q0 = off, i, j
				}
			}
		}
		// J.2: converged
		if maxOff < tol {
			break
		}

		// J.3: rotation parameters, θ = (aqq−app)/(2·apq)
		app, aqq, apq = A[p*n+p], A[q0*n+q0], A[p*n+q0]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: rotate rows/columns p and q0 of A
		for i = 0; i < n; i++ {
			if i == p || i == q0 {
				continue
			}
			aip, aiq = A[i*n+p], A[i*n+q0]
			A[i*n+p], A[p*n+i] = c*aip-s*aiq, c*aip-s*aiq
			A[i*n+q0], A[q0*n+i] = s*aip+c*aiq, s*aip+c*aiq
		}
		A[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A[q0*n+q0] = s*s*app + 2*c*s*apq + c*c*aqq
		A[p*n+q0], A[q0*n+p] = 0, 0

		// J.5: accumulate into Q
		for i = 0; i < n; i++ {
			qip, qiq = Q[i*n+p], Q[i*n+q0]
			Q[i*n+p] = c*qip - s*qiq
			Q[i*n+q0] = s*qip + c*qiq
		}
	}
	if iter == maxIter {
		// the budget ran out; accept only if the last rotation finished the job
		maxOff = ZeroSum
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				maxOff = math.Max(maxOff, math.Abs(A[i*n+j]))
			}
		}
		if maxOff >= tol {
			return nil, matrixErrorf(opEigen, ErrEigenFailed)
		}
	}

	values := make([]float64, n)
	for i = 0; i < n; i++ {
		values[i] = A[i*n+i]
	}

	return &EigenDecomposition{Values: values, Vectors: q, Rotations: iter}, nil
}

// toDense returns a *Dense deep copy of m, using the flat buffer when possible.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
