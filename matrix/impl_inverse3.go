// SPDX-License-Identifier: MIT

package matrix

// Det3 returns the determinant of a 3×3 matrix by cofactor expansion along
// the first row.
//
// Errors: ErrNilMatrix, ErrNonSquare / ErrDimensionMismatch (not 3×3).
func Det3(m Matrix) (float64, error) {
	a, err := load3(m)
	if err != nil {
		return 0, matrixErrorf(opDet3, err)
	}

	return det3(&a), nil
}

// Inverse3 computes the inverse of a 3×3 matrix in closed form
// (adjugate divided by the determinant).
//
// Implementation:
//   - Stage 1: validate shape 3×3 and load the nine entries.
//   - Stage 2: det = a00·C00 + a01·C01 + a02·C02; reject zero or non-finite det.
//   - Stage 3: inv[i][j] = cofactor[j][i] / det.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (shape),
//     ErrSingular (det == 0, or det/result not finite).
//
// Complexity:
//   - Time O(1), Space O(1) besides the result.
func Inverse3(m Matrix) (*Dense, error) {
	a, err := load3(m)
	if err != nil {
		return nil, matrixErrorf(opInverse3, err)
	}
	det := det3(&a)
	if det == 0 || !isFinite(det) {
		return nil, matrixErrorf(opInverse3, ErrSingular)
	}

	inv := [9]float64{
		(a[4]*a[8] - a[5]*a[7]) / det,
		(a[2]*a[7] - a[1]*a[8]) / det,
		(a[1]*a[5] - a[2]*a[4]) / det,

		(a[5]*a[6] - a[3]*a[8]) / det,
		(a[0]*a[8] - a[2]*a[6]) / det,
		(a[2]*a[3] - a[0]*a[5]) / det,

		(a[3]*a[7] - a[4]*a[6]) / det,
		(a[1]*a[6] - a[0]*a[7]) / det,
		(a[0]*a[4] - a[1]*a[3]) / det,
	}
	for k, v := range inv {
		if !isFinite(v) {
			return nil, matrixErrorf(opInverse3, ErrSingular)
		}
		inv[k] = v + 0 // fold -0 into +0
	}

	return &Dense{r: 3, c: 3, data: inv[:], validateNaNInf: DefaultValidateNaNInf}, nil
}

// load3 validates m is 3×3 and returns its entries in row-major order.
func load3(m Matrix) ([9]float64, error) {
	var a [9]float64
	if err := ValidateSquare(m); err != nil {
		return a, err
	}
	if m.Rows() != 3 {
		return a, ErrDimensionMismatch
	}
	if d, ok := m.(*Dense); ok {
		copy(a[:], d.data)
		return a, nil
	}
	var (
		i, j int
		err  error
	)
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			if a[i*3+j], err = m.At(i, j); err != nil {
				return a, err
			}
		}
	}

	return a, nil
}

func det3(a *[9]float64) float64 {
	return a[0]*(a[4]*a[8]-a[5]*a[7]) -
		a[1]*(a[3]*a[8]-a[5]*a[6]) +
		a[2]*(a[3]*a[7]-a[4]*a[6])
}
