// Package homography estimates the planar projective transform that maps
// four source points onto four destination points, and projects points
// through it.
//
// 🚀 Pipeline (Estimate):
//
//  1. Normalize both point sets (centroid at origin, mean distance √2).
//  2. Reject sets with three collinear points.
//  3. Build the 8×9 design matrix, one row pair per correspondence.
//  4. Form the 9×9 Gram matrix and take its null-space eigenvector
//     with a nullspace.Solver (Jacobi by default).
//  5. Reshape to 3×3, undo normalization H = T_dst⁻¹·H_norm·T_src and
//     divide by H[2][2].
//
// ⚙️ Usage:
//
//	src := []homography.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
//	dst := []homography.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
//	h, err := homography.Estimate(src, dst)
//	if err != nil { ... }
//	p, err := h.Apply(homography.Point{X: 0.5, Y: 0.5}) // (1, 1)
//
// Errors:
//
//	Every arithmetic degeneracy is reported as a sentinel error (ErrPointCount,
//	ErrCoincidentPoints, ErrCollinear, ErrZeroScale, ErrPointAtInfinity,
//	ErrNonFinite, matrix.ErrSingular); no NaN or Inf is ever returned.
//
// Determinism:
//
//	With the default Jacobi solver Estimate is a pure function of its inputs.
//	With the power solver it also depends on the seed (WithSeed).
package homography
