// Package planar estimates and applies four-point planar homographies:
// the projective transform that maps one quadrilateral onto another, such as
// the four detected corners of a board in a camera image onto the board's own
// square coordinate system.
//
// 🚀 What is inside?
//
//	matrix/      — shape-checked dense kernels: Mul, Transpose, MatVec,
//	               NormalizeVec, closed-form Inverse3, Jacobi EigenSym
//	nullspace/   — smallest-eigenvalue eigenvector of a symmetric matrix:
//	               Jacobi (default), seeded power iteration with relaxation,
//	               and a gonum cross-check solver
//	homography/  — point normalization, Estimate / EstimateReport /
//	               EstimateTrials, Homography.Apply and Inverse
//	cmd/planar   — CLI over TOML calibration and homography files
//
// ✨ Guarantees
//
//   - Every degeneracy (coincident or collinear points, singular transforms,
//     points mapped to infinity) is an explicit sentinel error, never NaN.
//   - Results are deterministic by default; the power solver takes an
//     explicit seed.
//   - Solver convergence is observable through nullspace.Result.
//
// Quick start:
//
//	src := []homography.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
//	dst := []homography.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
//	h, err := homography.Estimate(src, dst)
//	...
//	p, err := h.Apply(homography.Point{X: 0.5, Y: 0.5}) // (1, 1)
package planar
