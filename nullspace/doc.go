// Package nullspace extracts the eigenvector of the smallest eigenvalue of a
// symmetric positive-semidefinite matrix: the null-space direction of a
// homogeneous least-squares system such as the homography Gram matrix.
//
// 🚀 Solvers:
//
//	Jacobi           — deterministic Jacobi rotations (matrix.EigenSym); default.
//	PowerRelaxation  — shifted power iteration whose inner step solves A·x = v
//	                   by per-coordinate relaxation; seeded random start.
//	Gonum            — LAPACK-backed gonum/mat.EigenSym, mainly a cross-check.
//
// Every solver returns a Result carrying the unit vector, its Rayleigh
// quotient, the iteration count and a Converged flag, so callers can tell an
// exhausted iteration budget apart from a converged answer.
//
// ⚙️ Usage:
//
//	s := nullspace.NewJacobi()
//	res, err := s.Solve(gram) // gram: symmetric 9×9 matrix.Matrix
//	if err != nil { ... }
//	h := res.Vector           // ‖h‖ == 1, largest |component| positive
//
// Determinism:
//
//	Jacobi and Gonum are deterministic. PowerRelaxation draws its start vector
//	from an explicit *rand.Rand (WithSeed / WithRand); seed 0 selects a fixed
//	default seed, so repeated runs of a fresh solver are reproducible.
package nullspace
