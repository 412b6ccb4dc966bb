// Package matrix provides the dense linear-algebra kernels used by the
// planar homography estimator.
//
// What & Why:
//
//	Homography estimation needs a handful of small, shape-checked
//	operations: matrix multiply, transpose, matrix-vector multiply,
//	vector normalization, a closed-form 3×3 inverse and a symmetric
//	eigen-decomposition. They are instantiated at sizes 8×9, 9×8, 9×9,
//	9×1 and 3×3, but every kernel is generic over compatible shapes.
//
// The package provides:
//
//   - Matrix, the minimal mutable 2D interface, and Dense, its row-major
//     implementation with bounds-checked At/Set.
//   - Kernels: Mul, Transpose, Scale, MatVec, Dot, NormalizeVec.
//   - Det3 / Inverse3 for 3×3 matrices via cofactor expansion.
//   - EigenSym (Jacobi rotations) for symmetric matrices.
//   - Validators shared by all kernels, returning sentinel errors.
//
// Errors:
//
//	Kernels never panic on user input. They return the sentinels declared
//	in errors.go wrapped with an operation tag ("Mul: ...") so callers can
//	match with errors.Is.
//
// Complexity:
//
//	Mul is O(r·n·c); Transpose, Scale O(r·c); MatVec O(r·c);
//	EigenSym O(maxIter·n) per rotation; Inverse3 O(1).
package matrix
