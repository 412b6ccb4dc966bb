// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
//
// There is no global mutable state: every kernel takes its tolerance
// explicitly, these constants are only the documented defaults that the
// higher-level packages fall back to.
package matrix

// Numeric policy.
const (
	// DefaultEpsilon is the tolerance used by symmetry checks.
	DefaultEpsilon = 1e-9

	// DefaultEigenTolerance is the off-diagonal threshold at which Jacobi
	// rotations stop.
	DefaultEigenTolerance = 1e-12

	// DefaultEigenMaxIter caps the number of Jacobi rotations. A 9×9 Gram
	// matrix typically needs a few hundred.
	DefaultEigenMaxIter = 10000

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0
