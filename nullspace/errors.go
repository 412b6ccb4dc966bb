package nullspace

import "errors"

var (
	// ErrNotConverged is returned when a solver that must converge (Jacobi,
	// Gonum) exhausts its budget. PowerRelaxation reports Converged=false instead.
	ErrNotConverged = errors.New("nullspace: eigen solver did not converge")

	// ErrDiverged is returned when an iterate becomes zero or non-finite.
	ErrDiverged = errors.New("nullspace: iteration produced a degenerate vector")

	// ErrUnknownSolver is returned by ParseKind/New for unrecognized names.
	ErrUnknownSolver = errors.New("nullspace: unknown solver")
)
