package nullspace

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/planar/matrix"
)

// Solver returns the unit eigenvector of the smallest eigenvalue of a
// symmetric matrix.
type Solver interface {
	Solve(a matrix.Matrix) (Result, error)
}

// Result is the outcome of a Solve call.
//   - Vector: unit eigenvector, sign fixed so its largest-magnitude entry is positive.
//   - Eigenvalue: Rayleigh quotient vᵀ·A·v of Vector.
//   - Iterations: rotations (Jacobi) or outer iterations (power methods); 0 for Gonum.
//   - Converged: false only when PowerRelaxation/Dominant exhausted the outer budget.
//     For those solvers true means successive Rayleigh quotients agreed within
//     the tolerance; it is not a bound on the vector's error.
type Result struct {
	Vector     []float64
	Eigenvalue float64
	Iterations int
	Converged  bool
}

// Kind names a solver implementation.
type Kind string

const (
	KindJacobi Kind = "jacobi"
	KindPower  Kind = "power"
	KindGonum  Kind = "gonum"
)

// Kinds lists the recognized solver names in a stable order.
func Kinds() []Kind { return []Kind{KindJacobi, KindPower, KindGonum} }

// ParseKind maps a case-insensitive name to a Kind. The empty string selects KindJacobi.
func ParseKind(name string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(name))); k {
	case "":
		return KindJacobi, nil
	case KindJacobi, KindPower, KindGonum:
		return k, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownSolver)
	}
}

// New builds the solver named by kind with the given options.
func New(kind Kind, opts ...Option) (Solver, error) {
	switch kind {
	case KindJacobi, "":
		return NewJacobi(opts...), nil
	case KindPower:
		return NewPowerRelaxation(opts...), nil
	case KindGonum:
		return NewGonum(opts...), nil
	default:
		return nil, fmt.Errorf("%q: %w", string(kind), ErrUnknownSolver)
	}
}
