package nullspace

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/katalvlaran/planar/matrix"
)

const (
	opPower    = "PowerRelaxation"
	opDominant = "Dominant"
)

// PowerRelaxation approximates the smallest-eigenvalue eigenvector by shifted
// (zero-shift) power iteration on A⁻¹ without ever forming A⁻¹: each outer
// step solves A·x = v approximately by per-coordinate relaxation
//
//	x[i] = (v[i] − Σ_{j≠i} A[i][j]·x[j]) / A[i][i]
//
// for a fixed number of sweeps, then renormalizes x and compares successive
// Rayleigh quotients vᵀ·A·v. Exact-zero diagonal divisors are replaced by
// ZeroDiagonalEpsilon.
//
// The start vector is random, so results may differ in the last digits
// between calls; the direction (sign fixed by canonicalSign) is stable for
// well-conditioned inputs. Convergence is not guaranteed for matrices with a
// null space of dimension > 1.
//
// Result.Converged only says that two successive Rayleigh quotients were
// within the tolerance inside the outer budget. It does not bound the error
// of the vector: on ill-conditioned Grams the quotient settles while the
// vector is still off by about 1e-3 per component. Check the fit with
// homography's Report.RelativeResidual and Report.Reprojection instead.
type PowerRelaxation struct {
	maxIter   int
	innerIter int
	tol       float64
	symTol    float64

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewPowerRelaxation builds the solver. Defaults: DefaultPowerMaxIter outer
// iterations, DefaultPowerInnerIter sweeps, DefaultPowerTolerance.
func NewPowerRelaxation(opts ...Option) *PowerRelaxation {
	o := gatherOptions(opts)
	return &PowerRelaxation{
		maxIter:   orDefault(o.maxIter, DefaultPowerMaxIter),
		innerIter: orDefault(o.innerIter, DefaultPowerInnerIter),
		tol:       orDefaultF(o.tol, DefaultPowerTolerance),
		symTol:    o.symTol,
		rng:       o.rng,
	}
}

// start draws a normalized random vector under the solver's lock.
func (s *PowerRelaxation) start(n int) ([]float64, error) {
	s.mu.Lock()
	v := randomVector(s.rng, n)
	s.mu.Unlock()
	return matrix.NormalizeVec(v)
}

// Solve implements Solver. Exhausting the outer budget is not an error:
// the last iterate is returned with Converged=false.
//
// Errors:
//   - matrix.ErrNilMatrix / ErrNonSquare / ErrAsymmetry for bad input.
//   - ErrDiverged when an iterate collapses to zero or overflows.
func (s *PowerRelaxation) Solve(a matrix.Matrix) (Result, error) {
	if err := validateSymmetric(opPower, a, s.symTol); err != nil {
		return Result{}, err
	}
	d, err := matrix.NewDenseFrom(a.Rows(), a.Cols(), flatten(a))
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opPower, err)
	}
	n := d.Rows()
	A := d.RawData()

	// Stage 1: random unit start
	v, err := s.start(n)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %v: %w", opPower, err, ErrDiverged)
	}

	var (
		iter, sweep, i, j int
		sum, diag         float64
		lambda, lambdaOld float64
		converged         bool
		x                 = make([]float64, n)
	)
	for iter = 0; iter < s.maxIter; iter++ {
		// Stage 2: relaxation solve of A·x = v, always the full sweep budget
		copy(x, v)
		for sweep = 0; sweep < s.innerIter; sweep++ {
			for i = 0; i < n; i++ {
				sum = matrix.ZeroSum
				for j = 0; j < n; j++ {
					if j != i {
						sum += A[i*n+j] * x[j]
					}
				}
				diag = A[i*n+i]
				if diag == 0 {
					diag = ZeroDiagonalEpsilon
				}
				x[i] = (v[i] - sum) / diag
			}
		}

		// Stage 3: renormalize and test the Rayleigh quotient
		if v, err = matrix.NormalizeVec(x); err != nil {
			return Result{}, fmt.Errorf("%s: iteration %d: %v: %w", opPower, iter, err, ErrDiverged)
		}
		if lambda, err = rayleigh(d, v); err != nil {
			return Result{}, fmt.Errorf("%s: %w", opPower, err)
		}
		if math.Abs(lambda-lambdaOld) < s.tol {
			converged = true
			iter++
			break
		}
		lambdaOld = lambda
	}

	return finalize(opPower, d, v, iter, converged)
}

// Dominant approximates the eigenvector of the largest-magnitude eigenvalue
// by plain power iteration (v ← A·v / ‖A·v‖) until successive Rayleigh
// quotients differ by less than the tolerance. For a PSD matrix its
// Eigenvalue is the spectral norm, which scales the residual of the
// smallest eigenpair into a relative figure.
//
// Options: WithSeed/WithRand, WithMaxIter (default 100), WithTolerance (default 1e-10).
func Dominant(a matrix.Matrix, opts ...Option) (Result, error) {
	o := gatherOptions(opts)
	if err := validateSymmetric(opDominant, a, o.symTol); err != nil {
		return Result{}, err
	}
	maxIter := orDefault(o.maxIter, 100)
	tol := orDefaultF(o.tol, DefaultPowerTolerance)

	v, err := matrix.NormalizeVec(randomVector(o.rng, a.Rows()))
	if err != nil {
		return Result{}, fmt.Errorf("%s: %v: %w", opDominant, err, ErrDiverged)
	}
	var (
		iter              int
		av                []float64
		lambda, lambdaOld float64
		converged         bool
	)
	for iter = 0; iter < maxIter; iter++ {
		if av, err = matrix.MatVec(a, v); err != nil {
			return Result{}, fmt.Errorf("%s: %w", opDominant, err)
		}
		if lambda, err = matrix.Dot(v, av); err != nil {
			return Result{}, fmt.Errorf("%s: %w", opDominant, err)
		}
		if v, err = matrix.NormalizeVec(av); err != nil {
			return Result{}, fmt.Errorf("%s: iteration %d: %v: %w", opDominant, iter, err, ErrDiverged)
		}
		if math.Abs(lambda-lambdaOld) < tol {
			converged = true
			iter++
			break
		}
		lambdaOld = lambda
	}

	return finalize(opDominant, a, v, iter, converged)
}

// flatten copies any Matrix into a row-major slice. a must already be validated.
func flatten(a matrix.Matrix) []float64 {
	if d, ok := a.(*matrix.Dense); ok {
		return d.RawData()
	}
	rows, cols := a.Rows(), a.Cols()
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[i*cols+j], _ = a.At(i, j) // bounds already validated
		}
	}
	return out
}
