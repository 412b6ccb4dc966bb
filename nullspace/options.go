package nullspace

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/planar/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPowerMaxIter caps outer power iterations.
	DefaultPowerMaxIter = 2000

	// DefaultPowerInnerIter is the fixed number of relaxation sweeps per outer iteration.
	DefaultPowerInnerIter = 2000

	// DefaultPowerTolerance stops the outer loop once successive Rayleigh
	// quotients differ by less than this.
	DefaultPowerTolerance = 1e-10

	// ZeroDiagonalEpsilon replaces an exactly-zero diagonal divisor in relaxation.
	ZeroDiagonalEpsilon = 1e-10

	// DefaultSymmetryTolerance bounds |A[i,j]-A[j,i]| accepted as symmetric.
	DefaultSymmetryTolerance = matrix.DefaultEpsilon
)

const (
	panicMaxIterInvalid   = "nullspace: WithMaxIter: n must be > 0"
	panicInnerIterInvalid = "nullspace: WithInnerIter: n must be > 0"
	panicToleranceInvalid = "nullspace: WithTolerance: tol must be finite, > 0"
	panicRandNil          = "nullspace: WithRand: rng must be non-nil"
)

// Option configures a solver. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved solver configuration. Zero fields mean "use the
// solver's own default", since Jacobi and the power methods budget differently.
type Options struct {
	seed      int64
	rng       *rand.Rand
	maxIter   int
	innerIter int
	tol       float64
	symTol    float64
}

// WithSeed seeds the random start vector of the power methods.
// seed==0 selects the fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed; o.rng = nil }
}

// WithRand supplies the random source for the power methods directly.
// The solver serializes its own draws; do not share rng with other goroutines.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicRandNil)
	}
	return func(o *Options) { o.rng = rng }
}

// WithMaxIter caps outer iterations (power) or rotations (Jacobi).
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}
	return func(o *Options) { o.maxIter = n }
}

// WithInnerIter sets the relaxation sweeps per outer power iteration.
func WithInnerIter(n int) Option {
	if n <= 0 {
		panic(panicInnerIterInvalid)
	}
	return func(o *Options) { o.innerIter = n }
}

// WithTolerance sets the convergence tolerance (Rayleigh-quotient delta for
// the power methods, max off-diagonal for Jacobi).
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}
	return func(o *Options) { o.tol = tol }
}

// gatherOptions applies opts over zero values and fills the shared defaults.
func gatherOptions(opts []Option) Options {
	o := Options{symTol: DefaultSymmetryTolerance}
	for _, fn := range opts {
		fn(&o)
	}
	if o.rng == nil {
		o.rng = rngFromSeed(o.seed)
	}

	return o
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func orDefaultF(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
