package homography

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/planar/nullspace"
)

// ---------- Defaults ----------

const (
	// RequiredPoints is the number of correspondences Estimate accepts.
	RequiredPoints = 4

	// DefaultCollinearityTolerance bounds |cross| of two edge vectors of
	// normalized points below which a triple counts as collinear.
	DefaultCollinearityTolerance = 1e-9

	// DefaultScaleEpsilon is the relative threshold under which H[2][2]
	// counts as zero: |H[2][2]| <= eps·max|H[i][j]|.
	DefaultScaleEpsilon = 1e-12
)

const panicCollinearityTolerance = "homography: WithCollinearityTolerance: eps must be finite, >= 0"

// Option configures Estimate, EstimateReport and EstimateTrials.
type Option func(*Options)

// Options is the resolved estimator configuration.
type Options struct {
	solver     nullspace.Solver
	kind       nullspace.Kind
	seed       int64
	solverOpts []nullspace.Option
	collinEps  float64
	logger     *log.Logger
}

// WithSolver fixes the solver instance. It takes precedence over
// WithSolverKind, WithSeed and WithSolverOptions.
func WithSolver(s nullspace.Solver) Option {
	return func(o *Options) { o.solver = s }
}

// WithSolverKind selects the solver implementation (default nullspace.KindJacobi).
func WithSolverKind(k nullspace.Kind) Option {
	return func(o *Options) { o.kind = k }
}

// WithSeed seeds the power solver. EstimateTrials derives one seed per
// trial from it. seed==0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithSolverOptions forwards iteration budgets and tolerances to the solver.
func WithSolverOptions(opts ...nullspace.Option) Option {
	return func(o *Options) { o.solverOpts = append(o.solverOpts, opts...) }
}

// WithCollinearityTolerance sets the collinearity threshold on normalized
// points. Zero rejects only exactly collinear triples.
func WithCollinearityTolerance(eps float64) Option {
	if !(eps >= 0) || math.IsInf(eps, 0) {
		panic(panicCollinearityTolerance)
	}
	return func(o *Options) { o.collinEps = eps }
}

// WithLogger traces estimation stages at debug level. Nil silences it.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts []Option) Options {
	o := Options{kind: nullspace.KindJacobi, collinEps: DefaultCollinearityTolerance}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// newSolver returns the configured solver, building one from kind and seed
// unless an instance was supplied.
func (o *Options) newSolver(seed int64) (nullspace.Solver, error) {
	if o.solver != nil {
		return o.solver, nil
	}
	opts := append([]nullspace.Option{nullspace.WithSeed(seed)}, o.solverOpts...)

	return nullspace.New(o.kind, opts...)
}

func (o *Options) debugf(format string, args ...interface{}) {
	if o.logger != nil {
		o.logger.Debugf(format, args...)
	}
}
