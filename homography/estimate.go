package homography

import (
	"fmt"
	"math"

	"github.com/katalvlaran/planar/matrix"
	"github.com/katalvlaran/planar/nullspace"
)

const (
	opEstimate       = "Estimate"
	opEstimateReport = "EstimateReport"

	designRows = 2 * RequiredPoints
	designCols = 9
)

// Report is the outcome of EstimateReport.
//   - H: the canonical homography.
//   - Solver: the raw null-space result (iterations, convergence, eigenvalue).
//   - Reprojection: max distance between h(src[i]) and dst[i].
//   - RelativeResidual: smallest / largest Gram eigenvalue estimate; near 0
//     for an exact four-point fit.
type Report struct {
	H                Homography
	Solver           nullspace.Result
	Reprojection     float64
	RelativeResidual float64
}

// Estimate computes the homography mapping src[i] to dst[i] for four
// correspondences in general position.
//
// Implementation:
//   - Stage 1: validate counts; normalize both sets (Normalize).
//   - Stage 2: reject any collinear triple in either normalized set.
//   - Stage 3: design matrix A (8×9), Gram G = AᵀA (9×9).
//   - Stage 4: h = null-space eigenvector of G (configured solver).
//   - Stage 5: H = T_dst⁻¹·reshape(h)·T_src, then H /= H[2][2].
//
// Errors:
//   - ErrPointCount, ErrNonFinite, ErrCoincidentPoints, ErrCollinear.
//   - matrix.ErrSingular (T_dst not invertible), ErrZeroScale.
//   - nullspace.ErrNotConverged / ErrDiverged from the solver.
//
// Complexity:
//   - Time O(1) for the fixed 9×9 problem, dominated by the solver.
func Estimate(src, dst []Point, opts ...Option) (Homography, error) {
	o := gatherOptions(opts)
	solver, err := o.newSolver(o.seed)
	if err != nil {
		return Homography{}, homographyErrorf(opEstimate, err)
	}
	h, _, _, err := estimate(&o, solver, src, dst)
	if err != nil {
		return Homography{}, homographyErrorf(opEstimate, err)
	}

	return h, nil
}

// EstimateReport runs Estimate and also returns solver diagnostics and the
// fit quality. A non-converged power solve is reported, not rejected.
func EstimateReport(src, dst []Point, opts ...Option) (Report, error) {
	o := gatherOptions(opts)
	solver, err := o.newSolver(o.seed)
	if err != nil {
		return Report{}, homographyErrorf(opEstimateReport, err)
	}
	h, gram, res, err := estimate(&o, solver, src, dst)
	if err != nil {
		return Report{}, homographyErrorf(opEstimateReport, err)
	}

	rep := Report{H: h, Solver: res}
	if rep.Reprojection, err = ReprojectionError(h, src, dst); err != nil {
		return Report{}, homographyErrorf(opEstimateReport, err)
	}
	top, err := nullspace.Dominant(gram, nullspace.WithSeed(o.seed))
	if err != nil {
		return Report{}, homographyErrorf(opEstimateReport, err)
	}
	if top.Eigenvalue > 0 {
		rep.RelativeResidual = math.Abs(res.Eigenvalue) / top.Eigenvalue
	}
	o.debugf("reprojection=%.3g relative residual=%.3g", rep.Reprojection, rep.RelativeResidual)

	return rep, nil
}

// estimate is the shared pipeline; it returns the Gram matrix for diagnostics.
func estimate(o *Options, solver nullspace.Solver, src, dst []Point) (Homography, matrix.Matrix, nullspace.Result, error) {
	var res nullspace.Result
	if len(src) != RequiredPoints || len(dst) != RequiredPoints {
		return Homography{}, nil, res, fmt.Errorf("got %d→%d points: %w", len(src), len(dst), ErrPointCount)
	}

	// Stage 1: condition both sets
	ns, ts, err := Normalize(src)
	if err != nil {
		return Homography{}, nil, res, fmt.Errorf("source: %w", err)
	}
	nd, td, err := Normalize(dst)
	if err != nil {
		return Homography{}, nil, res, fmt.Errorf("destination: %w", err)
	}
	o.debugf("normalized: src scale=%.6g centroid=%v, dst scale=%.6g centroid=%v",
		ts.Scale, ts.Centroid, td.Scale, td.Centroid)

	// Stage 2: general position
	if i, j, k, ok := collinearTriple(ns, o.collinEps); ok {
		return Homography{}, nil, res, fmt.Errorf("source points %d,%d,%d: %w", i, j, k, ErrCollinear)
	}
	if i, j, k, ok := collinearTriple(nd, o.collinEps); ok {
		return Homography{}, nil, res, fmt.Errorf("destination points %d,%d,%d: %w", i, j, k, ErrCollinear)
	}

	// Stage 3: design and Gram
	a, err := designMatrix(ns, nd)
	if err != nil {
		return Homography{}, nil, res, err
	}
	at, err := matrix.Transpose(a)
	if err != nil {
		return Homography{}, nil, res, err
	}
	gram, err := matrix.Mul(at, a)
	if err != nil {
		return Homography{}, nil, res, err
	}

	// Stage 4: null space
	if res, err = solver.Solve(gram); err != nil {
		return Homography{}, nil, res, err
	}
	o.debugf("null space: λ=%.3g iterations=%d converged=%t", res.Eigenvalue, res.Iterations, res.Converged)

	// Stage 5: denormalize and canonicalize
	hn, err := matrix.NewDenseFrom(3, 3, res.Vector)
	if err != nil {
		return Homography{}, nil, res, err
	}
	tdInv, err := matrix.Inverse3(td.Matrix())
	if err != nil {
		return Homography{}, nil, res, err
	}
	left, err := matrix.Mul(tdInv, hn)
	if err != nil {
		return Homography{}, nil, res, err
	}
	full, err := matrix.Mul(left, ts.Matrix())
	if err != nil {
		return Homography{}, nil, res, err
	}
	h, err := FromMatrix(full)
	if err != nil {
		return Homography{}, nil, res, err
	}

	return h, gram, res, nil
}

// designMatrix stacks, for each normalized pair (x,y)↔(u,v),
//
//	[-x, -y, -1,  0,  0,  0, x·u, y·u, u]
//	[ 0,  0,  0, -x, -y, -1, x·v, y·v, v]
func designMatrix(src, dst []Point) (*matrix.Dense, error) {
	data := make([]float64, 0, designRows*designCols)
	for i := range src {
		x, y := src[i].X, src[i].Y
		u, v := dst[i].X, dst[i].Y
		data = append(data,
			-x, -y, -1, 0, 0, 0, x*u, y*u, u,
			0, 0, 0, -x, -y, -1, x*v, y*v, v,
		)
	}

	return matrix.NewDenseFrom(2*len(src), designCols, data)
}

// collinearTriple reports the first (i<j<k) whose points span a parallelogram
// of area <= eps.
func collinearTriple(ps []Point, eps float64) (int, int, int, bool) {
	n := len(ps)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				if math.Abs(ps[j].Sub(ps[i]).Cross(ps[k].Sub(ps[i]))) <= eps {
					return i, j, k, true
				}
			}
		}
	}

	return 0, 0, 0, false
}
