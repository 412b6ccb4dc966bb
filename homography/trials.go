package homography

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/planar/nullspace"
)

const opEstimateTrials = "EstimateTrials"

// EstimateTrials runs Estimate trials times concurrently. Trial k builds its
// own solver seeded with nullspace.DeriveSeed(seed, k), so the batch is
// reproducible for a fixed WithSeed while the trials stay independent.
// A solver passed with WithSolver is shared by all trials instead.
//
// Results are in trial order. The first failing trial cancels the rest;
// MaxDeviation on the result measures the spread.
func EstimateTrials(ctx context.Context, src, dst []Point, trials int, opts ...Option) ([]Homography, error) {
	if trials <= 0 {
		return nil, homographyErrorf(opEstimateTrials, fmt.Errorf("trials=%d must be > 0", trials))
	}
	o := gatherOptions(opts)
	out := make([]Homography, trials)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k := 0; k < trials; k++ {
		k := k
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			solver, err := o.newSolver(nullspace.DeriveSeed(o.seed, uint64(k)))
			if err != nil {
				return err
			}
			h, _, _, err := estimate(&o, solver, src, dst)
			if err != nil {
				return fmt.Errorf("trial %d: %w", k, err)
			}
			out[k] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, homographyErrorf(opEstimateTrials, err)
	}

	return out, nil
}
