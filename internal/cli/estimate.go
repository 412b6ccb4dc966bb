package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/planar/homography"
	"github.com/katalvlaran/planar/nullspace"
)

type estimateOpts struct {
	config string
	solver string
	seed   int64
	trials int
	output string
	json   bool
}

// estimateResult is the --json output.
type estimateResult struct {
	Entries          [9]float64 `json:"entries"`
	Solver           string     `json:"solver"`
	Iterations       int        `json:"iterations"`
	Converged        bool       `json:"converged"`
	Reprojection     float64    `json:"reprojection_error"`
	RelativeResidual float64    `json:"relative_residual"`
	Trials           int        `json:"trials,omitempty"`
	MaxDeviation     *float64   `json:"max_deviation,omitempty"`
}

func newEstimateCmd() *cobra.Command {
	var opts estimateOpts

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate a homography from a calibration file",
		Long: `Estimate fits the homography mapping the four src points of a calibration
file onto its dst points and prints it with its reprojection error.

With --trials N the estimation is repeated N times with independently derived
seeds and the largest entrywise deviation between runs is reported.`,
		Example: `  planar estimate -c board.toml
  planar estimate -c board.toml --solver power --seed 7 --trials 8
  planar estimate -c board.toml -o board-h.toml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "calibration file (TOML)")
	cmd.Flags().StringVar(&opts.solver, "solver", "", "override solver: jacobi, power or gonum")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "override power solver seed")
	cmd.Flags().IntVar(&opts.trials, "trials", 0, "repeat the estimation and report the spread")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the homography to this TOML file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runEstimate(cmd *cobra.Command, opts *estimateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cal, err := loadCalibration(opts.config, logger)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("solver") {
		cal.Solver = opts.solver
	}
	if cmd.Flags().Changed("seed") {
		cal.Seed = opts.seed
	}
	hopts, err := cal.Options()
	if err != nil {
		return err
	}
	hopts = append(hopts, homography.WithLogger(logger))
	kind, _ := nullspace.ParseKind(cal.Solver) // validated by Options

	src, dst := cal.Points()
	rep, err := homography.EstimateReport(src, dst, hopts...)
	if err != nil {
		return err
	}
	logger.Infof("Estimated homography with %s solver", kind)

	res := estimateResult{
		Entries:          rep.H.Entries(),
		Solver:           string(kind),
		Iterations:       rep.Solver.Iterations,
		Converged:        rep.Solver.Converged,
		Reprojection:     rep.Reprojection,
		RelativeResidual: rep.RelativeResidual,
	}
	if opts.trials > 0 {
		hs, err := homography.EstimateTrials(ctx, src, dst, opts.trials, hopts...)
		if err != nil {
			return err
		}
		dev := homography.MaxDeviation(hs)
		res.Trials, res.MaxDeviation = opts.trials, &dev
	}

	if opts.output != "" {
		if err := saveHomography(opts.output, rep.H); err != nil {
			return err
		}
		logger.Infof("Wrote homography to %s", opts.output)
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	printEstimate(out, rep.H, res)

	return nil
}

func printEstimate(w io.Writer, h homography.Homography, res estimateResult) {
	fmt.Fprintln(w, StyleTitle.Render("Homography"))
	fmt.Fprintln(w, renderMatrix(h))
	fmt.Fprintf(w, "%s %s\n", StyleDim.Render("reprojection error:"), StyleNumber.Render(formatFloat(res.Reprojection)))
	fmt.Fprintf(w, "%s %s\n", StyleDim.Render("relative residual: "), StyleNumber.Render(formatFloat(res.RelativeResidual)))
	status := fmt.Sprintf("%s solver, %d iterations", res.Solver, res.Iterations)
	if res.Converged {
		fmt.Fprintln(w, successLine(status))
	} else {
		fmt.Fprintln(w, warningLine(status+", iteration budget exhausted"))
	}
	if res.MaxDeviation != nil {
		fmt.Fprintf(w, "%s %s\n", StyleDim.Render(fmt.Sprintf("max deviation over %d trials:", res.Trials)),
			StyleNumber.Render(formatFloat(*res.MaxDeviation)))
	}
}
