package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/planar/homography"
	"github.com/katalvlaran/planar/nullspace"
)

var (
	errBadPoint    = errors.New("point must be written as x,y")
	errBadSettings = errors.New("invalid solver settings")
)

// Calibration is the TOML calibration file:
//
//	solver = "jacobi"     # jacobi | power | gonum
//	seed = 0              # power solver seed, 0 = default
//	max_iter = 0          # 0 = solver default
//	inner_iter = 0
//	tolerance = 0.0
//
//	[[pair]]
//	src = [0.0, 0.0]
//	dst = [0.0, 0.0]
type Calibration struct {
	Solver    string  `toml:"solver"`
	Seed      int64   `toml:"seed"`
	MaxIter   int     `toml:"max_iter"`
	InnerIter int     `toml:"inner_iter"`
	Tolerance float64 `toml:"tolerance"`
	Pairs     []Pair  `toml:"pair"`
}

// Pair is one correspondence.
type Pair struct {
	Src [2]float64 `toml:"src"`
	Dst [2]float64 `toml:"dst"`
}

// homographyFile is the persisted form of a homography.
type homographyFile struct {
	Entries []float64 `toml:"entries"`
}

// loadCalibration reads path, warning about keys it does not recognize.
func loadCalibration(path string, logger *log.Logger) (*Calibration, error) {
	var cal Calibration
	md, err := toml.DecodeFile(path, &cal)
	if err != nil {
		return nil, fmt.Errorf("read calibration %s: %w", path, err)
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		keys := make([]string, len(extra))
		for i, k := range extra {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		logger.Warnf("Ignoring unknown calibration keys: %s", strings.Join(keys, ", "))
	}
	logger.Debugf("Loaded %d correspondences from %s", len(cal.Pairs), path)

	return &cal, nil
}

// Points splits the pairs into source and destination sets.
func (c *Calibration) Points() (src, dst []homography.Point) {
	src = make([]homography.Point, len(c.Pairs))
	dst = make([]homography.Point, len(c.Pairs))
	for i, p := range c.Pairs {
		src[i] = homography.Point{X: p.Src[0], Y: p.Src[1]}
		dst[i] = homography.Point{X: p.Dst[0], Y: p.Dst[1]}
	}
	return src, dst
}

// Options converts the solver settings into estimator options.
func (c *Calibration) Options() ([]homography.Option, error) {
	kind, err := nullspace.ParseKind(c.Solver)
	if err != nil {
		return nil, err
	}
	if c.MaxIter < 0 || c.InnerIter < 0 || c.Tolerance < 0 {
		return nil, fmt.Errorf("max_iter=%d inner_iter=%d tolerance=%g: %w",
			c.MaxIter, c.InnerIter, c.Tolerance, errBadSettings)
	}

	var sopts []nullspace.Option
	if c.MaxIter > 0 {
		sopts = append(sopts, nullspace.WithMaxIter(c.MaxIter))
	}
	if c.InnerIter > 0 {
		sopts = append(sopts, nullspace.WithInnerIter(c.InnerIter))
	}
	if c.Tolerance > 0 {
		sopts = append(sopts, nullspace.WithTolerance(c.Tolerance))
	}

	return []homography.Option{
		homography.WithSolverKind(kind),
		homography.WithSeed(c.Seed),
		homography.WithSolverOptions(sopts...),
	}, nil
}

// loadHomography reads a homography file and canonicalizes it.
func loadHomography(path string) (homography.Homography, error) {
	var f homographyFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return homography.Homography{}, fmt.Errorf("read homography %s: %w", path, err)
	}
	if len(f.Entries) != 9 {
		return homography.Homography{}, fmt.Errorf("read homography %s: want 9 entries, got %d", path, len(f.Entries))
	}
	var e [9]float64
	copy(e[:], f.Entries)
	h, err := homography.New(e)
	if err != nil {
		return homography.Homography{}, fmt.Errorf("read homography %s: %w", path, err)
	}

	return h, nil
}

// saveHomography writes h to path as TOML.
func saveHomography(path string, h homography.Homography) error {
	e := h.Entries()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(homographyFile{Entries: e[:]}); err != nil {
		f.Close()
		return fmt.Errorf("write homography %s: %w", path, err)
	}

	return f.Close()
}

// parsePoint parses "x,y".
func parsePoint(s string) (homography.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return homography.Point{}, fmt.Errorf("%q: %w", s, errBadPoint)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return homography.Point{}, fmt.Errorf("%q: %w", s, errBadPoint)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return homography.Point{}, fmt.Errorf("%q: %w", s, errBadPoint)
	}

	return homography.Point{X: x, Y: y}, nil
}
