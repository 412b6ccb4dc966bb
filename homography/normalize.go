package homography

import (
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/planar/matrix"
)

const opNormalize = "Normalize"

// Point is a planar point. Coordinates must be finite.
type Point = r2.Point

// Similarity is the conditioning transform produced by Normalize:
// p ↦ Scale·(p − Centroid), i.e. the matrix
//
//	[ s  0  −s·cx ]
//	[ 0  s  −s·cy ]
//	[ 0  0   1    ]
type Similarity struct {
	Scale    float64
	Centroid Point
}

// Apply maps p into the normalized frame.
func (t Similarity) Apply(p Point) Point {
	return p.Sub(t.Centroid).Mul(t.Scale)
}

// Matrix returns the 3×3 homogeneous form.
func (t Similarity) Matrix() *matrix.Dense {
	s := t.Scale
	m, _ := matrix.NewDenseFrom(3, 3, []float64{ // finite by construction
		s, 0, -s * t.Centroid.X,
		0, s, -s * t.Centroid.Y,
		0, 0, 1,
	})

	return m
}

// Normalize translates and scales points so their centroid is the origin and
// their mean distance to it is √2.
//
// Implementation:
//   - Stage 1: reject empty input and non-finite coordinates.
//   - Stage 2: centroid = (mean x, mean y).
//   - Stage 3: d = mean ‖p − centroid‖; scale = √2 / d.
//   - Stage 4: apply the similarity pointwise.
//
// Errors: ErrPointCount (empty), ErrNonFinite, ErrCoincidentPoints (d == 0).
func Normalize(points []Point) ([]Point, Similarity, error) {
	n := len(points)
	if n == 0 {
		return nil, Similarity{}, homographyErrorf(opNormalize, ErrPointCount)
	}

	xs, ys := make([]float64, n), make([]float64, n)
	for i, p := range points {
		if !finitePoint(p) {
			return nil, Similarity{}, homographyErrorf(opNormalize, ErrNonFinite)
		}
		xs[i], ys[i] = p.X, p.Y
	}
	c := Point{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil)}

	dist := make([]float64, n)
	for i, p := range points {
		dist[i] = p.Sub(c).Norm()
	}
	d := stat.Mean(dist, nil)
	if d == 0 {
		return nil, Similarity{}, homographyErrorf(opNormalize, ErrCoincidentPoints)
	}
	t := Similarity{Scale: math.Sqrt2 / d, Centroid: c}
	if !isFinite(t.Scale) || !finitePoint(c) {
		return nil, Similarity{}, homographyErrorf(opNormalize, ErrNonFinite)
	}

	out := make([]Point, n)
	for i, p := range points {
		out[i] = t.Apply(p)
	}

	return out, t, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func finitePoint(p Point) bool { return isFinite(p.X) && isFinite(p.Y) }
