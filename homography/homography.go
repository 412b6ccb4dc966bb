package homography

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/planar/matrix"
)

const (
	opNew     = "New"
	opInverse = "Inverse"
	opApply   = "Apply"
)

// Homography is an immutable 3×3 projective transform in canonical form
// (entry [2][2] == 1), stored row-major. The zero value is not valid; use
// Identity, New or Estimate.
type Homography struct {
	h [9]float64
}

// Identity returns the identity transform.
func Identity() Homography {
	return Homography{h: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// New canonicalizes nine row-major entries by dividing through by entry [2][2].
//
// Errors: ErrNonFinite, ErrZeroScale (|h[8]| <= DefaultScaleEpsilon·max|h|).
func New(entries [9]float64) (Homography, error) {
	var peak float64
	for _, v := range entries {
		if !isFinite(v) {
			return Homography{}, homographyErrorf(opNew, ErrNonFinite)
		}
		peak = math.Max(peak, math.Abs(v))
	}
	s := entries[8]
	if s == 0 || math.Abs(s) <= DefaultScaleEpsilon*peak {
		return Homography{}, homographyErrorf(opNew, ErrZeroScale)
	}

	var out Homography
	for k, v := range entries {
		out.h[k] = v/s + 0 // fold -0
		if !isFinite(out.h[k]) {
			return Homography{}, homographyErrorf(opNew, ErrNonFinite)
		}
	}
	out.h[8] = 1

	return out, nil
}

// FromMatrix canonicalizes a 3×3 matrix.Matrix.
func FromMatrix(m matrix.Matrix) (Homography, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return Homography{}, homographyErrorf(opNew, err)
	}
	if m.Rows() != 3 {
		return Homography{}, homographyErrorf(opNew, matrix.ErrDimensionMismatch)
	}
	var (
		e   [9]float64
		err error
	)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if e[i*3+j], err = m.At(i, j); err != nil {
				return Homography{}, homographyErrorf(opNew, err)
			}
		}
	}

	return New(e)
}

// At returns entry (i, j). It panics if i or j is outside [0, 3).
func (h Homography) At(i, j int) float64 {
	if i < 0 || i >= 3 || j < 0 || j >= 3 {
		panic(fmt.Sprintf("homography: At(%d,%d) out of range", i, j))
	}
	return h.h[i*3+j]
}

// Entries returns the nine row-major entries.
func (h Homography) Entries() [9]float64 { return h.h }

// Matrix returns a fresh 3×3 *matrix.Dense copy.
func (h Homography) Matrix() *matrix.Dense {
	m, _ := matrix.NewDenseFrom(3, 3, h.h[:]) // finite by construction
	return m
}

// Inverse returns the inverse transform, computed with the closed-form 3×3
// inverse and canonicalized.
//
// Errors: matrix.ErrSingular, ErrZeroScale.
func (h Homography) Inverse() (Homography, error) {
	inv, err := matrix.Inverse3(h.Matrix())
	if err != nil {
		return Homography{}, homographyErrorf(opInverse, err)
	}
	out, err := FromMatrix(inv)
	if err != nil {
		return Homography{}, homographyErrorf(opInverse, err)
	}

	return out, nil
}

// Apply projects p:
//
//	w = h20·x + h21·y + h22
//	u = (h00·x + h01·y + h02) / w
//	v = (h10·x + h11·y + h12) / w
//
// Errors: ErrNonFinite (p), ErrPointAtInfinity (w == 0 or non-finite result).
func (h Homography) Apply(p Point) (Point, error) {
	if !finitePoint(p) {
		return Point{}, homographyErrorf(opApply, ErrNonFinite)
	}
	a := &h.h
	w := a[6]*p.X + a[7]*p.Y + a[8]
	if w == 0 {
		return Point{}, homographyErrorf(opApply, ErrPointAtInfinity)
	}
	q := Point{
		X: (a[0]*p.X + a[1]*p.Y + a[2]) / w,
		Y: (a[3]*p.X + a[4]*p.Y + a[5]) / w,
	}
	if !finitePoint(q) {
		return Point{}, homographyErrorf(opApply, ErrPointAtInfinity)
	}

	return q, nil
}

// ApplyAll projects every point, failing on the first degenerate one.
func (h Homography) ApplyAll(ps []Point) ([]Point, error) {
	out := make([]Point, len(ps))
	var err error
	for i, p := range ps {
		if out[i], err = h.Apply(p); err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
	}

	return out, nil
}

// Apply is the function form of Homography.Apply.
func Apply(h Homography, p Point) (Point, error) { return h.Apply(p) }

// String prints three bracketed rows.
func (h Homography) String() string {
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&sb, "[%g, %g, %g]", h.h[i*3], h.h[i*3+1], h.h[i*3+2])
		if i < 2 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// ReprojectionError returns max_i ‖h(src[i]) − dst[i]‖.
func ReprojectionError(h Homography, src, dst []Point) (float64, error) {
	if len(src) != len(dst) {
		return 0, homographyErrorf("ReprojectionError", ErrPointCount)
	}
	var worst float64
	for i := range src {
		if !finitePoint(dst[i]) {
			return 0, fmt.Errorf("ReprojectionError: point %d: %w", i, ErrNonFinite)
		}
		q, err := h.Apply(src[i])
		if err != nil {
			return 0, fmt.Errorf("ReprojectionError: point %d: %w", i, err)
		}
		worst = math.Max(worst, q.Sub(dst[i]).Norm())
	}

	return worst, nil
}

// MaxDeviation returns the largest entrywise difference between hs[0] and
// any other element; 0 for fewer than two.
func MaxDeviation(hs []Homography) float64 {
	var worst float64
	for k := 1; k < len(hs); k++ {
		for i := range hs[0].h {
			worst = math.Max(worst, math.Abs(hs[k].h[i]-hs[0].h[i]))
		}
	}

	return worst
}
