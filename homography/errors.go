package homography

import (
	"errors"
	"fmt"
)

var (
	// ErrPointCount indicates a point set without exactly four points
	// (or mismatched source/destination lengths).
	ErrPointCount = errors.New("homography: exactly four point correspondences required")

	// ErrCoincidentPoints indicates all points of a set coincide, so the
	// normalization scale is undefined.
	ErrCoincidentPoints = errors.New("homography: points coincide, mean distance is zero")

	// ErrCollinear indicates three points of a set lie on one line.
	ErrCollinear = errors.New("homography: three collinear points")

	// ErrNonFinite indicates a NaN or ±Inf coordinate or entry.
	ErrNonFinite = errors.New("homography: non-finite value")

	// ErrZeroScale indicates H[2][2] is zero relative to the matrix magnitude,
	// so the canonical form H[2][2] == 1 does not exist.
	ErrZeroScale = errors.New("homography: bottom-right entry is zero")

	// ErrPointAtInfinity indicates the projective denominator vanished.
	ErrPointAtInfinity = errors.New("homography: point maps to infinity")
)

// homographyErrorf wraps err with an operation tag.
func homographyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
