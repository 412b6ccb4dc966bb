package homography_test

import (
	"testing"

	"github.com/katalvlaran/planar/homography"
	"github.com/katalvlaran/planar/nullspace"
)

func benchEstimate(b *testing.B, opts ...homography.Option) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := homography.Estimate(unitSquare, board, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEstimateJacobi(b *testing.B) { benchEstimate(b) }

func BenchmarkEstimateGonum(b *testing.B) {
	benchEstimate(b, homography.WithSolverKind(nullspace.KindGonum))
}

func BenchmarkApply(b *testing.B) {
	h, err := homography.Estimate(unitSquare, board)
	if err != nil {
		b.Fatal(err)
	}
	p := homography.Point{X: 0.3, Y: 0.7}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := h.Apply(p); err != nil {
			b.Fatal(err)
		}
	}
}
