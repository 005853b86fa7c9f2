package animcurve

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// valueAt linearly interpolates the polyline at x, using the first segment
// that contains x. Vertical steps resolve to their first point.
func valueAt(t *testing.T, pts []Point, x float64) float64 {
	t.Helper()
	for i := 0; i+1 < len(pts); i++ {
		p0, p1 := pts[i], pts[i+1]
		if p0.X <= x && x <= p1.X {
			if p1.X == p0.X {
				return p0.Y
			}
			return Line{p0, p1}.AtX(x).Y
		}
	}
	t.Fatalf("%g isn't covered by the polyline %v", x, pts)
	return 0
}

func isSortedByX(pts []Point) bool {
	return sort.SliceIsSorted(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
}

func containsPoint(pts []Point, want Point, epsilon float64) bool {
	for _, pt := range pts {
		if pt.Distance(want) <= epsilon {
			return true
		}
	}
	return false
}
