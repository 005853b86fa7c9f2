package animcurve

import "iter"

// Window is four consecutive control points of a spline. A spline segment
// spans the part of the curve between Window[1] and Window[2].
type Window [4]Point

// cyclicAt returns control point i of the periodic extension of pts. Indices
// wrap modulo len(pts); each wrap moves the point by one period.
func cyclicAt(pts []Point, length float64, i int) Point {
	n := len(pts)
	q, r := i/n, i%n
	if r < 0 {
		r += n
		q--
	}
	return pts[r].Shift(float64(q) * length)
}

// Windows returns the spline windows over pts.
//
// Without wrapping, pts is padded with the last point moved back one period
// and the first point moved forward one period, and every window of the
// padded sequence is produced. A single control point yields no windows.
//
// With wrapping, pts is extended periodically. Three windows lead into the
// domain from before x = 0, followed by the interior windows and three
// windows leading out past x = length, so that both sides of the seam see
// the control points on the other side.
func Windows(pts []Point, length float64, wrap bool) iter.Seq[Window] {
	return func(yield func(Window) bool) {
		n := len(pts)
		if n == 0 {
			return
		}
		if wrap {
			for s := -3; s < n; s++ {
				w := Window{
					cyclicAt(pts, length, s),
					cyclicAt(pts, length, s+1),
					cyclicAt(pts, length, s+2),
					cyclicAt(pts, length, s+3),
				}
				if !yield(w) {
					return
				}
			}
			return
		}

		padded := make([]Point, 0, n+2)
		padded = append(padded, pts[n-1].Shift(-length))
		padded = append(padded, pts...)
		padded = append(padded, pts[0].Shift(length))
		for s := 0; s+3 < len(padded); s++ {
			if !yield(Window(padded[s : s+4])) {
				return
			}
		}
	}
}

// evaluateWindows drives a spline evaluator. Without wrapping, the polyline
// is anchored at (0, first y) and (length, last y).
func evaluateWindows(ctrl []Point, length float64, wrap bool, segment func(f *flattener, w Window)) []Point {
	f := newFlattener()
	if !wrap {
		f.point(Pt(0, ctrl[0].Y))
	}
	for w := range Windows(ctrl, length, wrap) {
		segment(f, w)
	}
	if !wrap {
		f.point(Pt(length, ctrl[len(ctrl)-1].Y))
	}
	return f.points()
}
