// Package animcurve evaluates animation curves. An animation curve maps time
// to a value over a fixed time domain [0, length] and is defined by a handful
// of user-placed keyframes, its control points. Evaluating the curve turns
// the control points into a dense polyline that a renderer can draw directly
// and that can be sampled by time.
//
// # Evaluators
//
// [Evaluator] is implemented by four strategies:
//   - [Linear], which anchors the two ends of the domain
//   - [Bezier], a chain of cubic Béziers sharing end points
//   - [BSpline], a uniform cubic B-spline
//   - [CatmullRom], a Catmull-Rom spline through every control point
//
// [Kind] names the strategies, for example in stored documents, and
// [Kind.Evaluator] maps a kind to its evaluator.
//
// # Flattening
//
// All cubic curves are drawn by the same adaptive flattener. B-spline and
// Catmull-Rom windows are first converted to cubic Béziers
// ([BSplineToBezier], [CatmullRomToBezier]). A cubic is subdivided with de
// Casteljau's algorithm until the length of its control polygon is within
// [FlatnessTolerance] of the length of its chord, or until the depth budget
// ([DefaultDepth] unless configured) is spent, and is then emitted as its
// chord. Flat stretches of a curve thus cost a single chord while sharp
// bends are refined.
//
// # Wrapping
//
// A curve can be periodic ("wrap"), in which case the control points repeat
// every length units of time and the curve's value and slope are continuous
// across the seam at x = length. Spline evaluators achieve this by padding
// the control points with copies shifted by one period (see [Windows]). The
// Bézier evaluator closes its chain with a segment back to the first control
// point, one period later, and splits that segment at the seam: the part past
// x = length is shifted back by one period and placed at the start of the
// output. Points landing exactly on the seam are emitted twice, once at
// x = length and once at x = 0.
//
// Without wrapping, interpolating curves are extended horizontally from
// x = 0 to the first control point and from the last control point to
// x = length.
//
// # Concurrency
//
// Evaluation is a pure computation. Each call allocates and returns its own
// output, and evaluators may be used from multiple goroutines at once.
package animcurve
