package animcurve

// BSpline evaluates the control points as a uniform cubic B-spline. The curve
// approximates its control points rather than passing through them; it has
// continuous second derivatives, including across the seam when wrapping.
//
// Each window of four control points is converted to a cubic Bézier (see
// [BSplineToBezier]) and flattened. See [Windows] for how the ends of the
// control point sequence are padded.
type BSpline struct {
	// Depth is the recursion budget for flattening each segment. Zero means
	// DefaultDepth.
	Depth int
}

func (b BSpline) Evaluate(ctrl []Point, length float64, wrap bool) ([]Point, error) {
	if err := Validate(ctrl, length); err != nil {
		return nil, err
	}
	depth := depthOrDefault(b.Depth)
	return evaluateWindows(ctrl, length, wrap, func(f *flattener, w Window) {
		f.cubic(BSplineToBezier(w[0], w[1], w[2], w[3]), depth)
	}), nil
}

// CatmullRom evaluates the control points as a Catmull-Rom spline, which
// passes through every control point. Windows and padding are the same as
// for [BSpline].
//
// Both end points of every segment are emitted verbatim in addition to the
// flattened segment, so each control point appears in the output exactly as
// given.
type CatmullRom struct {
	// Depth is the recursion budget for flattening each segment. Zero means
	// DefaultDepth.
	Depth int
}

func (c CatmullRom) Evaluate(ctrl []Point, length float64, wrap bool) ([]Point, error) {
	if err := Validate(ctrl, length); err != nil {
		return nil, err
	}
	depth := depthOrDefault(c.Depth)
	return evaluateWindows(ctrl, length, wrap, func(f *flattener, w Window) {
		f.point(w[1])
		f.cubic(CatmullRomToBezier(w[0], w[1], w[2], w[3]), depth)
		f.point(w[2])
	}), nil
}
