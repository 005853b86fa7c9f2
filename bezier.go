package animcurve

// Bezier treats the control points as a chain of cubic Béziers sharing end
// points: segment k uses points 3k through 3k+3.
//
// Without wrapping, the curve is extended horizontally from x = 0 to the
// first control point and from the last control point to x = length.
// Control points after the last complete segment are joined with straight
// lines.
//
// With wrapping, the chain is closed by a final segment running back to the
// first control point one period later. That segment is a cubic if exactly
// three control points remain and a run of straight lines otherwise. It is
// split at x = length and its remainder continues from x = 0.
//
// Fewer than four control points (three when wrapping) can't form a segment;
// such curves are evaluated like [Linear].
type Bezier struct {
	// Depth is the recursion budget for flattening each segment. Zero means
	// DefaultDepth.
	Depth int
}

func (b Bezier) Evaluate(ctrl []Point, length float64, wrap bool) ([]Point, error) {
	if err := Validate(ctrl, length); err != nil {
		return nil, err
	}
	if (wrap && len(ctrl) < 3) || (!wrap && len(ctrl) < 4) {
		return evaluateLinear(ctrl, length, wrap), nil
	}
	depth := depthOrDefault(b.Depth)
	if wrap {
		return evaluateBezierWrapped(ctrl, length, depth), nil
	}

	n := len(ctrl)
	f := newFlattener()
	f.emit(Pt(0, ctrl[0].Y))
	i := 0
	for ; i+3 < n; i += 3 {
		f.cubic(CubicBez{ctrl[i], ctrl[i+1], ctrl[i+2], ctrl[i+3]}, depth)
	}
	// i is the end point of the last segment, which is emitted again.
	f.emit(ctrl[i:]...)
	f.emit(Pt(length, ctrl[n-1].Y))
	return f.points(), nil
}

func evaluateBezierWrapped(ctrl []Point, length float64, depth int) []Point {
	n := len(ctrl)
	f := newFlattener()
	i := 0
	for ; i+3 < n; i += 3 {
		f.cubic(CubicBez{ctrl[i], ctrl[i+1], ctrl[i+2], ctrl[i+3]}, depth)
	}

	seam := newSeamFlattener(length)
	closing := ctrl[0].Shift(length)
	if n-i < 3 {
		for ; i < n-1; i++ {
			seam.line(ctrl[i], ctrl[i+1])
		}
		seam.line(ctrl[i], closing)
	} else {
		seam.cubic(CubicBez{ctrl[i], ctrl[i+1], ctrl[i+2], closing}, depth)
	}

	out := make([]Point, 0, len(seam.head)+len(f.body)+len(seam.body))
	out = append(out, seam.head...)
	out = append(out, f.body...)
	return append(out, seam.body...)
}
