package animcurve

// Linear anchors the curve at the two ends of the domain. Its output is
// always exactly two points, at x = 0 and x = length; interior control points
// are not consulted.
//
// Without wrapping, the curve starts at the first control point's value and
// ends at the last control point's value. With wrapping, both ends take the
// value where the line from the last control point (moved back by one
// period) to the first control point crosses x = 0, so the slopes on either
// side of the seam agree.
type Linear struct{}

func (Linear) Evaluate(ctrl []Point, length float64, wrap bool) ([]Point, error) {
	if err := Validate(ctrl, length); err != nil {
		return nil, err
	}
	return evaluateLinear(ctrl, length, wrap), nil
}

func evaluateLinear(ctrl []Point, length float64, wrap bool) []Point {
	first, last := ctrl[0], ctrl[len(ctrl)-1]
	y1 := first.Y
	y2 := last.Y
	if wrap {
		if gap := first.X + length - last.X; gap > 0 {
			y1 = (first.Y*(length-last.X) + last.Y*first.X) / gap
		}
		y2 = y1
	}
	return []Point{Pt(0, y1), Pt(length, y2)}
}
