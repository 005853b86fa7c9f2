package animcurve

// Line represents a line segment between two keyframe positions.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Shift moves both end points along the time axis by dx.
func (l Line) Shift(dx float64) Line {
	return Line{
		P0: l.P0.Shift(dx),
		P1: l.P1.Shift(dx),
	}
}

// Straddles reports whether the line strictly crosses the vertical x = x,
// going left to right.
func (l Line) Straddles(x float64) bool {
	return l.P0.X < x && l.P1.X > x
}

// AtX returns the point on the line with the given x coordinate. The result
// is only meaningful if the line isn't vertical.
func (l Line) AtX(x float64) Point {
	ratio := (x - l.P0.X) / (l.P1.X - l.P0.X)
	return Point{
		X: x,
		Y: l.P0.Y + (l.P1.Y-l.P0.Y)*ratio,
	}
}
