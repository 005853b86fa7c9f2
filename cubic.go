package animcurve

// FlatnessTolerance is how far the ratio of control polygon length to chord
// length may exceed 1 for a cubic to be drawn as its chord.
const FlatnessTolerance = 1e-5

// CubicBez is a cubic Bézier segment in (time, value) space.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau. Both halves
// share the exact same midpoint.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p12 := c.P1.Midpoint(c.P2)
	l1 := c.P0.Midpoint(c.P1)
	l2 := l1.Midpoint(p12)
	r2 := c.P2.Midpoint(c.P3)
	r1 := p12.Midpoint(r2)
	pm := l2.Midpoint(r1)
	return CubicBez{c.P0, l1, l2, pm}, CubicBez{pm, r1, r2, c.P3}
}

// Chord returns the line from the cubic's start to its end point.
func (c CubicBez) Chord() Line {
	return Line{c.P0, c.P3}
}

// PolygonLength returns the length of the control polygon, which is an upper
// bound of the cubic's arc length.
func (c CubicBez) PolygonLength() float64 {
	return c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
}

// Flat reports whether the cubic is close enough to a straight line to be
// drawn as its chord. A cubic whose end points coincide is always flat.
func (c CubicBez) Flat() bool {
	chord := c.Chord().Length()
	if chord == 0 {
		return true
	}
	return c.PolygonLength()/chord < 1+FlatnessTolerance
}
