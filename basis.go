package animcurve

// BSplineToBezier converts one window of a uniform cubic B-spline into the
// equivalent cubic Bézier. The result spans the part of the spline between
// p1 and p2.
func BSplineToBezier(p0, p1, p2, p3 Point) CubicBez {
	v0, v1, v2, v3 := Vec2(p0), Vec2(p1), Vec2(p2), Vec2(p3)
	return CubicBez{
		P0: Point(v0.Add(v1.Mul(4)).Add(v2).Div(6)),
		P1: Point(v1.Mul(4).Add(v2.Mul(2)).Div(6)),
		P2: Point(v1.Mul(2).Add(v2.Mul(4)).Div(6)),
		P3: Point(v1.Add(v2.Mul(4)).Add(v3).Div(6)),
	}
}

// CatmullRomToBezier converts one window of a Catmull-Rom spline into the
// equivalent cubic Bézier, which interpolates p1 and p2.
//
// The tangents are (p2-p0)/6 and (p3-p1)/6, one third of the usual
// Catmull-Rom tangent of (p2-p0)/2 as required by the Hermite to Bézier
// conversion.
func CatmullRomToBezier(p0, p1, p2, p3 Point) CubicBez {
	t1 := p2.Sub(p0).Div(6)
	t2 := p3.Sub(p1).Div(6)
	return CubicBez{
		P0: p1,
		P1: p1.Translate(t1),
		P2: p2.Translate(t2.Negate()),
		P3: p2,
	}
}
