package animcurve

import "slices"

// DefaultDepth is the recursion budget of the adaptive flattener. A single
// cubic produces at most 2^DefaultDepth chords.
const DefaultDepth = 10

// flattener accumulates the polyline of one evaluation. It is owned by a
// single call and never shared.
//
// When a seam is set, points that fall at or past it are emitted a second
// time, shifted back by the seam's x coordinate, so that the polyline
// re-enters the domain at x = 0. Shifted points go to head, everything else
// to body; the assembled polyline is head followed by body.
type flattener struct {
	wrap  bool
	wrapX float64
	head  []Point
	body  []Point
}

func newFlattener() *flattener {
	return &flattener{}
}

// newSeamFlattener returns a flattener that splits output at x = wrapX.
func newSeamFlattener(wrapX float64) *flattener {
	return &flattener{wrap: true, wrapX: wrapX}
}

func (f *flattener) points() []Point {
	out := make([]Point, 0, len(f.head)+len(f.body))
	out = append(out, f.head...)
	return append(out, f.body...)
}

func (f *flattener) emit(pts ...Point) {
	f.body = append(f.body, pts...)
}

func (f *flattener) emitWrapped(pts ...Point) {
	f.head = append(f.head, pts...)
}

// point emits p. If p lies on or past the seam, its wrapped copy is emitted
// as well.
func (f *flattener) point(p Point) {
	f.emit(p)
	if f.wrap && p.X >= f.wrapX {
		f.emitWrapped(p.Shift(-f.wrapX))
	}
}

// line emits the chord from p0 to p1, splitting it where it crosses the seam.
//
// A chord starting exactly on the seam belongs to the next period: it is
// emitted only in wrapped form, starting at x = 0, rather than unchanged
// past x = wrapX. In a continuous polyline the seam point itself was
// emitted on both sides by the chord ending there, so the output has no gap
// at x = 0.
func (f *flattener) line(p0, p1 Point) {
	if !f.wrap {
		f.emit(p0, p1)
		return
	}
	l := Line{p0, p1}
	switch {
	case l.Straddles(f.wrapX):
		f.emit(p0)
		f.cross(l)
	case p0.X >= f.wrapX:
		f.wrapped(l.Shift(-f.wrapX))
	default:
		f.emit(p0, p1)
	}
}

// cross emits the seam point of l, which straddles the seam, followed by the
// wrapped remainder of l.
func (f *flattener) cross(l Line) {
	c := l.AtX(f.wrapX)
	f.point(c)
	rest := Line{c.Shift(-f.wrapX), l.P1.Shift(-f.wrapX)}
	if rest.Straddles(f.wrapX) {
		// The chord spans more than one period.
		f.crossWrapped(rest)
		return
	}
	f.emitWrapped(rest.P1)
}

// crossWrapped is cross for a line whose start has already been emitted in
// wrapped coordinates.
func (f *flattener) crossWrapped(l Line) {
	c := l.AtX(f.wrapX)
	f.emitWrapped(c)
	rest := Line{c.Shift(-f.wrapX), l.P1.Shift(-f.wrapX)}
	f.emitWrapped(rest.P0)
	if rest.Straddles(f.wrapX) {
		f.crossWrapped(rest)
		return
	}
	f.emitWrapped(rest.P1)
}

// wrapped emits a chord that has been shifted back by one period.
func (f *flattener) wrapped(l Line) {
	switch {
	case l.Straddles(f.wrapX):
		f.emitWrapped(l.P0)
		f.crossWrapped(l)
	case l.P0.X >= f.wrapX:
		f.wrapped(l.Shift(-f.wrapX))
	default:
		f.emitWrapped(l.P0, l.P1)
	}
}

// cubic flattens c by recursive subdivision until every piece is flat or the
// depth budget is spent.
func (f *flattener) cubic(c CubicBez, depth int) {
	if depth <= 0 || c.Flat() {
		chord := c.Chord()
		f.line(chord.P0, chord.P1)
		return
	}
	left, right := c.Subdivide()
	f.cubic(left, depth-1)
	f.cubic(right, depth-1)
}

// FlattenCubic approximates c with a polyline, subdividing at most depth
// times. Every chord contributes both of its end points, so interior vertices
// appear twice.
func FlattenCubic(c CubicBez, depth int) []Point {
	f := newFlattener()
	f.cubic(c, depth)
	return f.points()
}

// FlattenCubicWrapped is like [FlattenCubic], but treats x = wrapX as the seam
// of a periodic domain. The part of the polyline past the seam is shifted
// back by wrapX and placed before the rest, so the result is ordered by x
// whenever c is monotonic in x.
func FlattenCubicWrapped(c CubicBez, depth int, wrapX float64) []Point {
	f := newSeamFlattener(wrapX)
	f.cubic(c, depth)
	return f.points()
}

// SplitAtSeam emits l the way the flattener does for a seam at wrapX. It
// returns the part before the seam and the wrapped part separately, each in
// emission order. A line ending on the seam is not wrapped; a line starting
// on it is wrapped entirely.
func SplitAtSeam(l Line, wrapX float64) (before, wrapped []Point) {
	f := newSeamFlattener(wrapX)
	f.line(l.P0, l.P1)
	return slices.Clip(f.body), slices.Clip(f.head)
}
