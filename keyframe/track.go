package keyframe

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"

	"honnef.co/go/animcurve"
)

// curve is everything an evaluation depends on.
type curve struct {
	kind   animcurve.Kind
	length float64
	wrap   bool
	depth  int
	points []animcurve.Point
}

func (c curve) evaluate() ([]animcurve.Point, error) {
	return c.kind.Evaluator(c.depth).Evaluate(c.points, c.length, c.wrap)
}

// key fingerprints c. Curves with equal keys evaluate to the same polyline.
func (c curve) key() string {
	var b strings.Builder
	b.Grow(32 + 24*len(c.points))
	b.WriteString(c.kind.String())
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(c.length, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(c.wrap))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(c.depth))
	for _, pt := range c.points {
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(pt.X, 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(pt.Y, 'g', -1, 64))
	}
	return b.String()
}

func checkKind(kind animcurve.Kind) error {
	if _, err := kind.MarshalText(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	return nil
}

// Track is a named animation curve: a kind, a time domain and the keyframes
// placed in it. Keyframes are kept ordered by time.
//
// A track remembers its evaluated polyline and only evaluates again after it
// has been modified. Tracks are safe for concurrent use.
type Track struct {
	mu     sync.RWMutex
	name   string
	kind   animcurve.Kind
	length float64
	wrap   bool
	depth  int
	points []animcurve.Point
	dirty  bool
	output []animcurve.Point

	// Set by the bank holding the track.
	defaultDepth int
	eval         func(curve) ([]animcurve.Point, error)
}

// NewTrack returns an empty track. Points must be added before it can be
// evaluated.
func NewTrack(name string, kind animcurve.Kind, length float64) (*Track, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return &Track{
		name:   name,
		kind:   kind,
		length: length,
		dirty:  true,
	}, nil
}

func (t *Track) Name() string { return t.name }

func (t *Track) Kind() animcurve.Kind {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.kind
}

func (t *Track) SetKind(kind animcurve.Kind) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.kind != kind {
		t.kind = kind
		t.dirty = true
	}
	return nil
}

func (t *Track) Wrap() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.wrap
}

func (t *Track) SetWrap(wrap bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.wrap != wrap {
		t.wrap = wrap
		t.dirty = true
	}
}

func (t *Track) Length() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.length
}

// SetLength changes the time domain. Keyframes are not moved.
func (t *Track) SetLength(length float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.length != length {
		t.length = length
		t.dirty = true
	}
}

// Depth returns the track's flattening depth. Zero means the track uses
// the depth of the bank holding it, or animcurve.DefaultDepth.
func (t *Track) Depth() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.depth
}

func (t *Track) SetDepth(depth int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.depth != depth {
		t.depth = depth
		t.dirty = true
	}
}

// Points returns a copy of the keyframes.
func (t *Track) Points() []animcurve.Point {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.points)
}

// SetPoints replaces all keyframes. pts is copied and sorted by time;
// keyframes sharing a time keep their relative order.
func (t *Track) SetPoints(pts []animcurve.Point) {
	pts = slices.Clone(pts)
	slices.SortStableFunc(pts, func(a, b animcurve.Point) int {
		return cmp.Compare(a.X, b.X)
	})
	t.mu.Lock()
	defer t.mu.Unlock()
	t.points = pts
	t.dirty = true
}

// insertionIndex returns the index at which a keyframe at time x goes: after
// every keyframe at or before x.
func insertionIndex(pts []animcurve.Point, x float64) int {
	i, _ := slices.BinarySearchFunc(pts, x, func(pt animcurve.Point, x float64) int {
		if pt.X <= x {
			return -1
		}
		return 1
	})
	return i
}

// AddPoint inserts a keyframe and returns its index.
func (t *Track) AddPoint(pt animcurve.Point) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := insertionIndex(t.points, pt.X)
	t.points = slices.Insert(t.points, i, pt)
	t.dirty = true
	return i
}

// RemovePoint removes keyframe i.
func (t *Track) RemovePoint(i int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i < 0 || i >= len(t.points) {
		return fmt.Errorf("%w: keyframe %d of track %q", ErrNotFound, i, t.name)
	}
	t.points = slices.Delete(t.points, i, i+1)
	t.dirty = true
	return nil
}

// MovePoint replaces keyframe i with pt, reordering the keyframes if
// necessary, and returns the new index of the keyframe.
func (t *Track) MovePoint(i int, pt animcurve.Point) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i < 0 || i >= len(t.points) {
		return 0, fmt.Errorf("%w: keyframe %d of track %q", ErrNotFound, i, t.name)
	}
	t.points = slices.Delete(t.points, i, i+1)
	j := insertionIndex(t.points, pt.X)
	t.points = slices.Insert(t.points, j, pt)
	t.dirty = true
	return j, nil
}

// Dirty reports whether the track has been modified since it was last
// evaluated successfully.
func (t *Track) Dirty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dirty
}

// Evaluate returns the track's polyline, evaluating the curve if the track
// is dirty.
func (t *Track) Evaluate() ([]animcurve.Point, error) {
	pts, _, err := t.evaluate()
	return slices.Clone(pts), err
}

// attach hands the track to a bank.
func (t *Track) attach(depth int, eval func(curve) ([]animcurve.Point, error)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.defaultDepth = depth
	t.eval = eval
	t.dirty = true
}

func (t *Track) detach() {
	t.attach(0, nil)
}

// evaluate returns the cached polyline, refreshing it when dirty. The
// returned slice is shared and must not be modified.
func (t *Track) evaluate() ([]animcurve.Point, curve, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	c := curve{
		kind:   t.kind,
		length: t.length,
		wrap:   t.wrap,
		depth:  t.depth,
		points: t.points,
	}
	if c.depth == 0 {
		c.depth = t.defaultDepth
	}
	if !t.dirty {
		return t.output, c, nil
	}
	eval := t.eval
	if eval == nil {
		eval = curve.evaluate
	}
	out, err := eval(c)
	if err != nil {
		return nil, c, fmt.Errorf("track %q: %w", t.name, err)
	}
	t.output = out
	t.dirty = false
	return out, c, nil
}

// ValueAt returns the value of the track at time x, interpolating linearly
// between the polyline's points. On wrapping tracks x is first reduced into
// [0, length). Times outside the polyline take the value of its nearest end.
func (t *Track) ValueAt(x float64) (float64, error) {
	pts, c, err := t.evaluate()
	if err != nil {
		return 0, err
	}
	return valueAt(pts, c, x), nil
}

func valueAt(pts []animcurve.Point, c curve, x float64) float64 {
	if c.wrap {
		x = math.Mod(x, c.length)
		if x < 0 {
			x += c.length
		}
	}
	if x <= pts[0].X {
		return pts[0].Y
	}
	for i := 1; i < len(pts); i++ {
		p0, p1 := pts[i-1], pts[i]
		if p0.X <= x && x <= p1.X {
			if p0.X == p1.X {
				return p1.Y
			}
			return animcurve.Line{P0: p0, P1: p1}.AtX(x).Y
		}
	}
	return pts[len(pts)-1].Y
}

// Sample returns n values of the track at evenly spaced times from 0 to its
// length inclusive.
func (t *Track) Sample(n int) ([]animcurve.Point, error) {
	pts, c, err := t.evaluate()
	if err != nil {
		return nil, err
	}
	return sample(pts, c, n), nil
}

func sample(pts []animcurve.Point, c curve, n int) []animcurve.Point {
	if n <= 0 {
		return nil
	}
	out := make([]animcurve.Point, n)
	for i := range out {
		var x float64
		if n > 1 {
			x = c.length * float64(i) / float64(n-1)
		}
		// At x = length a wrapping track reads the seam from the start.
		out[i] = animcurve.Pt(x, valueAt(pts, c, x))
	}
	return out
}
