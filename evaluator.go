package animcurve

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidInput is returned by evaluators when their preconditions don't
// hold. Errors returned by [Evaluator.Evaluate] wrap it.
var ErrInvalidInput = errors.New("invalid input")

// Evaluator turns keyframe control points into a polyline approximating a
// curve over the time domain [0, length].
//
// Control points must be non-empty, finite, and ordered by non-decreasing x,
// and length must be positive. If wrap is true, the domain is periodic and
// the curve continues past length as if the control points repeated every
// length units of time.
//
// The returned slice is freshly allocated and owned by the caller.
// Evaluators never modify ctrl and are safe for concurrent use.
type Evaluator interface {
	Evaluate(ctrl []Point, length float64, wrap bool) ([]Point, error)
}

var (
	_ Evaluator = Linear{}
	_ Evaluator = Bezier{}
	_ Evaluator = BSpline{}
	_ Evaluator = CatmullRom{}
)

// Validate checks the preconditions shared by all evaluators.
func Validate(ctrl []Point, length float64) error {
	if !(length > 0) || math.IsInf(length, 0) {
		return fmt.Errorf("%w: domain length %g is not a positive finite number", ErrInvalidInput, length)
	}
	if len(ctrl) == 0 {
		return fmt.Errorf("%w: no control points", ErrInvalidInput)
	}
	for i, pt := range ctrl {
		if pt.IsNaN() || pt.IsInf() {
			return fmt.Errorf("%w: control point %d %v isn't finite", ErrInvalidInput, i, pt)
		}
		if i > 0 && pt.X < ctrl[i-1].X {
			return fmt.Errorf("%w: control point %d %v precedes control point %d %v",
				ErrInvalidInput, i, pt, i-1, ctrl[i-1])
		}
	}
	return nil
}

// Kind identifies one of the evaluation strategies.
type Kind int

const (
	LinearKind Kind = iota
	BezierKind
	BSplineKind
	CatmullRomKind
)

var kindNames = [...]string{
	LinearKind:     "linear",
	BezierKind:     "bezier",
	BSplineKind:    "bspline",
	CatmullRomKind: "catmullrom",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the kind with the given name. Names are matched case
// insensitively, ignoring dashes and underscores, so "Catmull-Rom" and
// "catmull_rom" both name [CatmullRomKind].
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for k, name := range kindNames {
		if name == norm {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown curve kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown curve kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	kk, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = kk
	return nil
}

// Evaluator returns the evaluator for k, flattening cubics with the given
// depth budget. A depth of zero selects [DefaultDepth].
func (k Kind) Evaluator(depth int) Evaluator {
	switch k {
	case LinearKind:
		return Linear{}
	case BezierKind:
		return Bezier{Depth: depth}
	case BSplineKind:
		return BSpline{Depth: depth}
	case CatmullRomKind:
		return CatmullRom{Depth: depth}
	default:
		panic(fmt.Sprintf("invalid curve kind %v", k))
	}
}

func depthOrDefault(depth int) int {
	if depth <= 0 {
		return DefaultDepth
	}
	return depth
}
