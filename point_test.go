package animcurve

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Shift(-10), Pt(-7, 4))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Midpoint(Pt(4, -2)), Pt(2, -1))
	diff(t, Vec(1, 2).Add(Vec(3, 4)).Mul(2).Div(4), Vec(2, 3))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointFinite(t *testing.T) {
	if Pt(1, 2).IsNaN() || Pt(1, 2).IsInf() {
		t.Error("finite point reported as non-finite")
	}
	if !Pt(math.NaN(), 0).IsNaN() {
		t.Error("NaN not detected")
	}
	if !Pt(0, math.Inf(-1)).IsInf() {
		t.Error("infinity not detected")
	}
}
