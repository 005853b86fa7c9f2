package animcurve

import (
	"bytes"
	"testing"
)

func TestSVG(t *testing.T) {
	pts := []Point{Pt(0, 2), Pt(2.5, -1.23456), Pt(10, 0)}

	tests := []struct {
		opts SVGOptions
		want string
	}{
		{SVGOptions{}, "M0,2 L2.5,-1.23456 L10,0"},
		{SVGOptions{MaxPrecision: 2}, "M0,2 L2.5,-1.23 L10,0"},
		{SVGOptions{FlipY: true}, "M0,-2 L2.5,1.23456 L10,0"},
		{SVGOptions{MaxPrecision: 3, FlipY: true}, "M0,-2 L2.5,1.235 L10,0"},
	}
	for _, tt := range tests {
		diff(t, tt.want, SVG(pts, tt.opts))
	}

	diff(t, "", SVG(nil, SVGOptions{}))
	diff(t, "M0,0", SVG([]Point{Pt(-0.0001, 0)}, SVGOptions{MaxPrecision: 2}))

	var buf bytes.Buffer
	if err := WriteSVG(&buf, pts, SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	diff(t, SVG(pts, SVGOptions{}), buf.String())
}
