package animcurve

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// If true, values are negated so that larger values point up in SVG's
	// y-down coordinate system.
	FlipY bool
}

// SVG converts a polyline to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(pts []Point, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, pts, opts)
	return sb.String()
}

// WriteSVG converts a polyline to a string of SVG path commands and writes it
// to w. The first point is a move, every following point a line.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, pts []Point, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
		if s == "-0" {
			return "0"
		}
		return s
	}
	for i, pt := range pts {
		y := pt.Y
		if opts.FlipY && y != 0 {
			y = -y
		}
		switch i {
		case 0:
			writef("M%s,%s", format(pt.X), format(y))
		default:
			writef(" L%s,%s", format(pt.X), format(y))
		}
	}
	return err
}
