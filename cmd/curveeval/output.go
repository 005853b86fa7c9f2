package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/animcurve"
)

type format int

const (
	formatPoints format = iota
	formatCSV
	formatSVG
)

func parseFormat(s string, allowSVG bool) (format, error) {
	switch strings.ToLower(s) {
	case "", "points":
		return formatPoints, nil
	case "csv":
		return formatCSV, nil
	case "svg":
		if allowSVG {
			return formatSVG, nil
		}
	}
	return 0, fmt.Errorf("unsupported output format %q", s)
}

// formatNum formats v with at most prec decimals, dropping trailing zeros.
// A prec of zero or less formats v exactly.
func formatNum(v float64, prec int) string {
	if prec <= 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// writer prints the polylines of tracks in one format.
type writer struct {
	w      *bufio.Writer
	csv    *csv.Writer
	format format
	prec   int
	tracks int
	err    error

	// SVG paths are written on Flush, once their bounds are known.
	bounds animcurve.Rect
	paths  []string
}

func newWriter(w io.Writer, f format, prec int) *writer {
	bw := bufio.NewWriter(w)
	return &writer{
		w:      bw,
		csv:    csv.NewWriter(bw),
		format: f,
		prec:   prec,
	}
}

func (w *writer) printf(s string, v ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, s, v...)
}

func (w *writer) Track(name string, pts []animcurve.Point) {
	defer func() { w.tracks++ }()

	switch w.format {
	case formatPoints:
		if w.tracks > 0 {
			w.printf("\n")
		}
		w.printf("# %s\n", name)
		for _, pt := range pts {
			w.printf("%s %s\n", formatNum(pt.X, w.prec), formatNum(pt.Y, w.prec))
		}
	case formatCSV:
		if w.err != nil {
			return
		}
		if w.tracks == 0 {
			w.err = w.csv.Write([]string{"track", "x", "y"})
		}
		for _, pt := range pts {
			if w.err != nil {
				return
			}
			w.err = w.csv.Write([]string{name, formatNum(pt.X, w.prec), formatNum(pt.Y, w.prec)})
		}
	case formatSVG:
		flipped := make([]animcurve.Point, len(pts))
		for i, pt := range pts {
			flipped[i] = animcurve.Pt(pt.X, -pt.Y)
		}
		if b := animcurve.Bounds(flipped); w.tracks == 0 {
			w.bounds = b
		} else {
			w.bounds = w.bounds.Union(b)
		}
		d := animcurve.SVG(pts, animcurve.SVGOptions{MaxPrecision: w.prec, FlipY: true})
		w.paths = append(w.paths, fmt.Sprintf("<path id=\"%s\" d=\"%s\" fill=\"none\" stroke=\"black\"/>", html.EscapeString(name), d))
	default:
		panic("unreachable")
	}
}

func (w *writer) Flush() error {
	if w.format == formatSVG {
		w.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%s %s %s %s\">\n",
			formatNum(w.bounds.X0, w.prec), formatNum(w.bounds.Y0, w.prec),
			formatNum(w.bounds.Width(), w.prec), formatNum(w.bounds.Height(), w.prec))
		for _, p := range w.paths {
			w.printf("%s\n", p)
		}
		w.printf("</svg>\n")
		w.paths = nil
	}
	if w.err != nil {
		return w.err
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}
	return w.w.Flush()
}
