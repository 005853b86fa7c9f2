package keyframe

import (
	"fmt"
	"io"
	"os"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
	"honnef.co/go/animcurve"
)

// Document is the stored form of a bank:
//
//	config:
//	  depth: 12
//	  workers: 4
//	  cache_ttl: 1m
//	length: 10
//	tracks:
//	  - name: opacity
//	    kind: catmull-rom
//	    wrap: true
//	    points: [[1, 0], [3, 5], [6, "-2"], [8, 4]]
//
// Keyframe coordinates may be written as numbers or numeric strings.
type Document struct {
	Config Config
	// Length is the time domain of tracks that don't set their own.
	Length float64
	Tracks []TrackDocument
}

type TrackDocument struct {
	Name   string
	Kind   animcurve.Kind
	Length float64
	Wrap   bool
	Depth  int
	Points []animcurve.Point
}

type yamlDocument struct {
	Config Config      `yaml:"config,omitempty"`
	Length float64     `yaml:"length"`
	Tracks []yamlTrack `yaml:"tracks"`
}

type yamlTrack struct {
	Name   string  `yaml:"name"`
	Kind   string  `yaml:"kind"`
	Length float64 `yaml:"length,omitempty"`
	Wrap   bool    `yaml:"wrap,omitempty"`
	Depth  int     `yaml:"depth,omitempty"`
	Points [][]any `yaml:"points,flow"`
}

// Decode reads a document in YAML form.
func Decode(r io.Reader) (*Document, error) {
	var yd yamlDocument
	if err := yaml.NewDecoder(r).Decode(&yd); err != nil {
		return nil, fmt.Errorf("%w: %v", animcurve.ErrInvalidInput, err)
	}

	doc := &Document{
		Config: yd.Config,
		Length: yd.Length,
		Tracks: make([]TrackDocument, 0, len(yd.Tracks)),
	}

	seen := make(map[string]bool, len(yd.Tracks))

	for i, yt := range yd.Tracks {
		if yt.Name == "" {
			return nil, fmt.Errorf("%w: track %d has no name", animcurve.ErrInvalidInput, i)
		}

		if seen[yt.Name] {
			return nil, fmt.Errorf("%w: track %q", ErrExists, yt.Name)
		}

		seen[yt.Name] = true

		kind, err := animcurve.ParseKind(yt.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: track %q: %q", ErrUnknownKind, yt.Name, yt.Kind)
		}

		td := TrackDocument{
			Name:   yt.Name,
			Kind:   kind,
			Length: yt.Length,
			Wrap:   yt.Wrap,
			Depth:  yt.Depth,
			Points: make([]animcurve.Point, 0, len(yt.Points)),
		}

		for j, raw := range yt.Points {
			pt, err := decodePoint(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: track %q keyframe %d: %v", animcurve.ErrInvalidInput, yt.Name, j, err)
			}

			td.Points = append(td.Points, pt)
		}

		doc.Tracks = append(doc.Tracks, td)
	}

	return doc, nil
}

func decodePoint(raw []any) (animcurve.Point, error) {
	if len(raw) != 2 {
		return animcurve.Point{}, fmt.Errorf("want [x, y], got %d values", len(raw))
	}

	x, err := cast.ToFloat64E(raw[0])
	if err != nil {
		return animcurve.Point{}, err
	}

	y, err := cast.ToFloat64E(raw[1])
	if err != nil {
		return animcurve.Point{}, err
	}

	return animcurve.Pt(x, y), nil
}

// LoadFile decodes the document stored at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes doc in YAML form.
func (doc *Document) Encode(w io.Writer) error {
	yd := yamlDocument{
		Config: doc.Config,
		Length: doc.Length,
		Tracks: make([]yamlTrack, 0, len(doc.Tracks)),
	}

	for _, td := range doc.Tracks {
		yt := yamlTrack{
			Name:   td.Name,
			Kind:   td.Kind.String(),
			Length: td.Length,
			Wrap:   td.Wrap,
			Depth:  td.Depth,
			Points: make([][]any, 0, len(td.Points)),
		}

		for _, pt := range td.Points {
			yt.Points = append(yt.Points, []any{pt.X, pt.Y})
		}

		yd.Tracks = append(yd.Tracks, yt)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(&yd); err != nil {
		return err
	}

	return enc.Close()
}

// Bank builds a bank holding the document's tracks.
func (doc *Document) Bank(logger l.Wrapper) (*Bank, error) {
	b := NewBank(doc.Config, logger)

	for _, td := range doc.Tracks {
		length := td.Length
		if length == 0 {
			length = doc.Length
		}

		t, err := NewTrack(td.Name, td.Kind, length)
		if err != nil {
			return nil, err
		}

		t.SetWrap(td.Wrap)
		t.SetDepth(td.Depth)
		t.SetPoints(td.Points)

		if err := b.Add(t); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// NewDocument returns the stored form of b. Track lengths equal to length
// are omitted.
func NewDocument(b *Bank, length float64) *Document {
	doc := &Document{
		Config: b.Config(),
		Length: length,
	}

	for _, t := range b.Tracks() {
		td := TrackDocument{
			Name:   t.Name(),
			Kind:   t.Kind(),
			Wrap:   t.Wrap(),
			Depth:  t.Depth(),
			Points: t.Points(),
		}

		if tl := t.Length(); tl != length {
			td.Length = tl
		}

		doc.Tracks = append(doc.Tracks, td)
	}

	return doc
}
