package keyframe

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/animcurve"
)

const testDocument = `
config:
  depth: 12
  workers: 3
  cache_ttl: 90s
length: 10
tracks:
  - name: opacity
    kind: Catmull-Rom
    wrap: true
    points: [[1, 0], [3, 5], [6, "-2"], ["8", 4.5]]
  - name: scale
    kind: linear
    length: 4
    points:
      - [0, 1]
      - [4, 2]
`

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(testDocument))
	require.NoError(t, err)

	assert.Equal(t, Config{Depth: 12, Workers: 3, CacheTTL: 90 * time.Second}, doc.Config)
	assert.Equal(t, 10.0, doc.Length)
	assert.Equal(t, []TrackDocument{
		{
			Name: "opacity",
			Kind: animcurve.CatmullRomKind,
			Wrap: true,
			Points: []animcurve.Point{
				animcurve.Pt(1, 0),
				animcurve.Pt(3, 5),
				animcurve.Pt(6, -2),
				animcurve.Pt(8, 4.5),
			},
		},
		{
			Name:   "scale",
			Kind:   animcurve.LinearKind,
			Length: 4,
			Points: []animcurve.Point{animcurve.Pt(0, 1), animcurve.Pt(4, 2)},
		},
	}, doc.Tracks)
}

func TestDecodeErrors(t *testing.T) {
	for name, tc := range map[string]struct {
		doc  string
		want error
	}{
		"syntax":       {"tracks: [", animcurve.ErrInvalidInput},
		"empty":        {"", animcurve.ErrInvalidInput},
		"no name":      {"tracks: [{kind: linear}]", animcurve.ErrInvalidInput},
		"duplicate":    {"tracks: [{name: a, kind: linear}, {name: a, kind: bezier}]", ErrExists},
		"unknown kind": {"tracks: [{name: a, kind: nurbs}]", ErrUnknownKind},
		"short point":  {"tracks: [{name: a, kind: linear, points: [[1]]}]", animcurve.ErrInvalidInput},
		"bad number":   {"tracks: [{name: a, kind: linear, points: [[1, one]]}]", animcurve.ErrInvalidInput},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.doc))
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestDocumentBank(t *testing.T) {
	doc, err := Decode(strings.NewReader(testDocument))
	require.NoError(t, err)

	b, err := doc.Bank(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"opacity", "scale"}, b.Names())
	assert.Equal(t, 12, b.Config().Depth)

	opacity, err := b.Track("opacity")
	require.NoError(t, err)
	assert.Equal(t, animcurve.CatmullRomKind, opacity.Kind())
	assert.Equal(t, 10.0, opacity.Length())
	assert.True(t, opacity.Wrap())

	scale, err := b.Track("scale")
	require.NoError(t, err)
	assert.Equal(t, 4.0, scale.Length())

	v, err := scale.ValueAt(2)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, v, 1e-12)
}

func TestDocumentRoundTrip(t *testing.T) {
	doc, err := Decode(strings.NewReader(testDocument))
	require.NoError(t, err)

	b, err := doc.Bank(nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewDocument(b, 10).Encode(&buf))

	again, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc.Tracks, again.Tracks)
	assert.Equal(t, doc.Length, again.Length)
	assert.Equal(t, b.Config(), again.Config)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDocument), 0o644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Tracks, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
