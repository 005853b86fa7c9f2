package keyframe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/animcurve"
)

func newTestTrack(t *testing.T, kind animcurve.Kind, pts ...animcurve.Point) *Track {
	t.Helper()

	track, err := NewTrack("test", kind, 10)
	require.NoError(t, err)

	track.SetPoints(pts)

	return track
}

func TestNewTrackUnknownKind(t *testing.T) {
	_, err := NewTrack("bad", animcurve.Kind(42), 10)
	assert.True(t, errors.Is(err, ErrUnknownKind))

	track := newTestTrack(t, animcurve.LinearKind)
	assert.True(t, errors.Is(track.SetKind(animcurve.Kind(-1)), ErrUnknownKind))
	assert.Equal(t, animcurve.LinearKind, track.Kind())
}

func TestTrackKeepsPointsSorted(t *testing.T) {
	track := newTestTrack(t, animcurve.LinearKind, animcurve.Pt(5, 0), animcurve.Pt(1, 1), animcurve.Pt(5, 2))
	assert.Equal(t, []animcurve.Point{animcurve.Pt(1, 1), animcurve.Pt(5, 0), animcurve.Pt(5, 2)}, track.Points())

	assert.Equal(t, 0, track.AddPoint(animcurve.Pt(0, 3)))
	assert.Equal(t, 4, track.AddPoint(animcurve.Pt(5, 4)))
	assert.Equal(t, 5, track.AddPoint(animcurve.Pt(9, 5)))
	assert.Equal(t, 2, track.AddPoint(animcurve.Pt(2, 6)))
	assert.Equal(t, []animcurve.Point{
		animcurve.Pt(0, 3),
		animcurve.Pt(1, 1),
		animcurve.Pt(2, 6),
		animcurve.Pt(5, 0),
		animcurve.Pt(5, 2),
		animcurve.Pt(5, 4),
		animcurve.Pt(9, 5),
	}, track.Points())
}

func TestTrackPointsIsCopy(t *testing.T) {
	pts := []animcurve.Point{animcurve.Pt(1, 1), animcurve.Pt(2, 2)}
	track := newTestTrack(t, animcurve.LinearKind, pts...)

	pts[0] = animcurve.Pt(7, 7)
	got := track.Points()
	got[1] = animcurve.Pt(8, 8)

	assert.Equal(t, []animcurve.Point{animcurve.Pt(1, 1), animcurve.Pt(2, 2)}, track.Points())
}

func TestTrackRemoveAndMovePoint(t *testing.T) {
	track := newTestTrack(t, animcurve.LinearKind, animcurve.Pt(1, 1), animcurve.Pt(2, 2), animcurve.Pt(3, 3))

	i, err := track.MovePoint(0, animcurve.Pt(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, i)
	assert.Equal(t, []animcurve.Point{animcurve.Pt(2, 2), animcurve.Pt(3, 3), animcurve.Pt(4, 1)}, track.Points())

	require.NoError(t, track.RemovePoint(1))
	assert.Equal(t, []animcurve.Point{animcurve.Pt(2, 2), animcurve.Pt(4, 1)}, track.Points())

	assert.True(t, errors.Is(track.RemovePoint(2), ErrNotFound))
	_, err = track.MovePoint(-1, animcurve.Pt(0, 0))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTrackDirty(t *testing.T) {
	track := newTestTrack(t, animcurve.LinearKind, animcurve.Pt(2, 2), animcurve.Pt(8, 8))
	assert.True(t, track.Dirty())

	_, err := track.Evaluate()
	require.NoError(t, err)
	assert.False(t, track.Dirty())

	track.SetWrap(false)
	track.SetLength(10)
	assert.False(t, track.Dirty(), "setting unchanged values doesn't dirty the track")

	track.SetWrap(true)
	assert.True(t, track.Dirty())

	_, err = track.Evaluate()
	require.NoError(t, err)
	track.AddPoint(animcurve.Pt(5, 0))
	assert.True(t, track.Dirty())
}

func TestTrackEvaluate(t *testing.T) {
	track := newTestTrack(t, animcurve.LinearKind, animcurve.Pt(2, 2), animcurve.Pt(8, 8))

	pts, err := track.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, []animcurve.Point{animcurve.Pt(0, 2), animcurve.Pt(10, 8)}, pts)

	pts[0] = animcurve.Pt(-1, -1)
	again, err := track.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, animcurve.Pt(0, 2), again[0])

	track.SetWrap(true)
	pts, err = track.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, []animcurve.Point{animcurve.Pt(0, 5), animcurve.Pt(10, 5)}, pts)
}

func TestTrackEvaluateDepth(t *testing.T) {
	ctrl := []animcurve.Point{animcurve.Pt(0, 0), animcurve.Pt(1, 9), animcurve.Pt(2, -9), animcurve.Pt(3, 0)}
	track := newTestTrack(t, animcurve.BezierKind, ctrl...)
	track.SetDepth(2)

	want, err := animcurve.Bezier{Depth: 2}.Evaluate(ctrl, 10, false)
	require.NoError(t, err)

	got, err := track.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTrackEvaluateInvalid(t *testing.T) {
	track := newTestTrack(t, animcurve.BSplineKind)

	_, err := track.Evaluate()
	assert.True(t, errors.Is(err, animcurve.ErrInvalidInput))
	assert.True(t, track.Dirty())

	_, err = track.ValueAt(1)
	assert.True(t, errors.Is(err, animcurve.ErrInvalidInput))

	track.AddPoint(animcurve.Pt(1, 1))
	track.SetLength(0)
	_, err = track.Evaluate()
	assert.True(t, errors.Is(err, animcurve.ErrInvalidInput))
}

func TestTrackValueAt(t *testing.T) {
	track := newTestTrack(t, animcurve.LinearKind, animcurve.Pt(2, 2), animcurve.Pt(8, 8))

	for x, want := range map[float64]float64{
		-1: 2,
		0:  2,
		5:  5,
		10: 8,
		11: 8,
	} {
		got, err := track.ValueAt(x)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12, "x = %g", x)
	}
}

func TestTrackValueAtWraps(t *testing.T) {
	track := newTestTrack(t, animcurve.CatmullRomKind,
		animcurve.Pt(1, 0), animcurve.Pt(3, 5), animcurve.Pt(6, -2), animcurve.Pt(8, 4))
	track.SetWrap(true)

	for _, x := range []float64{0.5, 3, 4.25, 7.9} {
		want, err := track.ValueAt(x)
		require.NoError(t, err)

		got, err := track.ValueAt(x + 10)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-9, "x = %g", x)

		got, err = track.ValueAt(x - 20)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-9, "x = %g", x)
	}

	// Catmull-Rom passes through its keyframes.
	got, err := track.ValueAt(3)
	require.NoError(t, err)
	assert.InDelta(t, 5, got, 1e-9)
}

func TestTrackSample(t *testing.T) {
	track := newTestTrack(t, animcurve.LinearKind, animcurve.Pt(2, 2), animcurve.Pt(8, 8))

	pts, err := track.Sample(3)
	require.NoError(t, err)
	assert.Equal(t, []animcurve.Point{animcurve.Pt(0, 2), animcurve.Pt(5, 5), animcurve.Pt(10, 8)}, pts)

	pts, err = track.Sample(1)
	require.NoError(t, err)
	assert.Equal(t, []animcurve.Point{animcurve.Pt(0, 2)}, pts)

	pts, err = track.Sample(0)
	require.NoError(t, err)
	assert.Empty(t, pts)
}
