package chart

import (
	"bytes"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/wesen/rigidwalk/internal/scene"
	"github.com/wesen/rigidwalk/pkg/rigidwalk"
	"github.com/wesen/rigidwalk/pkg/turtle"
)

func snowflake(t *testing.T) *scene.Scene {
	t.Helper()
	s, err := scene.Snowflake(scene.Params{Directions: rigidwalk.EightWay, Displacement: 60, Offset: 3}, 5)
	require.NoError(t, err)
	return s
}

// ── Path ──

func TestPathIsSquare(t *testing.T) {
	s, err := scene.Single(scene.Params{Directions: rigidwalk.FourWay, Angle: 0.2, Displacement: 100, Offset: 5})
	require.NoError(t, err)
	p, err := Path(s, Options{Title: "walk", ShowGuides: true})
	require.NoError(t, err)

	assert.Equal(t, "walk", p.Title.Text)
	assert.InDelta(t, p.X.Max-p.X.Min, p.Y.Max-p.Y.Min, 1e-9)

	b := s.Bounds(r2.Vec{})
	assert.LessOrEqual(t, p.X.Min, b.Min.X)
	assert.GreaterOrEqual(t, p.X.Max, b.Max.X)
	assert.LessOrEqual(t, p.Y.Min, b.Min.Y)
	assert.GreaterOrEqual(t, p.Y.Max, b.Max.Y)
}

func TestPathEmptyScene(t *testing.T) {
	p, err := Path(&scene.Scene{}, Options{})
	require.NoError(t, err)
	assert.InDelta(t, 1.1, p.X.Max-p.X.Min, 1e-12)
}

func TestWritePNG(t *testing.T) {
	p, err := Path(snowflake(t), Options{ShowGuides: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, p, 144, 144, "png"))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
}

func TestWriteUnknownFormat(t *testing.T) {
	p, err := Path(snowflake(t), Options{})
	require.NoError(t, err)
	require.Error(t, Write(&bytes.Buffer{}, p, 100, 100, "bmp"))
}

func TestSaveSVG(t *testing.T) {
	p, err := Deviation(snowflake(t), Options{Title: "deviation"})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "dev.svg")
	require.NoError(t, Save(p, 200, 120, path))
	assert.FileExists(t, path)
}

// ── Deviation ──

func TestDeviationProfile(t *testing.T) {
	w, err := rigidwalk.Walk4(math.Pi/4, 10, 2)
	require.NoError(t, err)
	var origin r2.Vec
	segs := turtle.Trace(w.Steps(false), origin)
	pts := DeviationProfile(segs, origin, w.Angle())

	require.Len(t, pts, w.StepCount()+1)
	assert.Equal(t, 0.0, pts[0].X)
	assert.Equal(t, 0.0, pts[0].Y)
	assert.InDelta(t, 2, pts[1].Y, 1e-9, "the first leg reaches the offset line")
	for i, pt := range pts {
		if pt.Y > 2+1e-9 {
			t.Errorf("point %d: deviation %g exceeds offset", i, pt.Y)
		}
	}
	last := pts[len(pts)-1]
	assert.InDelta(t, w.TotalDistance(), last.X, 1e-9)
	assert.InDelta(t, 0, last.Y, 1e-9)
}
