package drawutil

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/wesen/rigidwalk/pkg/cellbuf"
	"github.com/wesen/rigidwalk/pkg/rigidwalk"
	"github.com/wesen/rigidwalk/pkg/turtle"
)

const (
	keyBG cellbuf.StyleKey = iota
	keyA
	keyB
	keyC
	keyArrow
	keyGuide
)

// ── Viewport ──

func TestFitKeepsBoxInside(t *testing.T) {
	box := r2.Box{Min: r2.Vec{X: -50, Y: -10}, Max: r2.Vec{X: 150, Y: 90}}
	vp := Fit(box, 80, 24, 1)

	for _, p := range []r2.Vec{box.Min, box.Max, {X: -50, Y: 90}, {X: 150, Y: -10}} {
		c := vp.ToCell(p)
		if c.X < 0 || c.X >= 80 || c.Y < 0 || c.Y >= 24 {
			t.Errorf("corner %v maps outside the grid: %v", p, c)
		}
	}
	if got := vp.ToCell(r2.Vec{X: 50, Y: 40}); got != image.Pt(40, 12) {
		t.Errorf("center: expected (40,12), got %v", got)
	}
}

func TestFitEmptyBox(t *testing.T) {
	vp := Fit(r2.Box{Min: r2.Vec{X: 3, Y: 3}, Max: r2.Vec{X: 3, Y: 3}}, 10, 10, 1)
	if vp.Scale != 1 {
		t.Errorf("expected scale 1 for an empty box, got %g", vp.Scale)
	}
	if got := vp.ToCell(r2.Vec{X: 3, Y: 3}); got != image.Pt(5, 5) {
		t.Errorf("expected (5,5), got %v", got)
	}
}

func TestViewportAspect(t *testing.T) {
	vp := Viewport{W: 20, H: 20, Scale: 2, Aspect: 2}
	if got := vp.ToCell(r2.Vec{X: 2, Y: 2}); got != image.Pt(14, 12) {
		t.Errorf("expected (14,12), got %v", got)
	}
	if z := vp.Zoom(2); z.Scale != 4 || z.Center != vp.Center {
		t.Errorf("Zoom: got scale %g center %v", z.Scale, z.Center)
	}
}

func TestToCellSaturates(t *testing.T) {
	vp := Viewport{W: 10, H: 10, Scale: 1e300, Aspect: 2}
	got := vp.ToCell(r2.Vec{X: 1e10, Y: -1e10})
	if got != image.Pt(maxCell, -maxCell) {
		t.Errorf("expected (%d,%d), got %v", maxCell, -maxCell, got)
	}
}

func TestDrawWalkExtremeScale(t *testing.T) {
	w, err := rigidwalk.Walk8(0.3, 60, 4)
	require.NoError(t, err)
	segs := turtle.Trace(w.Steps(false), r2.Vec{})

	buf := cellbuf.New(40, 20, keyBG)
	vp := Fit(turtle.Bounds(segs), buf.W, buf.H, 1).Zoom(1e19)
	require.NotPanics(t, func() {
		DrawWalk(buf, vp, segs, []cellbuf.StyleKey{keyA}, keyArrow)
	})
}

// ── Walks ──

func TestDrawWalkColorsAndArrow(t *testing.T) {
	w, err := rigidwalk.Walk8(0.3, 60, 4)
	require.NoError(t, err)
	segs := turtle.Trace(w.Steps(false), r2.Vec{})
	require.GreaterOrEqual(t, len(segs), 3)

	buf := cellbuf.New(60, 30, keyBG)
	vp := Fit(turtle.Bounds(segs), buf.W, buf.H, 1)
	DrawWalk(buf, vp, segs, []cellbuf.StyleKey{keyA, keyB, keyC}, keyArrow)

	for _, k := range []cellbuf.StyleKey{keyA, keyB, keyC} {
		if buf.Count(k) == 0 {
			t.Errorf("style %d never drawn", k)
		}
	}
	if n := buf.Count(keyArrow); n != 1 {
		t.Errorf("expected exactly one arrowhead, got %d", n)
	}
	end := vp.ToCell(segs[len(segs)-1].To)
	if c := buf.Cells[end.Y][end.X]; c.Style != keyArrow {
		t.Errorf("walk end %v: expected arrowhead, got %c/%d", end, c.Ch, c.Style)
	}
}

func TestDrawWalkNoKeys(t *testing.T) {
	buf := cellbuf.New(5, 5, keyBG)
	segs := []turtle.Segment{{To: r2.Vec{X: 1, Y: 1}}}
	DrawWalk(buf, Viewport{W: 5, H: 5, Scale: 1, Aspect: 1}, segs, nil, keyArrow)
	if buf.String() != cellbuf.New(5, 5, keyBG).String() {
		t.Error("DrawWalk without keys should draw nothing")
	}
}

func TestDrawGuidesUnderWalk(t *testing.T) {
	w, err := rigidwalk.Walk4(1.0, 80, 6)
	require.NoError(t, err)
	segs := turtle.Trace(w.Steps(true), r2.Vec{})

	buf := cellbuf.New(70, 30, keyBG)
	vp := Fit(turtle.Bounds(segs), buf.W, buf.H, 2)
	DrawWalk(buf, vp, segs, []cellbuf.StyleKey{keyA}, keyArrow)
	before := buf.Count(keyA) + buf.Count(keyArrow)

	ideal, left, right := turtle.Guides(w.Angle(), w.Displacement(), w.Offset(), r2.Vec{})
	DrawGuides(buf, vp, keyGuide, ideal, left, right)

	if after := buf.Count(keyA) + buf.Count(keyArrow); after != before {
		t.Errorf("guides covered walk cells: %d before, %d after", before, after)
	}
	if buf.Count(keyGuide) == 0 {
		t.Error("no guide cells drawn")
	}
}
