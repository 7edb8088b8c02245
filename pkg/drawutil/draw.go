package drawutil

import (
	"image"
	"math"

	"github.com/wesen/rigidwalk/pkg/cellbuf"
)

// pointChar picks the line character for pts[i] from the direction to its
// neighbour.
func pointChar(pts []image.Point, i int) rune {
	var dx, dy int
	if i < len(pts)-1 {
		dx = pts[i+1].X - pts[i].X
		dy = pts[i+1].Y - pts[i].Y
	} else if i > 0 {
		dx = pts[i].X - pts[i-1].X
		dy = pts[i].Y - pts[i-1].Y
	}
	return LineChar(dx, dy)
}

// clip trims the line to buf plus a one-cell border (Liang-Barsky). ok is
// false when the line misses that area; whole is false when the far end
// was cut off. Lines already inside come back unchanged.
func clip(buf *cellbuf.Buffer, x0, y0, x1, y1 int) (a, b image.Point, whole, ok bool) {
	fx, fy := float64(x0), float64(y0)
	dx, dy := float64(x1)-fx, float64(y1)-fy
	edges := [4][2]float64{
		{-dx, fx + 1},
		{dx, float64(buf.W) - fx},
		{-dy, fy + 1},
		{dy, float64(buf.H) - fy},
	}
	t0, t1 := 0.0, 1.0
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return a, b, false, false
			}
			t1 = min(t1, r)
		}
	}
	at := func(t float64) image.Point {
		return image.Pt(int(math.Round(fx+t*dx)), int(math.Round(fy+t*dy)))
	}
	a, b = image.Pt(x0, y0), image.Pt(x1, y1)
	if t0 > 0 {
		a = at(t0)
	}
	if t1 < 1 {
		b = at(t1)
	}
	return a, b, t1 == 1, true
}

// visible clips the line to buf and rasterises what is left.
func visible(buf *cellbuf.Buffer, x0, y0, x1, y1 int) (pts []image.Point, whole bool) {
	a, b, whole, ok := clip(buf, x0, y0, x1, y1)
	if !ok {
		return nil, false
	}
	return Bresenham(a.X, a.Y, b.X, b.Y), whole
}

// DrawLine draws a Bresenham line into buf in cell coordinates. Parts
// outside the buffer are skipped.
func DrawLine(buf *cellbuf.Buffer, x0, y0, x1, y1 int, style cellbuf.StyleKey) {
	pts, _ := visible(buf, x0, y0, x1, y1)
	for i, p := range pts {
		buf.Set(p.X, p.Y, pointChar(pts, i), style)
	}
}

// DrawArrowLine draws a line ending in an arrowhead. The walk renderer uses
// it for the final leg so the direction of travel is visible. No arrowhead
// is drawn when the end lies off the buffer.
func DrawArrowLine(buf *cellbuf.Buffer, x0, y0, x1, y1 int, lineStyle, arrowStyle cellbuf.StyleKey) {
	pts, whole := visible(buf, x0, y0, x1, y1)
	if len(pts) < 2 || !whole {
		for i, p := range pts {
			buf.Set(p.X, p.Y, pointChar(pts, i), lineStyle)
		}
		return
	}
	for i, p := range pts[:len(pts)-1] {
		buf.Set(p.X, p.Y, pointChar(pts, i), lineStyle)
	}
	last, prev := pts[len(pts)-1], pts[len(pts)-2]
	buf.Set(last.X, last.Y, ArrowChar(last.X-prev.X, last.Y-prev.Y), arrowStyle)
}

// DrawDashedLine draws a line underneath existing content, skipping every
// third point.
func DrawDashedLine(buf *cellbuf.Buffer, x0, y0, x1, y1 int, style cellbuf.StyleKey) {
	pts, _ := visible(buf, x0, y0, x1, y1)
	for i, p := range pts {
		if i%3 != 2 {
			buf.SetUnder(p.X, p.Y, '·', style)
		}
	}
}
