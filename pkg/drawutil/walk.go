package drawutil

import (
	"github.com/wesen/rigidwalk/pkg/cellbuf"
	"github.com/wesen/rigidwalk/pkg/turtle"
)

// DrawWalk rasterises traced segments. Segment i uses keys[i mod len(keys)];
// the last segment ends in an arrowhead drawn with arrow.
func DrawWalk(buf *cellbuf.Buffer, vp Viewport, segs []turtle.Segment, keys []cellbuf.StyleKey, arrow cellbuf.StyleKey) {
	if len(keys) == 0 {
		return
	}
	for i, s := range segs {
		a, b := vp.ToCell(s.From), vp.ToCell(s.To)
		key := keys[s.Color(len(keys))]
		if i == len(segs)-1 {
			DrawArrowLine(buf, a.X, a.Y, b.X, b.Y, key, arrow)
			continue
		}
		DrawLine(buf, a.X, a.Y, b.X, b.Y, key)
	}
}

// DrawGuides draws reference lines dashed and underneath the walk.
func DrawGuides(buf *cellbuf.Buffer, vp Viewport, style cellbuf.StyleKey, lines ...turtle.Line) {
	for _, l := range lines {
		a, b := vp.ToCell(l.From), vp.ToCell(l.To)
		DrawDashedLine(buf, a.X, a.Y, b.X, b.Y, style)
	}
}
