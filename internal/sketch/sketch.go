// Package sketch draws a scene into a cellbuf and renders it with lipgloss.
// Both the interactive viewer and the ascii subcommand use it.
package sketch

import (
	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/wesen/rigidwalk/internal/scene"
	"github.com/wesen/rigidwalk/pkg/cellbuf"
	"github.com/wesen/rigidwalk/pkg/drawutil"
	"github.com/wesen/rigidwalk/pkg/palette"
)

// Style keys used by Draw.
const (
	KeyBG cellbuf.StyleKey = iota
	KeyGrid
	KeyGuide
	KeyArrow
	keyLeg // first leg color; leg i uses keyLeg + i mod len(palette)
)

// Options selects what gets drawn and in which colors.
type Options struct {
	Palette    palette.Palette
	Background colorful.Color
	ShowGuides bool
	Grid       int     // grid spacing in cells; 0 disables the grid
	Zoom       float64 // applied on top of the fitted scale; 0 means 1
	Margin     int
}

// LegKeys returns one style key per palette color.
func LegKeys(n int) []cellbuf.StyleKey {
	keys := make([]cellbuf.StyleKey, n)
	for i := range keys {
		keys[i] = keyLeg + cellbuf.StyleKey(i)
	}
	return keys
}

// Styles maps every key used by Draw to a lipgloss style on bg.
func Styles(pal palette.Palette, bg colorful.Color) map[cellbuf.StyleKey]lipgloss.Style {
	base := lipgloss.NewStyle().Background(bg)
	styles := map[cellbuf.StyleKey]lipgloss.Style{
		KeyBG:    base,
		KeyGrid:  base.Foreground(palette.Blend(colorful.Color{R: 0.5, G: 0.5, B: 0.5}, bg, 0.6)),
		KeyGuide: base.Foreground(pal.Dim(0, bg, 0.5)),
		KeyArrow: base.Foreground(colorful.Color{R: 1, G: 1, B: 1}).Bold(true),
	}
	for i, k := range LegKeys(len(pal)) {
		styles[k] = base.Foreground(pal.At(i))
	}
	return styles
}

// Viewport fits the scene's bounds into a w×h grid.
func Viewport(s *scene.Scene, w, h int, opts Options) drawutil.Viewport {
	vp := drawutil.Fit(s.Bounds(r2.Vec{}), w, h, opts.Margin)
	if opts.Zoom > 0 {
		vp = vp.Zoom(opts.Zoom)
	}
	return vp
}

// Draw rasterises s into buf: grid, then guides, then every walk.
func Draw(buf *cellbuf.Buffer, vp drawutil.Viewport, s *scene.Scene, opts Options) {
	pal := opts.Palette
	if len(pal) == 0 {
		pal = palette.Default()
	}
	var origin r2.Vec
	keys := LegKeys(len(pal))
	for _, segs := range s.Segments(origin) {
		drawutil.DrawWalk(buf, vp, segs, keys, KeyArrow)
	}
	if opts.ShowGuides {
		drawutil.DrawGuides(buf, vp, KeyGuide, s.Guides(origin)...)
	}
	if opts.Grid > 0 {
		o := vp.ToCell(origin)
		drawutil.DrawGrid(buf, o.X, o.Y, opts.Grid*2, opts.Grid, KeyGrid)
	}
}

// Render draws s into a fresh w×h buffer and returns the styled text.
func Render(s *scene.Scene, w, h int, opts Options) string {
	if len(opts.Palette) == 0 {
		opts.Palette = palette.Default()
	}
	buf := cellbuf.New(w, h, KeyBG)
	Draw(buf, Viewport(s, w, h, opts), s, opts)
	return buf.Render(Styles(opts.Palette, opts.Background))
}
