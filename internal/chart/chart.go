// Package chart draws scenes as gonum plots: a square-aspect path view of
// every walk and a deviation profile showing how far each walk strays from
// its ideal line.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/wesen/rigidwalk/internal/scene"
	"github.com/wesen/rigidwalk/pkg/palette"
	"github.com/wesen/rigidwalk/pkg/turtle"
)

// Options controls plot styling.
type Options struct {
	Title      string
	Palette    palette.Palette
	ShowGuides bool
}

func (o Options) palette() palette.Palette {
	if len(o.Palette) == 0 {
		return palette.Default()
	}
	return o.Palette
}

var guideColor = color.Gray{Y: 0xa0}

// Path plots every walk of s from the origin. Both axes share one range so
// angles look right.
func Path(s *scene.Scene, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	var origin r2.Vec
	if opts.ShowGuides {
		for _, l := range s.Guides(origin) {
			line, err := segmentLine(l.From, l.To)
			if err != nil {
				return nil, fmt.Errorf("chart: guide: %w", err)
			}
			line.Color = guideColor
			line.Width = vg.Points(0.5)
			line.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
			p.Add(line)
		}
	}

	pal := opts.palette()
	for i, segs := range s.Segments(origin) {
		for _, sg := range segs {
			line, err := segmentLine(sg.From, sg.To)
			if err != nil {
				return nil, fmt.Errorf("chart: walk %d leg %d: %w", i, sg.Index, err)
			}
			line.Color = pal.At(sg.Index)
			line.Width = vg.Points(1.5)
			p.Add(line)
		}
	}

	square(p, s.Bounds(origin))
	return p, nil
}

func segmentLine(from, to r2.Vec) (*plotter.Line, error) {
	return plotter.NewLine(plotter.XYs{{X: from.X, Y: from.Y}, {X: to.X, Y: to.Y}})
}

// square widens the shorter axis of b so both axes cover the same span,
// with 5% padding.
func square(p *plot.Plot, b r2.Box) {
	size := r2.Sub(b.Max, b.Min)
	span := math.Max(size.X, size.Y)
	if span == 0 {
		span = 1
	}
	half := span * 0.55
	c := r2.Scale(0.5, r2.Add(b.Min, b.Max))
	p.X.Min, p.X.Max = c.X-half, c.X+half
	p.Y.Min, p.Y.Max = c.Y-half, c.Y+half
}

// Deviation plots, for every walk, the distance from the ideal line
// against the path length walked so far. Each walk's curve stays within
// ±offset.
func Deviation(s *scene.Scene, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "path length"
	p.Y.Label.Text = "deviation"
	p.Add(plotter.NewGrid())

	pal := opts.palette()
	var origin r2.Vec
	for i, segs := range s.Segments(origin) {
		angle := s.Entries[i].Walk.Angle()
		pts := DeviationProfile(segs, origin, angle)
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("chart: walk %d: %w", i, err)
		}
		line.Color = pal.At(i)
		p.Add(line)
	}
	return p, nil
}

// DeviationProfile returns (path length, deviation) at the origin and after
// every segment.
func DeviationProfile(segs []turtle.Segment, origin r2.Vec, angle float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(segs)+1)
	pts = append(pts, plotter.XY{})
	walked := 0.0
	for _, sg := range segs {
		walked += sg.Step.Distance
		pts = append(pts, plotter.XY{X: walked, Y: turtle.Deviation(sg.To, origin, angle)})
	}
	return pts
}

// Write renders p in format ("png", "svg", "pdf", ...) at the given size in
// points.
func Write(w io.Writer, p *plot.Plot, width, height float64, format string) error {
	wt, err := p.WriterTo(vg.Points(width), vg.Points(height), format)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart: write %s: %w", format, err)
	}
	return nil
}

// Save renders p to path; the extension picks the format.
func Save(p *plot.Plot, width, height float64, path string) error {
	if err := p.Save(vg.Points(width), vg.Points(height), path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}
	return nil
}
