// Package canvas rasterises a scene with gogpu/gg. Guides are drawn dashed
// under the walk; each leg is stroked in its palette colour.
package canvas

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/wesen/rigidwalk/internal/config"
	"github.com/wesen/rigidwalk/internal/scene"
	"github.com/wesen/rigidwalk/pkg/palette"
)

// guideDim is how far guide lines are blended towards the background.
const guideDim = 0.6

// Options controls how a scene is rasterised.
type Options struct {
	Width, Height int
	Margin        float64
	LineWidth     float64
	ShowGuides    bool
	Palette       palette.Palette
	Background    colorful.Color
	Log           *slog.Logger
}

// OptionsFromConfig fills Options from a loaded config with a 20px margin.
func OptionsFromConfig(c *config.Config) Options {
	w, h := c.GetSize()
	return Options{
		Width:      w,
		Height:     h,
		Margin:     20,
		LineWidth:  c.GetLineWidth(),
		ShowGuides: c.GetShowGuides(),
		Palette:    c.GetPalette(),
		Background: c.GetBackground(),
	}
}

// transform maps world coordinates to pixels. Like the terminal viewer,
// +y points down the image.
type transform struct {
	center r2.Vec
	scale  float64
	w, h   float64
}

func fit(b r2.Box, w, h int, margin float64) transform {
	t := transform{
		center: r2.Scale(0.5, r2.Add(b.Min, b.Max)),
		scale:  1,
		w:      float64(w),
		h:      float64(h),
	}
	size := r2.Sub(b.Max, b.Min)
	availW := max(t.w-2*margin, 1)
	availH := max(t.h-2*margin, 1)
	switch {
	case size.X > 0 && size.Y > 0:
		t.scale = math.Min(availW/size.X, availH/size.Y)
	case size.X > 0:
		t.scale = availW / size.X
	case size.Y > 0:
		t.scale = availH / size.Y
	}
	return t
}

func (t transform) apply(p r2.Vec) (x, y float64) {
	d := r2.Sub(p, t.center)
	return t.w/2 + d.X*t.scale, t.h/2 + d.Y*t.scale
}

// Render draws s onto a new context. The caller closes the context.
func Render(s *scene.Scene, opts Options) (*gg.Context, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("canvas: invalid size %dx%d", opts.Width, opts.Height)
	}
	if len(opts.Palette) == 0 {
		opts.Palette = palette.Default()
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = config.DefaultLineWidth
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var origin r2.Vec
	tf := fit(s.Bounds(origin), opts.Width, opts.Height, opts.Margin)
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.ClearWithColor(gg.FromColor(opts.Background))
	dc.SetLineCap(gg.LineCapRound)

	if opts.ShowGuides {
		dc.SetLineWidth(1)
		dc.SetDash(6, 4)
		dc.SetColor(opts.Palette.Dim(0, opts.Background, guideDim))
		for _, l := range s.Guides(origin) {
			x1, y1 := tf.apply(l.From)
			x2, y2 := tf.apply(l.To)
			dc.MoveTo(x1, y1)
			dc.LineTo(x2, y2)
		}
		if err := dc.Stroke(); err != nil {
			_ = dc.Close()
			return nil, fmt.Errorf("canvas: guides: %w", err)
		}
		dc.ClearDash()
	}

	dc.SetLineWidth(opts.LineWidth)
	count := 0
	for _, segs := range s.Segments(origin) {
		for _, sg := range segs {
			x1, y1 := tf.apply(sg.From)
			x2, y2 := tf.apply(sg.To)
			dc.SetColor(opts.Palette.At(sg.Index))
			dc.MoveTo(x1, y1)
			dc.LineTo(x2, y2)
			if err := dc.Stroke(); err != nil {
				_ = dc.Close()
				return nil, fmt.Errorf("canvas: segment %d: %w", sg.Index, err)
			}
			count++
		}
	}
	log.Debug("canvas: rendered",
		slog.Int("walks", s.Len()),
		slog.Int("segments", count),
		slog.Float64("scale", tf.scale),
	)
	return dc, nil
}

// WritePNG renders s and encodes it as PNG to w.
func WritePNG(w io.Writer, s *scene.Scene, opts Options) error {
	dc, err := Render(s, opts)
	if err != nil {
		return err
	}
	defer func() { _ = dc.Close() }()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("canvas: encode: %w", err)
	}
	return nil
}
