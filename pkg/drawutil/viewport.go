package drawutil

import (
	"image"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// CellAspect is the height of a terminal cell divided by its width.
const CellAspect = 2.0

// Viewport maps world coordinates onto a W×H grid of cells. Center lands
// in the middle of the grid and Scale is cells per world unit along X;
// rows are squeezed by Aspect so shapes keep their proportions.
type Viewport struct {
	W, H   int
	Center r2.Vec
	Scale  float64
	Aspect float64
}

// Fit returns a viewport that shows box inside a w×h grid, leaving margin
// cells free on every side. A box with no extent is shown at scale 1.
func Fit(box r2.Box, w, h, margin int) Viewport {
	vp := Viewport{
		W:      w,
		H:      h,
		Center: r2.Scale(0.5, r2.Add(box.Min, box.Max)),
		Scale:  1,
		Aspect: CellAspect,
	}
	size := r2.Sub(box.Max, box.Min)
	availW := float64(max(w-2*margin, 1))
	availH := float64(max(h-2*margin, 1))

	scale := math.Inf(1)
	if size.X > 0 {
		scale = availW / size.X
	}
	if size.Y > 0 {
		scale = math.Min(scale, availH*vp.Aspect/size.Y)
	}
	if !math.IsInf(scale, 1) {
		vp.Scale = scale
	}
	return vp
}

// maxCell bounds the coordinates ToCell returns.
const maxCell = 1 << 30

// ToCell converts a world point to cell coordinates. The result may lie
// outside the grid but stays within ±maxCell.
func (v Viewport) ToCell(p r2.Vec) image.Point {
	aspect := v.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	x := float64(v.W)/2 + (p.X-v.Center.X)*v.Scale
	y := float64(v.H)/2 + (p.Y-v.Center.Y)*v.Scale/aspect
	return image.Pt(cell(x), cell(y))
}

func cell(f float64) int {
	return int(math.Floor(math.Max(-maxCell, math.Min(f, maxCell))))
}

// Zoom returns a copy scaled by f around the same center.
func (v Viewport) Zoom(f float64) Viewport {
	v.Scale *= f
	return v
}
