// Package turtle turns a sequence of walk steps into positioned line
// segments. A cursor starts at an origin and advances by each step's delta,
// so the segments chain end to end.
package turtle

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/wesen/rigidwalk/pkg/rigidwalk"
)

// Segment is one traced step: the step itself, its position in the walk and
// the two points it connects.
type Segment struct {
	Index    int
	Step     rigidwalk.Step
	From, To r2.Vec
}

// Color picks the palette slot for the segment out of n colors.
func (s Segment) Color(n int) int {
	if n <= 0 {
		return 0
	}
	return s.Index % n
}

// Trace walks steps from origin. Each step moves the cursor by
// (d·sin(angle), d·cos(angle)).
func Trace(steps iter.Seq[rigidwalk.Step], origin r2.Vec) []Segment {
	var segs []Segment
	cur := origin
	i := 0
	for st := range steps {
		dx, dy := st.Delta()
		next := r2.Add(cur, r2.Vec{X: dx, Y: dy})
		segs = append(segs, Segment{Index: i, Step: st, From: cur, To: next})
		cur = next
		i++
	}
	return segs
}

// End returns the cursor position after the last segment, or origin if
// there are none.
func End(segs []Segment, origin r2.Vec) r2.Vec {
	if len(segs) == 0 {
		return origin
	}
	return segs[len(segs)-1].To
}

// Bounds returns the smallest box containing every segment endpoint. The
// zero Box is returned for an empty slice.
func Bounds(segs []Segment) r2.Box {
	if len(segs) == 0 {
		return r2.Box{}
	}
	b := r2.Box{Min: segs[0].From, Max: segs[0].From}
	for _, s := range segs {
		b = Extend(b, s.From)
		b = Extend(b, s.To)
	}
	return b
}

// Extend grows b to include p.
func Extend(b r2.Box, p r2.Vec) r2.Box {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
	return b
}

// Union returns the box covering both a and b.
func Union(a, b r2.Box) r2.Box {
	return Extend(Extend(a, b.Min), b.Max)
}

// Line is a straight reference line.
type Line struct {
	From, To r2.Vec
}

// Guides returns the ideal straight line of a walk followed by the two
// lines running parallel to it at distance offset on either side. A walk
// never leaves the band between the two offset lines.
func Guides(angle, displacement, offset float64, origin r2.Vec) (ideal Line, left, right Line) {
	sin, cos := math.Sincos(angle)
	dir := r2.Vec{X: sin, Y: cos}
	normal := r2.Vec{X: cos, Y: -sin}

	end := r2.Add(origin, r2.Scale(displacement, dir))
	shift := r2.Scale(offset, normal)

	ideal = Line{From: origin, To: end}
	left = Line{From: r2.Sub(origin, shift), To: r2.Sub(end, shift)}
	right = Line{From: r2.Add(origin, shift), To: r2.Add(end, shift)}
	return ideal, left, right
}

// Deviation returns the perpendicular distance of p from the infinite line
// through origin along angle.
func Deviation(p, origin r2.Vec, angle float64) float64 {
	sin, cos := math.Sincos(angle)
	d := r2.Sub(p, origin)
	return math.Abs(d.X*cos - d.Y*sin)
}
