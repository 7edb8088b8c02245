// Package scene groups the walks a renderer draws together: either one
// walk or a snowflake of walks fanning out from a shared origin.
package scene

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/wesen/rigidwalk/internal/config"
	"github.com/wesen/rigidwalk/pkg/rigidwalk"
	"github.com/wesen/rigidwalk/pkg/turtle"
)

// Entry is one planned walk and the side it starts on.
type Entry struct {
	Walk         rigidwalk.Walk
	StartPrimary bool
}

// Scene is an ordered list of walks sharing an origin.
type Scene struct {
	Entries []Entry
}

// Params is what a scene is built from.
type Params struct {
	Directions   rigidwalk.Directions
	Angle        float64 // radians, single walk only
	Displacement float64
	Offset       float64
	StartPrimary bool
}

// FromConfig reads Params out of a loaded config.
func FromConfig(c *config.Config) Params {
	return Params{
		Directions:   c.GetDirections(),
		Angle:        c.GetAngle(),
		Displacement: c.GetDisplacement(),
		Offset:       c.GetOffset(),
		StartPrimary: c.GetStartPrimary(),
	}
}

// Single plans one walk along p.Angle.
func Single(p Params) (*Scene, error) {
	w, err := rigidwalk.ForDirections(p.Directions, p.Angle, p.Displacement, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("walk at %.2f°: %w", rigidwalk.Degrees(p.Angle), err)
	}
	return &Scene{Entries: []Entry{{Walk: w, StartPrimary: p.StartPrimary}}}, nil
}

// Snowflake plans n walks at evenly spaced angles k·2π/n, starting at 0.
// p.Angle is ignored.
func Snowflake(p Params, n int) (*Scene, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: snowflake needs at least one spoke, got %d", rigidwalk.ErrInvalidParameter, n)
	}
	s := &Scene{Entries: make([]Entry, 0, n)}
	step := 2 * math.Pi / float64(n)
	for k := range n {
		angle := float64(k) * step
		w, err := rigidwalk.ForDirections(p.Directions, angle, p.Displacement, p.Offset)
		if err != nil {
			return nil, fmt.Errorf("spoke %d at %.2f°: %w", k, rigidwalk.Degrees(angle), err)
		}
		s.Entries = append(s.Entries, Entry{Walk: w, StartPrimary: p.StartPrimary})
	}
	return s, nil
}

// Add appends a walk.
func (s *Scene) Add(w rigidwalk.Walk, startPrimary bool) {
	s.Entries = append(s.Entries, Entry{Walk: w, StartPrimary: startPrimary})
}

// Len returns the number of walks.
func (s *Scene) Len() int { return len(s.Entries) }

// Segments traces every walk from origin. The result is indexed like
// Entries.
func (s *Scene) Segments(origin r2.Vec) [][]turtle.Segment {
	out := make([][]turtle.Segment, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = turtle.Trace(e.Walk.Steps(e.StartPrimary), origin)
	}
	return out
}

// Guides returns the ideal line and both offset lines for every walk.
func (s *Scene) Guides(origin r2.Vec) []turtle.Line {
	lines := make([]turtle.Line, 0, 3*len(s.Entries))
	for _, e := range s.Entries {
		ideal, left, right := turtle.Guides(e.Walk.Angle(), e.Walk.Displacement(), e.Walk.Offset(), origin)
		lines = append(lines, ideal, left, right)
	}
	return lines
}

// Bounds covers every traced segment and every guide line. An empty scene
// yields a box around origin.
func (s *Scene) Bounds(origin r2.Vec) r2.Box {
	b := r2.Box{Min: origin, Max: origin}
	for _, segs := range s.Segments(origin) {
		for _, sg := range segs {
			b = turtle.Extend(turtle.Extend(b, sg.From), sg.To)
		}
	}
	for _, l := range s.Guides(origin) {
		b = turtle.Extend(turtle.Extend(b, l.From), l.To)
	}
	return b
}

// Stats summarises a scene for status lines.
type Stats struct {
	Walks      int
	Steps      int
	Degenerate int
	Total      float64
}

// Stats counts steps and path length across all walks.
func (s *Scene) Stats() Stats {
	st := Stats{Walks: len(s.Entries)}
	for _, e := range s.Entries {
		st.Steps += e.Walk.StepCount()
		st.Total += e.Walk.TotalDistance()
		if e.Walk.Degenerate() {
			st.Degenerate++
		}
	}
	return st
}
