// Package tealayout splits a terminal into named rectangles and builds the
// lipgloss layers that decorate them (toolbar, footer, panel separators,
// modals).
package tealayout

import "image"

// Region is a named rectangular area of the terminal.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Layout holds the computed regions for a given terminal size.
type Layout struct {
	TermW, TermH int
	Regions      map[string]Region
}

// Get returns the region with the given name, or a zero Region.
func (l Layout) Get(name string) Region {
	return l.Regions[name]
}

// LayoutBuilder carves fixed strips off the edges of the terminal and
// hands whatever is left to Remaining.
type LayoutBuilder struct {
	termW, termH int
	free         image.Rectangle
	regions      []Region
}

// NewLayoutBuilder creates a builder for a termW×termH terminal.
func NewLayoutBuilder(termW, termH int) *LayoutBuilder {
	return &LayoutBuilder{
		termW: termW,
		termH: termH,
		free:  image.Rect(0, 0, max(termW, 0), max(termH, 0)),
	}
}

func (b *LayoutBuilder) add(name string, r image.Rectangle) *LayoutBuilder {
	b.regions = append(b.regions, Region{Name: name, Rect: r})
	return b
}

// TopFixed reserves height rows across the full free width.
func (b *LayoutBuilder) TopFixed(name string, height int) *LayoutBuilder {
	f := b.free
	r := image.Rect(f.Min.X, f.Min.Y, f.Max.X, f.Min.Y+height)
	b.free.Min.Y += height
	return b.add(name, r)
}

// BottomFixed reserves height rows at the bottom of the free area.
func (b *LayoutBuilder) BottomFixed(name string, height int) *LayoutBuilder {
	f := b.free
	r := image.Rect(f.Min.X, f.Max.Y-height, f.Max.X, f.Max.Y)
	b.free.Max.Y -= height
	return b.add(name, r)
}

// RightFixed reserves width columns on the right, spanning the rows left
// between earlier top and bottom strips.
func (b *LayoutBuilder) RightFixed(name string, width int) *LayoutBuilder {
	f := b.free
	r := image.Rect(f.Max.X-width, f.Min.Y, f.Max.X, f.Max.Y)
	b.free.Max.X -= width
	return b.add(name, r)
}

// LeftFixed reserves width columns on the left.
func (b *LayoutBuilder) LeftFixed(name string, width int) *LayoutBuilder {
	f := b.free
	r := image.Rect(f.Min.X, f.Min.Y, f.Min.X+width, f.Max.Y)
	b.free.Min.X += width
	return b.add(name, r)
}

// Remaining assigns whatever is left after the fixed strips.
func (b *LayoutBuilder) Remaining(name string) *LayoutBuilder {
	return b.add(name, b.free)
}

// Build computes the final Layout. Regions squeezed to nothing come back
// as empty rectangles.
func (b *LayoutBuilder) Build() Layout {
	l := Layout{
		TermW:   b.termW,
		TermH:   b.termH,
		Regions: make(map[string]Region, len(b.regions)),
	}
	for _, r := range b.regions {
		if r.Rect.Min.X >= r.Rect.Max.X || r.Rect.Min.Y >= r.Rect.Max.Y {
			r.Rect = image.Rectangle{}
		}
		l.Regions[r.Name] = r
	}
	return l
}
