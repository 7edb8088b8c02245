// Package cellbuf is a 2D grid of styled runes that terminal walk renderers
// draw into before turning it into a Lipgloss string.
//
// Each cell holds a rune and a StyleKey. The buffer knows nothing about
// colors: Render takes a map[StyleKey]lipgloss.Style supplied by the caller.
//
// All runes are assumed to be single-width.
package cellbuf

import "strings"

// StyleKey identifies a visual style. The caller defines the mapping
// from StyleKey to lipgloss.Style at render time.
type StyleKey int

// Cell is a single character in the buffer with an associated style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a 2D grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// New creates a w×h buffer of spaces in style bg. Negative sizes are
// treated as zero.
func New(w, h int, bg StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
	}
	b.Fill(bg)
	return b
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes ch at (x, y). Writes outside the buffer are dropped.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetUnder writes ch at (x, y) only if the cell is still blank. Background
// layers such as guides and grids use it so they never cover walk legs
// drawn earlier.
func (b *Buffer) SetUnder(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) && b.Cells[y][x].Ch == ' ' {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes s starting at (x, y), one cell per rune.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		b.Set(x+i, y, ch, style)
		i++
	}
}

// Fill resets every cell to a space with the given style.
func (b *Buffer) Fill(style StyleKey) {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
}

// Count returns how many cells carry style and are not blank.
func (b *Buffer) Count(style StyleKey) int {
	n := 0
	for _, row := range b.Cells {
		for _, c := range row {
			if c.Style == style && c.Ch != ' ' {
				n++
			}
		}
	}
	return n
}

// String returns the buffer's runes without styling, rows joined by "\n".
func (b *Buffer) String() string {
	lines := make([]string, b.H)
	for y, row := range b.Cells {
		rs := make([]rune, len(row))
		for x, c := range row {
			rs[x] = c.Ch
		}
		lines[y] = string(rs)
	}
	return strings.Join(lines, "\n")
}
