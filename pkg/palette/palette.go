// Package palette holds the cycling segment colors shared by every walk
// renderer.
package palette

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultBackground is the dark slate the viewers draw on.
const DefaultBackground = "#1e1e28"

// Palette is an ordered list of colors. Segment i uses color i mod len.
type Palette []colorful.Color

var defaultHex = []string{"#e62937", "#00e430", "#0079f1"}

// Default returns red, green and blue.
func Default() Palette {
	p, err := Parse(defaultHex)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse builds a palette from "#rrggbb" strings.
func Parse(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, errors.New("palette: no colors")
	}
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette: color %q: %w", h, err)
		}
		p = append(p, c)
	}
	return p, nil
}

// At returns the color for index i, cycling through the palette. Negative
// indices wrap as well.
func (p Palette) At(i int) colorful.Color {
	if len(p) == 0 {
		return colorful.Color{}
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// Hex returns At(i) as "#rrggbb".
func (p Palette) Hex(i int) string {
	return p.At(i).Clamped().Hex()
}

// Blend mixes c toward bg by t in Lab space. t=0 is c, t=1 is bg.
func Blend(c, bg colorful.Color, t float64) colorful.Color {
	return c.BlendLab(bg, t).Clamped()
}

// Dim returns color i faded toward bg by t. Guide lines use it.
func (p Palette) Dim(i int, bg colorful.Color, t float64) colorful.Color {
	return Blend(p.At(i), bg, t)
}

// MustHex parses a single color and panics on error. Intended for
// package-level constants.
func MustHex(h string) colorful.Color {
	c, err := colorful.Hex(h)
	if err != nil {
		panic(err)
	}
	return c
}
