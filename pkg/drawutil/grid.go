package drawutil

import "github.com/wesen/rigidwalk/pkg/cellbuf"

// DrawGrid places '+' marks under existing content wherever the cell's
// offset from (originX, originY) is a multiple of the spacing.
func DrawGrid(buf *cellbuf.Buffer, originX, originY, spacingX, spacingY int, style cellbuf.StyleKey) {
	for r := range buf.H {
		if mod(r-originY, spacingY) != 0 {
			continue
		}
		for c := range buf.W {
			if mod(c-originX, spacingX) == 0 {
				buf.SetUnder(c, r, '+', style)
			}
		}
	}
}

// mod returns a non-negative modulus. A zero m yields 0.
func mod(a, m int) int {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
