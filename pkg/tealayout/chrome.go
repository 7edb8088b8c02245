package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// BarLayer renders a one-line bar such as a toolbar or footer across r.
func BarLayer(content string, r Region, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(r.Rect.Dx()).MaxHeight(max(r.Rect.Dy(), 1)).Render(content)
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(1).ID(r.Name)
}

// TextLayer places pre-rendered content at the top-left of r, clipped to
// its size.
func TextLayer(content string, r Region, z int) *lipgloss.Layer {
	clipped := lipgloss.NewStyle().
		MaxWidth(r.Rect.Dx()).
		MaxHeight(r.Rect.Dy()).
		Render(content)
	return lipgloss.NewLayer(clipped).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(r.Name + "-text")
}

// VerticalSeparator draws a column of │ characters.
func VerticalSeparator(x, y, height int, style lipgloss.Style) *lipgloss.Layer {
	lines := make([]string, max(height, 0))
	for i := range lines {
		lines[i] = "│"
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(x).Y(y).Z(1).ID("separator")
}

// ModalLayer renders content inside boxStyle and centers it on the
// terminal above every other layer.
func ModalLayer(content string, termW, termH int, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	cx := max((termW-lipgloss.Width(rendered))/2, 0)
	cy := max((termH-lipgloss.Height(rendered))/2, 0)
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID("modal")
}

// FillLayer paints r with spaces in style. Used as a background below
// content layers.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w, h := r.Rect.Dx(), r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}
