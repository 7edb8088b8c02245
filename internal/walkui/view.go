package walkui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/rigidwalk/internal/sketch"
	"github.com/wesen/rigidwalk/pkg/tealayout"
)

// gridSpacing is the distance between grid marks in rows.
const gridSpacing = 4

// layout splits the screen into toolbar, footer, side panel and canvas.
func (m Model) layout() tealayout.Layout {
	return tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("panel", panelWidth).
		Remaining("canvas").
		Build()
}

func (m Model) sketchOptions() sketch.Options {
	opts := sketch.Options{
		Palette:    m.Palette,
		Background: m.Background,
		ShowGuides: m.ShowGuides,
		Zoom:       m.Zoom,
		Margin:     1,
	}
	if m.ShowGrid {
		opts.Grid = gridSpacing
	}
	return opts
}

func (m Model) toolbar() string {
	auto := ""
	if m.AutoRotate {
		auto = "  ⟳"
	}
	return fmt.Sprintf(" rigidwalk  │  %s  │  %s  │  %s x %.0f ± %.1f%s",
		m.Mode, m.Params.Directions, deg(m.Params.Angle), m.Params.Displacement, m.Params.Offset, auto)
}

func (m Model) footer() (string, lipgloss.Style) {
	if m.Err != nil {
		return " " + m.Err.Error(), errorStyle
	}
	st := m.Scene.Stats()
	return fmt.Sprintf(" walks %d  steps %d  path %.1f  zoom %.2fx", st.Walks, st.Steps, st.Total, m.Zoom), footerStyle
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	l := m.layout()
	canvasRegion := l.Get("canvas")
	panelRegion := l.Get("panel")

	ftContent, ftStyle := m.footer()
	opts := m.sketchOptions()
	cw, ch := canvasRegion.Rect.Dx(), canvasRegion.Rect.Dy()

	layers := []*lipgloss.Layer{
		tealayout.BarLayer(m.toolbar(), l.Get("toolbar"), toolbarStyle),
		tealayout.BarLayer(ftContent, l.Get("footer"), ftStyle),
		tealayout.TextLayer(sketch.Render(m.Scene, cw, ch, opts), canvasRegion, 0),
	}

	pr := panelRegion.Rect
	if pr.Dx() > 1 && pr.Dy() > 0 {
		layers = append(layers,
			tealayout.VerticalSeparator(pr.Min.X, pr.Min.Y, pr.Dy(), separatorStyle),
			lipgloss.NewLayer(panelContent(m, pr.Dx()-1, pr.Dy())).
				X(pr.Min.X+1).Y(pr.Min.Y).Z(1).ID("panel"),
		)
	}

	if m.PromptOpen {
		layers = append(layers, promptLayer(m))
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	return v
}
