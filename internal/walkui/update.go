package walkui

import (
	"math"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/rigidwalk/internal/config"
)

// tickMsg advances auto-rotation.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(autoInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tickMsg:
		if !m.AutoRotate {
			return m, nil
		}
		m.rotate(autoStep)
		return m, tick()

	case tea.KeyPressMsg:
		if m.PromptOpen {
			return m.handlePromptKeys(msg)
		}
		return m.handleKeys(msg)
	}
	return m, nil
}

// handleKeys processes keyboard input on the canvas.
func (m Model) handleKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "x":
		return m, tea.Quit

	case "w":
		m.Params.Displacement += displacementStep
	case "s":
		m.Params.Displacement = max(m.Params.Displacement-displacementStep, 0)
	case "a":
		m.Params.Offset = config.ClampOffset(m.Params.Offset - offsetStep)
	case "d":
		m.Params.Offset += offsetStep
	case "q":
		m.AngleCount = max(m.AngleCount-1, 1)
	case "e":
		m.AngleCount++

	case "z":
		m.ShowGuides = !m.ShowGuides
		return m, nil
	case "g":
		m.ShowGrid = !m.ShowGrid
		return m, nil
	case "n":
		m.Params.Directions = m.Params.Directions.Cycle()
	case "p":
		m.Params.StartPrimary = !m.Params.StartPrimary
	case "m":
		if m.Mode == ModeSingle {
			m.Mode = ModeSnowflake
		} else {
			m.Mode = ModeSingle
		}

	case "left":
		m.rotate(-rotateStep)
		return m, nil
	case "right":
		m.rotate(rotateStep)
		return m, nil

	case "+", "=":
		m.Zoom = min(m.Zoom*zoomStep, maxZoom)
		return m, nil
	case "-":
		m.Zoom = max(m.Zoom/zoomStep, minZoom)
		return m, nil
	case "0":
		m.Zoom = 1
		return m, nil

	case "space":
		m.AutoRotate = !m.AutoRotate
		if m.AutoRotate {
			return m, tick()
		}
		return m, nil

	case "/":
		return m.openPrompt()

	default:
		return m, nil
	}

	m.rebuild()
	return m, nil
}

// rotate turns the single-walk angle by delta, keeping it in [0, 2π).
func (m *Model) rotate(delta float64) {
	a := math.Mod(m.Params.Angle+delta, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	m.Params.Angle = a
	m.rebuild()
}
