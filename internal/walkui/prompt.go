package walkui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/rigidwalk/pkg/rigidwalk"
	"github.com/wesen/rigidwalk/pkg/tealayout"
)

func parseDegrees(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("angle %q: not a number", s)
	}
	return v, nil
}

// openPrompt shows the angle modal prefilled with the current angle.
func (m Model) openPrompt() (tea.Model, tea.Cmd) {
	m.PromptOpen = true
	m.Prompt = textinput.New()
	m.Prompt.Prompt = "° "
	m.Prompt.Placeholder = "degrees"
	m.Prompt.CharLimit = 16
	m.Prompt.Validate = func(s string) error {
		if s == "" || s == "-" {
			return nil
		}
		_, err := parseDegrees(s)
		return err
	}
	m.Prompt.SetValue(strconv.FormatFloat(math.Round(rigidwalk.Degrees(m.Params.Angle)*100)/100, 'f', -1, 64))
	cmd := m.Prompt.Focus()
	return m, cmd
}

// handlePromptKeys processes keys while the angle modal is open.
func (m Model) handlePromptKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.PromptOpen = false
		m.Prompt.Blur()
		return m, nil

	case "enter":
		m.PromptOpen = false
		m.Prompt.Blur()
		deg, err := parseDegrees(m.Prompt.Value())
		if err != nil {
			m.Err = err
			return m, nil
		}
		m.Params.Angle = rigidwalk.Radians(rigidwalk.NormalizeDegrees(deg))
		m.rebuild()
		return m, nil

	default:
		var cmd tea.Cmd
		m.Prompt, cmd = m.Prompt.Update(msg)
		return m, cmd
	}
}

// promptLayer renders the angle modal centered on the screen.
func promptLayer(m Model) *lipgloss.Layer {
	lines := []string{
		modalTitleStyle.Render("ANGLE"),
		"",
		m.Prompt.View(),
		"",
		modalHintStyle.Render("[enter] apply  [esc] cancel"),
	}
	return tealayout.ModalLayer(strings.Join(lines, "\n"), m.Width, m.Height, modalBoxStyle)
}
