// Package walkui is the interactive terminal viewer: a bubbletea model that
// plans one walk (or a snowflake of walks) from the current parameters and
// draws it with cellbuf and lipgloss.
package walkui

import (
	"log/slog"
	"math"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/wesen/rigidwalk/internal/config"
	"github.com/wesen/rigidwalk/internal/scene"
	"github.com/wesen/rigidwalk/pkg/palette"
)

// Mode selects what the canvas shows.
type Mode int

const (
	ModeSingle Mode = iota
	ModeSnowflake
)

func (m Mode) String() string {
	if m == ModeSnowflake {
		return "snowflake"
	}
	return "single"
}

// Tuning for key presses and auto-rotation.
const (
	displacementStep = 5.0
	offsetStep       = 0.5
	rotateStep       = math.Pi / 36
	autoStep         = math.Pi / 500
	autoInterval     = 30 * time.Millisecond
	zoomStep         = 1.25
	minZoom          = 1.0 / 64
	maxZoom          = 64.0
)

// Model is the viewer state.
type Model struct {
	Width, Height int

	Params     scene.Params
	AngleCount int
	Mode       Mode
	ShowGuides bool
	ShowGrid   bool
	AutoRotate bool
	Zoom       float64

	Palette    palette.Palette
	Background colorful.Color

	Scene *scene.Scene
	Err   error

	PromptOpen bool
	Prompt     textinput.Model

	Log *slog.Logger
}

// NewModel builds the initial state from c and plans the first scene.
func NewModel(c *config.Config) Model {
	m := Model{
		Params:     scene.FromConfig(c),
		AngleCount: c.GetAngleCount(),
		ShowGuides: c.GetShowGuides(),
		ShowGrid:   true,
		Zoom:       1,
		Palette:    c.GetPalette(),
		Background: c.GetBackground(),
		Scene:      &scene.Scene{},
		Log:        slog.New(slog.DiscardHandler),
	}
	m.rebuild()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// rebuild replans the scene. On failure the previous scene stays on screen
// and Err is shown in the footer.
func (m *Model) rebuild() {
	var (
		s   *scene.Scene
		err error
	)
	if m.Mode == ModeSnowflake {
		s, err = scene.Snowflake(m.Params, m.AngleCount)
	} else {
		s, err = scene.Single(m.Params)
	}
	if err != nil {
		m.Err = err
		m.Log.Warn("walkui: plan failed", slog.Any("error", err))
		return
	}
	m.Scene, m.Err = s, nil
	m.Log.Debug("walkui: planned",
		slog.String("mode", m.Mode.String()),
		slog.Int("walks", s.Len()),
		slog.Float64("displacement", m.Params.Displacement),
		slog.Float64("offset", m.Params.Offset),
	)
}
