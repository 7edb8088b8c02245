package walkui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

func c(hex string) color.Color { return lipgloss.Color(hex) }

var (
	colorBar   = c("#14141c")
	colorPanel = c("#24243a")
	colorText  = c("#d8d8e8")
	colorDim   = c("#6a6a88")
	colorTitle = c("#8ab4ff")
	colorWarn  = c("#ff8a5c")

	toolbarStyle = lipgloss.NewStyle().Background(colorBar).Foreground(colorTitle).Bold(true)
	footerStyle  = lipgloss.NewStyle().Background(colorBar).Foreground(colorDim)
	errorStyle   = lipgloss.NewStyle().Background(colorBar).Foreground(colorWarn).Bold(true)

	panelStyle      = lipgloss.NewStyle().Background(colorPanel)
	panelTitleStyle = panelStyle.Foreground(colorTitle).Bold(true)
	panelKeyStyle   = panelStyle.Foreground(colorDim)
	panelValueStyle = panelStyle.Foreground(colorText)
	separatorStyle  = lipgloss.NewStyle().Foreground(colorDim)

	modalBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTitle).
			Background(colorBar).
			Padding(1, 2).
			Width(32)
	modalTitleStyle = lipgloss.NewStyle().Foreground(colorTitle).Bold(true)
	modalHintStyle  = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
)
