package walkui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wesen/rigidwalk/pkg/rigidwalk"
)

const panelWidth = 30

type detail struct{ key, value string }

func deg(rad float64) string { return fmt.Sprintf("%.2f°", rigidwalk.Degrees(rad)) }

// details lists the plan of the current scene. A single walk shows its
// planner fields; a snowflake shows totals.
func details(m Model) []detail {
	out := []detail{
		{"mode", m.Mode.String()},
		{"directions", m.Params.Directions.String()},
		{"displacement", fmt.Sprintf("%.1f", m.Params.Displacement)},
		{"offset", fmt.Sprintf("%.1f", m.Params.Offset)},
		{"start", startSide(m.Params.StartPrimary)},
	}
	if m.Mode == ModeSnowflake || m.Scene.Len() != 1 {
		st := m.Scene.Stats()
		return append(out,
			detail{"spokes", fmt.Sprint(m.AngleCount)},
			detail{"walks", fmt.Sprint(st.Walks)},
			detail{"straight", fmt.Sprint(st.Degenerate)},
			detail{"steps", fmt.Sprint(st.Steps)},
			detail{"path", fmt.Sprintf("%.2f", st.Total)},
		)
	}

	w := m.Scene.Entries[0].Walk
	out = append(out, detail{"angle", deg(w.Angle())})
	if w.Degenerate() {
		return append(out,
			detail{"straight", deg(w.PrimaryAngle())},
			detail{"path", fmt.Sprintf("%.2f", w.TotalDistance())},
		)
	}
	return append(out,
		detail{"primary", deg(w.PrimaryAngle())},
		detail{"secondary", deg(w.SecondaryAngle())},
		detail{"legs", fmt.Sprintf("%.2f / %.2f", w.PrimaryLegDistance(), w.SecondaryLegDistance())},
		detail{"pair", fmt.Sprintf("%.2f", w.PairDisplacement())},
		detail{"repeat", fmt.Sprint(w.RepeatCount())},
		detail{"remaining", fmt.Sprintf("%.2f", w.Remaining())},
		detail{"last", fmt.Sprintf("%.2f / %.2f", w.LastPrimaryDistance(), w.LastSecondaryDistance())},
		detail{"steps", fmt.Sprint(w.StepCount())},
		detail{"path", fmt.Sprintf("%.2f", w.TotalDistance())},
	)
}

func startSide(primary bool) string {
	if primary {
		return "primary"
	}
	return "secondary"
}

var helpLines = []string{
	"w/s  displacement",
	"a/d  offset",
	"q/e  spokes",
	"←/→  rotate   / type",
	"spc  auto-rotate",
	"n    4/8 way  p side",
	"m    single/snowflake",
	"z    guides   g grid",
	"+/-  zoom     x quit",
}

// padLine right-pads s with the panel background to width.
func padLine(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += panelStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

// panelContent renders the plan details followed by the key help, height
// lines of width cells.
func panelContent(m Model, width, height int) string {
	lines := []string{panelTitleStyle.Render(" PLAN")}
	for _, d := range details(m) {
		lines = append(lines,
			panelKeyStyle.Render(fmt.Sprintf(" %-12s", d.key))+panelValueStyle.Render(d.value))
	}
	lines = append(lines, "", panelTitleStyle.Render(" KEYS"))
	for _, h := range helpLines {
		lines = append(lines, panelKeyStyle.Render(" "+h))
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:max(height, 0)]
	for i, l := range lines {
		lines[i] = padLine(l, width)
	}
	return strings.Join(lines, "\n")
}
