package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the buffer into a styled string using styles. Cells
// whose key has no entry are written unstyled.
//
// Adjacent cells sharing a StyleKey form one run and are rendered with a
// single Style.Render call. Rows are joined with "\n"; an empty buffer
// renders as "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	lines := make([]string, b.H)
	run := make([]rune, 0, b.W)
	for y, row := range b.Cells {
		var sb strings.Builder
		runStyle := row[0].Style
		run = run[:0]

		flush := func() {
			if s, ok := styles[runStyle]; ok {
				sb.WriteString(s.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}

		for _, c := range row {
			if c.Style != runStyle {
				flush()
				runStyle = c.Style
			}
			run = append(run, c.Ch)
		}
		flush()
		lines[y] = sb.String()
	}

	return strings.Join(lines, "\n")
}
