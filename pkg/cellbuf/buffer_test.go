package cellbuf

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

const (
	keyBG StyleKey = iota
	keyLeg
	keyGuide
)

func testStyles() map[StyleKey]lipgloss.Style {
	return map[StyleKey]lipgloss.Style{
		keyBG:    lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		keyLeg:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e62937")),
		keyGuide: lipgloss.NewStyle().Foreground(lipgloss.Color("#4b4b4b")),
	}
}

// ── Construction ──

func TestNew(t *testing.T) {
	b := New(10, 5, keyBG)
	if b.W != 10 || b.H != 5 {
		t.Fatalf("expected 10x5, got %dx%d", b.W, b.H)
	}
	for y := range 5 {
		if len(b.Cells[y]) != 10 {
			t.Fatalf("row %d: expected 10 cols, got %d", y, len(b.Cells[y]))
		}
		for x := range 10 {
			if c := b.Cells[y][x]; c.Ch != ' ' || c.Style != keyBG {
				t.Fatalf("cell (%d,%d): expected space/keyBG, got %q/%d", x, y, c.Ch, c.Style)
			}
		}
	}
}

func TestNewNegativeSize(t *testing.T) {
	b := New(-5, -3, keyBG)
	if b.W != 0 || b.H != 0 {
		t.Fatalf("expected 0x0 for negative sizes, got %dx%d", b.W, b.H)
	}
	if got := b.Render(testStyles()); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}

// ── Writes ──

func TestInBounds(t *testing.T) {
	b := New(10, 5, keyBG)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 4, true},
		{-1, 0, false},
		{0, -1, false},
		{10, 0, false},
		{0, 5, false},
	}
	for _, tc := range tests {
		if got := b.InBounds(tc.x, tc.y); got != tc.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestSetOutOfBoundsIsDropped(t *testing.T) {
	b := New(4, 3, keyBG)
	b.Set(-1, 0, 'X', keyLeg)
	b.Set(4, 0, 'X', keyLeg)
	b.Set(0, 3, 'X', keyLeg)
	if n := b.Count(keyLeg); n != 0 {
		t.Fatalf("out-of-bounds Set wrote %d cells", n)
	}
}

func TestSetUnderKeepsExistingCells(t *testing.T) {
	b := New(5, 1, keyBG)
	b.Set(2, 0, '/', keyLeg)
	for x := range 5 {
		b.SetUnder(x, 0, '·', keyGuide)
	}
	if c := b.Cells[0][2]; c.Ch != '/' || c.Style != keyLeg {
		t.Errorf("SetUnder overwrote a leg cell: %q/%d", c.Ch, c.Style)
	}
	if n := b.Count(keyGuide); n != 4 {
		t.Errorf("expected 4 guide cells, got %d", n)
	}
}

func TestSetStringCountsRunes(t *testing.T) {
	b := New(6, 1, keyBG)
	b.SetString(1, 0, "45°x", keyLeg)
	if got := b.String(); got != " 45°x " {
		t.Errorf("expected %q, got %q", " 45°x ", got)
	}
}

func TestFill(t *testing.T) {
	b := New(5, 3, keyBG)
	b.Set(2, 1, 'X', keyLeg)
	b.Fill(keyGuide)
	if b.Count(keyLeg) != 0 {
		t.Error("Fill left a leg cell behind")
	}
	if b.Cells[1][2].Style != keyGuide {
		t.Errorf("Fill: expected keyGuide, got %d", b.Cells[1][2].Style)
	}
}

func TestString(t *testing.T) {
	b := New(3, 2, keyBG)
	b.Set(0, 0, '│', keyLeg)
	b.Set(2, 1, '─', keyLeg)
	if got, want := b.String(), "│  \n  ─"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

// ── Render ──

func TestRenderLineCount(t *testing.T) {
	result := New(20, 5, keyBG).Render(testStyles())
	if lines := strings.Split(result, "\n"); len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
}

func TestRenderContent(t *testing.T) {
	b := New(10, 1, keyBG)
	b.SetString(2, 0, "Hi", keyLeg)
	if result := b.Render(testStyles()); !strings.Contains(result, "Hi") {
		t.Fatalf("rendered output doesn't contain 'Hi': %q", result)
	}
}

func TestRenderMergesRuns(t *testing.T) {
	styles := testStyles()
	uniform := New(50, 1, keyBG).Render(styles)

	alt := New(50, 1, keyBG)
	for x := range 50 {
		if x%2 == 0 {
			alt.Set(x, 0, '.', keyLeg)
		} else {
			alt.Set(x, 0, '.', keyGuide)
		}
	}
	alternating := alt.Render(styles)

	if len(uniform) >= len(alternating) {
		t.Errorf("uniform render (%d bytes) should be shorter than alternating (%d bytes)",
			len(uniform), len(alternating))
	}
}

func TestRenderMissingStyle(t *testing.T) {
	b := New(5, 1, StyleKey(99))
	b.SetString(0, 0, "plain", StyleKey(99))
	if result := b.Render(testStyles()); result != "plain" {
		t.Fatalf("missing style should render plain text, got %q", result)
	}
}

func BenchmarkRenderWalk(b *testing.B) {
	styles := testStyles()
	buf := New(160, 48, keyBG)
	for y := range 48 {
		for x := range 160 {
			if x%6 == 0 && y%3 == 0 {
				buf.Set(x, y, '·', keyGuide)
			}
		}
		buf.Set(y*3, y, '\\', keyLeg)
	}

	b.ResetTimer()
	for range b.N {
		_ = buf.Render(styles)
	}
}
