package tealayout

import (
	"image"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

// viewerLayout is the split used by the walk viewer.
func viewerLayout(w, h int) Layout {
	return NewLayoutBuilder(w, h).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("panel", 30).
		Remaining("canvas").
		Build()
}

// ── Layout ──

func TestLayoutBasic(t *testing.T) {
	l := viewerLayout(80, 24)
	if l.TermW != 80 || l.TermH != 24 {
		t.Fatalf("term size: expected 80x24, got %dx%d", l.TermW, l.TermH)
	}

	tests := []struct {
		name string
		want image.Rectangle
	}{
		{"toolbar", image.Rect(0, 0, 80, 1)},
		{"footer", image.Rect(0, 23, 80, 24)},
		{"panel", image.Rect(50, 1, 80, 23)},
		{"canvas", image.Rect(0, 1, 50, 23)},
	}
	for _, tc := range tests {
		if got := l.Get(tc.name).Rect; got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestLayoutLeftFixed(t *testing.T) {
	l := NewLayoutBuilder(40, 10).
		LeftFixed("legend", 8).
		RightFixed("panel", 12).
		Remaining("canvas").
		Build()

	if got := l.Get("legend").Rect; got != image.Rect(0, 0, 8, 10) {
		t.Errorf("legend: expected (0,0)-(8,10), got %v", got)
	}
	if got := l.Get("canvas").Rect; got != image.Rect(8, 0, 28, 10) {
		t.Errorf("canvas: expected (8,0)-(28,10), got %v", got)
	}
}

func TestLayoutRemainingOnly(t *testing.T) {
	l := NewLayoutBuilder(80, 24).Remaining("full").Build()
	if r := l.Get("full"); r.Rect != image.Rect(0, 0, 80, 24) {
		t.Errorf("full: expected (0,0)-(80,24), got %v", r.Rect)
	}
}

func TestLayoutZeroSize(t *testing.T) {
	l := NewLayoutBuilder(0, 0).
		TopFixed("toolbar", 3).
		Remaining("canvas").
		Build()

	if cv := l.Get("canvas"); !cv.Rect.Empty() || cv.Rect != (image.Rectangle{}) {
		t.Errorf("zero term canvas: expected empty rect, got %v", cv.Rect)
	}
}

func TestLayoutPanelWiderThanTerminal(t *testing.T) {
	l := viewerLayout(20, 10)
	if cv := l.Get("canvas"); cv.Rect != (image.Rectangle{}) {
		t.Errorf("canvas: expected empty rect, got %v", cv.Rect)
	}
}

func TestLayoutNoOverlap(t *testing.T) {
	l := viewerLayout(80, 24)
	names := []string{"toolbar", "footer", "panel", "canvas"}
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			ri, rj := l.Get(names[i]), l.Get(names[j])
			if ri.Rect.Overlaps(rj.Rect) {
				t.Errorf("overlap: %s %v and %s %v", ri.Name, ri.Rect, rj.Name, rj.Rect)
			}
		}
	}
}

func TestGetNonExistent(t *testing.T) {
	if r := NewLayoutBuilder(80, 24).Build().Get("missing"); r.Name != "" {
		t.Errorf("non-existent: expected empty, got %v", r)
	}
}

// ── Chrome ──

func TestModalLayer(t *testing.T) {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Width(20).
		Padding(1, 2)

	layer := ModalLayer("angle (deg)", 80, 24, style)
	if layer.GetID() != "modal" {
		t.Errorf("modal ID: expected 'modal', got %q", layer.GetID())
	}
	if layer.GetZ() != 100 {
		t.Errorf("modal Z: expected 100, got %d", layer.GetZ())
	}
	if x, y := layer.GetX(), layer.GetY(); x < 20 || x > 40 || y < 5 || y > 15 {
		t.Errorf("modal not centered: (%d,%d)", x, y)
	}
}

func TestFillLayer(t *testing.T) {
	r := Region{Name: "canvas", Rect: image.Rect(10, 5, 30, 15)}
	layer := FillLayer(r, lipgloss.NewStyle().Background(lipgloss.Color("#1e1e28")), "bg", 0)
	if layer.GetID() != "bg" {
		t.Errorf("fill ID: expected 'bg', got %q", layer.GetID())
	}
	if layer.GetX() != 10 || layer.GetY() != 5 {
		t.Errorf("fill pos: expected (10,5), got (%d,%d)", layer.GetX(), layer.GetY())
	}
}

func TestFillLayerEmpty(t *testing.T) {
	layer := FillLayer(Region{Name: "empty"}, lipgloss.NewStyle(), "bg", 0)
	if layer.GetContent() != "" {
		t.Error("empty fill should have no content")
	}
}

func TestTextLayerClips(t *testing.T) {
	r := Region{Name: "panel", Rect: image.Rect(50, 1, 55, 3)}
	layer := TextLayer("abcdefgh\nline2\nline3", r, 2)

	if layer.GetID() != "panel-text" || layer.GetX() != 50 || layer.GetY() != 1 {
		t.Errorf("unexpected placement: %q at (%d,%d)", layer.GetID(), layer.GetX(), layer.GetY())
	}
	lines := strings.Split(layer.GetContent(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines after clipping, got %d: %q", len(lines), lines)
	}
	for _, l := range lines {
		if lipgloss.Width(l) > 5 {
			t.Errorf("line %q wider than region", l)
		}
	}
}

func TestBarLayer(t *testing.T) {
	r := Region{Name: "footer", Rect: image.Rect(0, 23, 80, 24)}
	layer := BarLayer("status", r, lipgloss.NewStyle())
	if layer.GetY() != 23 || layer.GetID() != "footer" {
		t.Errorf("unexpected bar layer %q at y=%d", layer.GetID(), layer.GetY())
	}
	if w := lipgloss.Width(layer.GetContent()); w != 80 {
		t.Errorf("bar width: expected 80, got %d", w)
	}
}
