package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-descent/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "SCORE", core.ColorBrightYellow)
	s.SetColored(4, 1, '▼', core.ColorBrightRed)
	s.DrawText(0, 2, "ab", core.ColorDefault)
	s.DrawText(2, 2, "cd", core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	for _, want := range []string{"SCORE", "▼", "ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("empty screen rendered %q", out)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	// Unknown colours fall back to the default style
	s := styleFor(core.Color(200))
	if got := s.Render("x"); !strings.Contains(got, "x") {
		t.Errorf("fallback style lost text: %q", got)
	}
	for c := range palette {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("missing style for colour %d", c)
		}
	}
}
