package tui

import (
	"testing"

	"github.com/vovakirdan/hexmatch/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(0, 1, "pink", core.ColorPink)
	s.DrawTextColored(5, 1, "blue", core.ColorBlue)
	s.DrawText(0, 2, "cursor")
	for x := 0; x < 6; x++ {
		s.Style(x, 2, core.AttrReverse|core.AttrBold)
	}

	// Test output has no color profile, so styling adds no escapes
	if got, expected := RenderScreen(s), s.String(); got != expected {
		t.Errorf("RenderScreen() = %q, expected %q", got, expected)
	}
}

func TestCellStyleAttributes(t *testing.T) {
	st := cellStyle(core.ColorGreen, core.AttrBold|core.AttrFaint)
	if !st.GetBold() || !st.GetFaint() || st.GetReverse() {
		t.Errorf("style bold=%v faint=%v reverse=%v", st.GetBold(), st.GetFaint(), st.GetReverse())
	}
	if cellStyle(core.Color(200), 0).GetForeground() != cellStyle(core.ColorDefault, 0).GetForeground() {
		t.Error("unknown colors fall back to the default style")
	}
	if !cellStyle(core.ColorRainbow, 0).GetBold() {
		t.Error("rainbow cells are bold")
	}
}
