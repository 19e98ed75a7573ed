package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/inconvenience/internal/core"
)

func TestDrawGame(t *testing.T) {
	g := startLevel(t, stepLevel)
	s := core.NewScreen(32, 32)

	g.Draw(s)

	// Camera (-7,-7) over a 16x8 level: the player at (5,5) shows in column
	// 16 and, because the level is shorter than the view, in three rows.
	for _, y := range []int{8, 16, 24} {
		if s.Get(16, y) != '@' {
			t.Errorf("expected player at (16,%d), got %q", y, s.Get(16, y))
		}
	}

	tests := []struct {
		x, y int
		want rune
	}{
		{16, 9, '#'},  // floor under the player
		{11, 8, '#'},  // left wall
		{15, 8, '#'},  // step
		{12, 8, ' '},  // empty
		{19, 8, '.'},  // lattice column
		{3, 3, '┌'},   // frame
		{28, 28, '┘'}, // frame
	}
	for _, tc := range tests {
		if got := s.Get(tc.x, tc.y); got != tc.want {
			t.Errorf("cell (%d,%d) = %q, expected %q", tc.x, tc.y, got, tc.want)
		}
	}

	if !strings.Contains(s.Row(2), "level00.txt") {
		t.Errorf("expected level name on row 2, got %q", s.Row(2))
	}
	if !strings.Contains(s.Row(29), "L01  gems 0  keys 0") {
		t.Errorf("expected status line on row 29, got %q", s.Row(29))
	}
	if s.Frames() != 1 {
		t.Errorf("expected 1 flushed frame, got %d", s.Frames())
	}
}

func TestDrawTrailColors(t *testing.T) {
	g := startLevel(t, stepLevel)
	press(t, g, core.KeyRight)

	s := core.NewScreen(32, 32)
	g.Draw(s)

	// Player moved to (6,5); the camera follows so the trail is one column left.
	cell := s.GetCell(15, 8)
	if cell.Rune != '#' || cell.Fg != core.ColorCyan || cell.Bg != core.ColorBlue {
		t.Errorf("trail cell = %+v, expected cyan '#' on blue", cell)
	}
}

func TestDrawMenu(t *testing.T) {
	g, _ := newTestEngine(t, levelsOf(stepLevel))
	g.state = StateMenu
	g.menu.Down()

	s := core.NewScreen(32, 32)
	g.Draw(s)

	if !strings.Contains(s.Row(14), "> Continue") {
		t.Errorf("expected cursor on Continue, got %q", s.Row(14))
	}
	if !strings.Contains(s.Row(12), "  New game") {
		t.Errorf("expected New game on row 12, got %q", s.Row(12))
	}
}

func TestDrawEntityGlyphs(t *testing.T) {
	tests := []struct {
		e    Entity
		want rune
		fg   core.Color
	}{
		{Entity{Kind: EntityPlayer}, '@', core.ColorBrightWhite},
		{Entity{Kind: EntityGem}, '*', core.ColorBrightCyan},
		{Entity{Kind: EntityExit}, 'O', core.ColorGray},
		{Entity{Kind: EntityExit, Armed: true}, 'O', core.ColorBrightGreen},
		{Entity{Kind: EntityKey}, 'k', core.ColorBrightYellow},
		{Entity{Kind: EntityLock}, 'L', core.ColorOrange},
		{Entity{Kind: EntityLock, Unlocked: true}, 'L', core.ColorGray},
	}
	for _, tc := range tests {
		gl := tc.e.glyph()
		if gl.r != tc.want || gl.fg != tc.fg {
			t.Errorf("%v glyph = %q/%v, expected %q/%v", tc.e.Kind, gl.r, gl.fg, tc.want, tc.fg)
		}
	}
}
