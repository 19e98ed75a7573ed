package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/inconvenience/internal/core"
)

// toMenu runs the intro to completion.
func toMenu(t *testing.T, g *Engine) {
	t.Helper()
	if err := g.Update(core.Event{}); err != nil {
		t.Fatalf("intro tick failed: %v", err)
	}
	if err := g.Update(core.TimeoutEvent()); err != nil {
		t.Fatalf("intro timeout failed: %v", err)
	}
	if g.State() != StateMenu {
		t.Fatalf("expected menu after intro, got %v", g.State())
	}
}

func TestNewEngine(t *testing.T) {
	g, progress := newTestEngine(t, levelsOf(stepLevel))

	if g.State() != StateIntro {
		t.Errorf("expected intro state, got %v", g.State())
	}
	if g.Done() {
		t.Error("a new engine should not be done")
	}
	if len(progress.saves) != 1 || progress.level != 0 {
		t.Errorf("missing progress should be created as 0, saves = %v", progress.saves)
	}
	if g.Level().Width() != 16 || g.Level().Height() != 16 {
		t.Errorf("expected a 16x16 placeholder level, got %dx%d", g.Level().Width(), g.Level().Height())
	}
}

func TestNewEngineKeepsProgress(t *testing.T) {
	progress := &memProgress{level: 2, saved: true}
	_, err := New(Options{Config: core.DefaultConfig(), Levels: levelsOf(stepLevel), Progress: progress})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if len(progress.saves) != 0 {
		t.Errorf("existing progress should not be rewritten, saves = %v", progress.saves)
	}
}

func TestNewEngineNoLevels(t *testing.T) {
	if _, err := New(Options{Config: core.DefaultConfig(), Levels: levelsOf()}); err == nil {
		t.Error("expected an error for an empty level table")
	}
	if _, err := New(Options{Config: core.DefaultConfig()}); err == nil {
		t.Error("expected an error without a level table")
	}
}

func TestIntro(t *testing.T) {
	g, _ := newTestEngine(t, levelsOf(stepLevel))

	if w := g.Await(); w.Kind != core.WaitNone {
		t.Errorf("first intro tick should not wait, got %+v", w)
	}
	if err := g.Update(core.Event{}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if g.State() != StateIntro {
		t.Fatalf("expected intro after the first tick, got %v", g.State())
	}
	if w := g.Await(); w != core.WaitFor(g.cfg.IntroDelay) {
		t.Errorf("second intro tick should wait for the intro delay, got %+v", w)
	}
	if err := g.Update(core.TimeoutEvent()); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if g.State() != StateMenu || g.Tick() != 0 {
		t.Errorf("expected menu with tick 0, got %v with tick %d", g.State(), g.Tick())
	}
	if w := g.Await(); w.Kind != core.WaitKey {
		t.Errorf("menu should wait for a key, got %+v", w)
	}
}

func TestMenuCursorBounds(t *testing.T) {
	var m Menu

	m.Up()
	if m.Selected() != MenuNew {
		t.Errorf("Up on the first item should stay, got %v", m.Selected())
	}
	for i := 0; i < 5; i++ {
		m.Down()
	}
	if m.Selected() != MenuQuit {
		t.Errorf("Down past the last item should stay on Quit, got %v", m.Selected())
	}
	m.Up()
	if m.Selected() != MenuContinue {
		t.Errorf("expected Continue, got %v", m.Selected())
	}
}

func TestMenuNewGame(t *testing.T) {
	g, progress := newTestEngine(t, levelsOf(stepLevel, stepLevel))
	progress.level = 1
	toMenu(t, g)

	press(t, g, core.KeyEnter)
	if g.State() != StateGame {
		t.Fatalf("expected game state, got %v", g.State())
	}
	if g.LevelIndex() != 0 {
		t.Errorf("new game should start at level 0, got %d", g.LevelIndex())
	}
	if progress.level != 0 {
		t.Errorf("new game should reset progress, got %d", progress.level)
	}
}

func TestMenuContinue(t *testing.T) {
	tests := []struct {
		name     string
		progress memProgress
		want     int
	}{
		{"saved level", memProgress{level: 1, saved: true}, 1},
		{"past the end", memProgress{level: 99, saved: true}, 2},
		{"negative", memProgress{level: -3, saved: true}, 0},
		{"unreadable", memProgress{loadErr: errBroken}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			progress := tc.progress
			g, err := New(Options{
				Config:   core.DefaultConfig(),
				Levels:   levelsOf(stepLevel, stepLevel, stepLevel),
				Progress: &progress,
			})
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			toMenu(t, g)

			press(t, g, core.KeyDown)
			press(t, g, core.KeyEnter)
			if g.State() != StateGame {
				t.Fatalf("expected game state, got %v", g.State())
			}
			if g.LevelIndex() != tc.want {
				t.Errorf("continued at level %d, expected %d", g.LevelIndex(), tc.want)
			}
		})
	}
}

func TestMenuQuit(t *testing.T) {
	tests := []struct {
		name string
		keys []core.Key
	}{
		{"escape", []core.Key{core.KeyEscape}},
		{"quit item", []core.Key{core.KeyDown, core.KeyDown, core.KeyEnter}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestEngine(t, levelsOf(stepLevel))
			toMenu(t, g)

			for _, k := range tc.keys {
				press(t, g, k)
			}
			if g.State() != StateQuit {
				t.Fatalf("expected quit state, got %v", g.State())
			}
			if g.Done() {
				t.Error("the engine is done only after the quit state has run")
			}
			if err := g.Update(core.Event{}); err != nil {
				t.Fatalf("Update failed: %v", err)
			}
			if !g.Done() {
				t.Error("expected the engine to be done")
			}
		})
	}
}

func TestMenuIgnoresTimeouts(t *testing.T) {
	g, _ := newTestEngine(t, levelsOf(stepLevel))
	toMenu(t, g)

	if err := g.Update(core.TimeoutEvent()); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if g.State() != StateMenu || g.menu.Selected() != MenuNew {
		t.Errorf("a timeout should not change the menu")
	}
}

func TestGameEscapeQuits(t *testing.T) {
	g := startLevel(t, stepLevel)

	press(t, g, core.KeyEscape)
	if g.State() != StateQuit {
		t.Errorf("expected quit state, got %v", g.State())
	}
	if p := g.Player(); p.X != 5 || p.Y != 5 {
		t.Error("escape should not move the player")
	}
}

func TestLevelLoadFailure(t *testing.T) {
	broken := "11 2\n"
	levels := memLevels{nil, &broken}
	g, _ := newTestEngine(t, levels)
	toMenu(t, g)

	if err := g.Update(core.KeyEvent(core.KeyEnter)); err == nil {
		t.Fatal("expected an error for a missing level")
	}
	if g.State() != StateMenu {
		t.Errorf("a failed load should stay on the menu, got %v", g.State())
	}
	if g.notice == "" {
		t.Error("a failed load should leave a notice on the menu")
	}

	err := g.StartGame(1)
	if !errors.Is(err, ErrLevelSize) {
		t.Errorf("expected ErrLevelSize, got %v", err)
	}
	if g.State() != StateMenu {
		t.Errorf("a failed parse should stay on the menu, got %v", g.State())
	}
	if g.Level().Width() != 16 {
		t.Error("a failed load should keep the previous level")
	}

	if err := g.StartGame(2); err == nil {
		t.Error("expected an error for a level index out of range")
	}
}

func TestVictory(t *testing.T) {
	level := grid("3 2",
		"########",
		"#      #",
		"#@ * O #",
		"########",
	)
	g, progress := newTestEngine(t, levelsOf(level))
	rec := &memRecorder{}
	g.recorder = rec
	toMenu(t, g)
	press(t, g, core.KeyEnter)

	for i := 0; i < 4; i++ {
		press(t, g, core.KeyRight)
	}
	if g.State() != StateVictory {
		t.Fatalf("expected victory after the last level, got %v", g.State())
	}
	if progress.level != 0 {
		t.Errorf("victory should keep progress on the last level, got %d", progress.level)
	}
	if len(rec.clears) != 1 || rec.clears[0].Ticks != 4 {
		t.Errorf("unexpected clears %+v", rec.clears)
	}
	if w := g.Await(); w.Kind != core.WaitKey {
		t.Errorf("victory should wait for a key, got %+v", w)
	}

	if err := g.Update(core.TimeoutEvent()); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if g.State() != StateVictory {
		t.Error("a timeout should not leave the victory screen")
	}
	press(t, g, core.KeyLeft)
	if g.State() != StateMenu {
		t.Errorf("any key should return to the menu, got %v", g.State())
	}
}

func TestReloadLevel(t *testing.T) {
	g, _ := newTestEngine(t, levelsOf(stepLevel))

	if ok, err := g.ReloadLevel("level00.txt"); ok || err != nil {
		t.Errorf("reload outside a game = %v, %v; expected false, nil", ok, err)
	}

	if err := g.StartGame(0); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	press(t, g, core.KeyRight)

	if ok, _ := g.ReloadLevel("level07.txt"); ok {
		t.Error("reload of another level should be ignored")
	}
	if g.Level().Count(TilePlayerWall) != 1 {
		t.Error("an ignored reload should keep the trail")
	}

	ok, err := g.ReloadLevel("level00.txt")
	if !ok || err != nil {
		t.Fatalf("ReloadLevel = %v, %v; expected true, nil", ok, err)
	}
	if g.Level().Count(TilePlayerWall) != 0 {
		t.Error("a reload should start the level fresh")
	}
}

func TestReloadLevelPicksUpChanges(t *testing.T) {
	levels := levelsOf(stepLevel)
	g, _ := newTestEngine(t, levels)
	if err := g.StartGame(0); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	*levels[0] = "2 2\n####\n#@*#\n#  #\n####\n"
	if ok, err := g.ReloadLevel("level00.txt"); !ok || err != nil {
		t.Fatalf("ReloadLevel = %v, %v", ok, err)
	}
	if g.Level().Width() != 4 || g.Gems() != 1 {
		t.Errorf("expected the edited 4x4 level with one gem, got width %d gems %d", g.Level().Width(), g.Gems())
	}

	*levels[0] = "nonsense"
	if ok, err := g.ReloadLevel("level00.txt"); ok || err == nil {
		t.Errorf("reload of a broken level = %v, %v; expected false and an error", ok, err)
	}
	if g.Level().Width() != 4 {
		t.Error("a failed reload should keep the current level")
	}
}

func TestFailedAdvanceRecordsNothing(t *testing.T) {
	lv := levelsOf(grid("2 2",
		"####",
		"@O  ",
		"####",
		"####",
	), "")
	lv[1] = nil
	g, progress := newTestEngine(t, lv)
	rec := &memRecorder{}
	g.recorder = rec
	if err := g.StartGame(0); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	if err := g.Update(core.KeyEvent(core.KeyRight)); err == nil {
		t.Fatal("expected the advance to fail on a missing level")
	}
	for i := 0; i < 3; i++ {
		if err := g.Update(core.CharEvent('.')); err == nil {
			t.Fatal("the advance should keep failing while the level is missing")
		}
	}

	if len(rec.clears) != 0 {
		t.Errorf("a failed advance must not record a clear, got %d", len(rec.clears))
	}
	if len(progress.saves) != 1 || progress.level != 0 {
		t.Errorf("progress should only hold the initial save, got %v", progress.saves)
	}
	if g.LevelIndex() != 0 || g.State() != StateGame {
		t.Errorf("engine should stay on level 0, got level %d in %v", g.LevelIndex(), g.State())
	}

	fixed := grid("2 2",
		"####",
		"@   ",
		"####",
		"####",
	)
	lv[1] = &fixed
	if err := g.Update(core.CharEvent('.')); err != nil {
		t.Fatalf("advance failed after the level was restored: %v", err)
	}
	if g.LevelIndex() != 1 {
		t.Fatalf("expected level 1, got %d", g.LevelIndex())
	}
	if len(rec.clears) != 1 || rec.clears[0].Level != 0 || rec.clears[0].Ticks != 5 {
		t.Errorf("expected a single clear of level 0 after 5 ticks, got %+v", rec.clears)
	}
	if progress.level != 1 {
		t.Errorf("expected progress 1, got %d", progress.level)
	}
}
