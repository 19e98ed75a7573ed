package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/inconvenience/internal/core"
)

var shortLevel = grid("3 2",
	"########",
	"#      #",
	"#@ * O #",
	"########",
)

func TestRunPlaythrough(t *testing.T) {
	g, progress := newTestEngine(t, levelsOf(shortLevel))
	rec := &memRecorder{}
	g.recorder = rec
	s := core.NewScreen(32, 32)

	// Start, walk to the exit, leave the victory screen, pick Quit.
	in := ParseScript("! llll . jj!")
	if err := Run(context.Background(), g, in, s); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !g.Done() || g.State() != StateQuit {
		t.Errorf("expected a finished engine in the quit state, got %v", g.State())
	}
	if in.Remaining() {
		t.Error("the whole script should be consumed")
	}
	if len(rec.clears) != 1 {
		t.Errorf("expected 1 recorded clear, got %d", len(rec.clears))
	}
	if progress.level != 0 {
		t.Errorf("expected progress 0, got %d", progress.level)
	}
	// One initial frame plus one per tick: 2 intro, 1 menu, 4 game,
	// 1 victory, 3 menu, 1 quit.
	if s.Frames() != 13 {
		t.Errorf("expected 13 frames, got %d", s.Frames())
	}
}

func TestRunInputClosed(t *testing.T) {
	g, _ := newTestEngine(t, levelsOf(shortLevel))

	if err := Run(context.Background(), g, ParseScript("!l"), core.NewScreen(32, 32)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if g.State() != StateGame {
		t.Errorf("expected the game to stay running, got %v", g.State())
	}
	if p := g.Player(); p.X != 2 {
		t.Errorf("expected player at x=2, got x=%d", p.X)
	}
}

func TestRunFallsWithoutKeys(t *testing.T) {
	g, _ := newTestEngine(t, levelsOf(grid("1 9", "@ ")))

	if err := Run(context.Background(), g, ParseScript("!"), core.NewScreen(32, 32)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	p := g.Player()
	if p.Y != 511 || g.falling() {
		t.Errorf("expected the player to land at the bottom of the shaft, got y=%d", p.Y)
	}
}

func TestRunCancelled(t *testing.T) {
	g, _ := newTestEngine(t, levelsOf(shortLevel))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, g, ParseScript("!"), core.NewScreen(32, 32))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunDeterministic(t *testing.T) {
	script := "! lllll r ll"

	play := func() Snapshot {
		g, _ := newTestEngine(t, levelsOf(stepLevel))
		if err := Run(context.Background(), g, ParseScript(script), core.NewScreen(32, 32)); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		return g.Snapshot()
	}

	first, second := play(), play()
	if first != second {
		t.Errorf("two runs of the same script differ:\n%+v\n%+v", first, second)
	}
	if first.PlayerX != 7 || first.Trail != 2 {
		t.Errorf("expected the player at x=7 with a 2-tile trail after the reset, got %+v", first)
	}
}

func TestParseScript(t *testing.T) {
	in := ParseScript("h<l>\nk^jv !q r.x")
	want := []core.Event{
		core.KeyEvent(core.KeyLeft),
		core.KeyEvent(core.KeyLeft),
		core.KeyEvent(core.KeyRight),
		core.KeyEvent(core.KeyRight),
		core.KeyEvent(core.KeyUp),
		core.KeyEvent(core.KeyUp),
		core.KeyEvent(core.KeyDown),
		core.KeyEvent(core.KeyDown),
		core.KeyEvent(core.KeyEnter),
		core.KeyEvent(core.KeyEscape),
		core.CharEvent('r'),
		core.CharEvent('.'),
		core.CharEvent('x'),
	}

	for i, w := range want {
		ev, err := in.Next(context.Background(), core.WaitForKey())
		if err != nil {
			t.Fatalf("event %d: %v", i, err)
		}
		if ev != w {
			t.Errorf("event %d = %+v, expected %+v", i, ev, w)
		}
	}
	if _, err := in.Next(context.Background(), core.WaitForKey()); !errors.Is(err, ErrInputClosed) {
		t.Errorf("expected ErrInputClosed at the end of the script, got %v", err)
	}
}

func TestScriptInputTimeouts(t *testing.T) {
	in := NewScriptInput()
	ctx := context.Background()

	for i := 0; i < maxIdleTimeouts; i++ {
		ev, err := in.Next(ctx, core.WaitFor(time.Hour))
		if err != nil {
			t.Fatalf("timeout %d: %v", i, err)
		}
		if ev.Kind != core.EventTimeout {
			t.Fatalf("timeout %d returned %+v", i, ev)
		}
	}
	if _, err := in.Next(ctx, core.WaitFor(time.Hour)); !errors.Is(err, ErrInputClosed) {
		t.Errorf("expected ErrInputClosed after %d idle timeouts, got %v", maxIdleTimeouts, err)
	}
}

func TestScriptInputRealTime(t *testing.T) {
	in := NewScriptInput()
	in.RealTime = true

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := in.Next(ctx, core.WaitFor(time.Hour)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	start := time.Now()
	if _, err := in.Next(context.Background(), core.WaitFor(5*time.Millisecond)); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Error("a real-time script should wait out the delay")
	}
}
