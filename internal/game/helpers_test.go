package game

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/vovakirdan/inconvenience/internal/core"
)

// memLevels is an in-memory level table. A nil entry fails to load.
type memLevels []*string

func levelsOf(texts ...string) memLevels {
	out := make(memLevels, len(texts))
	for i := range texts {
		out[i] = &texts[i]
	}
	return out
}

func (m memLevels) Count() int        { return len(m) }
func (m memLevels) Name(i int) string { return fmt.Sprintf("level%02d.txt", i) }
func (m memLevels) Load(i int) ([]byte, error) {
	if i < 0 || i >= len(m) || m[i] == nil {
		return nil, fmt.Errorf("open %s: %w", m.Name(i), fs.ErrNotExist)
	}
	return []byte(*m[i]), nil
}

// memProgress stores the level index in memory.
type memProgress struct {
	level   int
	saved   bool
	loadErr error
	saves   []int
}

func (p *memProgress) Load() (int, error) {
	if p.loadErr != nil {
		return 0, p.loadErr
	}
	if !p.saved {
		return 0, fs.ErrNotExist
	}
	return p.level, nil
}

func (p *memProgress) Save(level int) error {
	p.level = level
	p.saved = true
	p.saves = append(p.saves, level)
	return nil
}

// memRecorder collects level clears.
type memRecorder struct {
	clears []LevelClear
}

func (r *memRecorder) RecordClear(c LevelClear) error {
	r.clears = append(r.clears, c)
	return nil
}

// grid builds a level description from a header and rows.
func grid(header string, rows ...string) string {
	return header + "\n" + strings.Join(rows, "\n") + "\n"
}

// newTestEngine creates an engine over the given levels without starting
// a game.
func newTestEngine(t *testing.T, levels Levels) (*Engine, *memProgress) {
	t.Helper()
	progress := &memProgress{}
	g, err := New(Options{
		Config:   core.DefaultConfig(),
		Levels:   levels,
		Progress: progress,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g, progress
}

// startLevel creates an engine already playing the first of the given
// level descriptions.
func startLevel(t *testing.T, texts ...string) *Engine {
	t.Helper()
	g, _ := newTestEngine(t, levelsOf(texts...))
	if err := g.StartGame(0); err != nil {
		t.Fatalf("StartGame(0) failed: %v", err)
	}
	return g
}

// press runs one game tick with the given key.
func press(t *testing.T, g *Engine, k core.Key) {
	t.Helper()
	if err := g.Update(core.KeyEvent(k)); err != nil {
		t.Fatalf("Update(%v) failed: %v", k, err)
	}
}

var errBroken = errors.New("broken")
