package game

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/inconvenience/internal/core"
)

// State is the top-level state of the engine.
type State int

const (
	StateIntro State = iota
	StateMenu
	StateGame
	StateVictory
	StateQuit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StateMenu:
		return "menu"
	case StateGame:
		return "game"
	case StateVictory:
		return "victory"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Levels is the table of level resources, one per level index.
type Levels interface {
	Count() int
	Name(i int) string
	Load(i int) ([]byte, error)
}

// Progress persists the index of the level the player reached.
// Load returns an error wrapping fs.ErrNotExist when nothing was saved yet.
type Progress interface {
	Load() (int, error)
	Save(level int) error
}

// LevelClear describes a completed level.
type LevelClear struct {
	Level  int
	Name   string
	Ticks  uint64 // ticks spent on the level
	Resets int    // how often the level was restarted
}

// Recorder receives every completed level.
type Recorder interface {
	RecordClear(c LevelClear) error
}

// Options configures a new Engine. Levels is required; the rest may be
// left nil.
type Options struct {
	Config   core.RuntimeConfig
	Levels   Levels
	Progress Progress
	Recorder Recorder
	Logger   *log.Logger
}

// Engine owns the level, the player, the entity roster and the top-level
// state machine. One tick is one Update followed by one Draw.
type Engine struct {
	cfg      core.RuntimeConfig
	levels   Levels
	progress Progress
	recorder Recorder
	logger   *log.Logger

	state     State
	tick      uint64
	cam       Camera
	lastEvent core.Event
	quit      bool

	player Entity
	roster Roster
	gems   int // gems still to collect on this level
	keys   int // keys held
	level  *Level

	levelIndex int
	levelTicks uint64
	resets     int
	advance    bool

	menu   Menu
	notice string // last problem shown on the menu
}

// New creates an engine in the intro state. If no progress has been
// persisted yet, level 0 is written.
func New(opts Options) (*Engine, error) {
	if opts.Levels == nil || opts.Levels.Count() == 0 {
		return nil, errors.New("game: no levels configured")
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Engine{
		cfg:      opts.Config,
		levels:   opts.Levels,
		progress: opts.Progress,
		recorder: opts.Recorder,
		logger:   logger,
		state:    StateIntro,
		player:   Entity{Kind: EntityPlayer},
		level:    Synthetic(16, 16),
	}
	g.roster.Reset()
	g.player.Respawn()

	if g.progress != nil {
		if _, err := g.progress.Load(); errors.Is(err, fs.ErrNotExist) {
			if err := g.progress.Save(0); err != nil {
				return nil, fmt.Errorf("game: creating progress: %w", err)
			}
			logger.Info("progress created", "level", 0)
		}
	}

	return g, nil
}

// State returns the current state.
func (g *Engine) State() State { return g.state }

// Done reports whether the engine has quit and no more ticks should run.
func (g *Engine) Done() bool { return g.quit }

// Tick returns the tick counter of the current state.
func (g *Engine) Tick() uint64 { return g.tick }

// Player returns a copy of the player entity.
func (g *Engine) Player() Entity { return g.player }

// Level returns the current level.
func (g *Engine) Level() *Level { return g.level }

// Camera returns the camera offset.
func (g *Engine) Camera() Camera { return g.cam }

// Gems returns how many gems are left on the level.
func (g *Engine) Gems() int { return g.gems }

// Keys returns how many keys the player holds.
func (g *Engine) Keys() int { return g.keys }

// LevelIndex returns the index of the current level.
func (g *Engine) LevelIndex() int { return g.levelIndex }

// LevelName returns the resource name of the current level.
func (g *Engine) LevelName() string { return g.levels.Name(g.levelIndex) }

// Entity returns the roster entity with the given id, or nil.
func (g *Engine) Entity(id int) *Entity { return g.roster.Get(id) }

// Entities returns a copy of every claimed roster slot.
func (g *Engine) Entities() []Entity {
	out := make([]Entity, 0, g.roster.Len())
	for i := 0; i < g.roster.Len(); i++ {
		out = append(out, *g.roster.Get(i))
	}
	return out
}

// Await reports what the engine needs before the next Update.
func (g *Engine) Await() core.Wait {
	switch g.state {
	case StateIntro:
		if g.tick == 0 {
			return core.Wait{}
		}
		return core.WaitFor(g.cfg.IntroDelay)
	case StateMenu, StateVictory:
		return core.WaitForKey()
	case StateGame:
		if g.falling() {
			return core.WaitFor(g.cfg.FallDelay)
		}
		return core.WaitForKey()
	default:
		return core.Wait{}
	}
}

// Update advances the state machine by one tick. A returned error means
// the tick was abandoned; the engine keeps its last valid state.
func (g *Engine) Update(ev core.Event) error {
	g.lastEvent = ev

	switch g.state {
	case StateIntro:
		g.updateIntro()
		return nil
	case StateMenu:
		return g.updateMenu(ev)
	case StateGame:
		return g.updateGame(ev)
	case StateVictory:
		if ev.Kind == core.EventKey {
			g.state = StateMenu
		}
		return nil
	case StateQuit:
		g.quit = true
		return nil
	default:
		return fmt.Errorf("game: unknown state %d", g.state)
	}
}

// updateIntro shows the intro for one tick plus the intro delay.
func (g *Engine) updateIntro() {
	if g.tick > 0 {
		g.state = StateMenu
		g.tick = 0
		return
	}
	g.tick++
}

// updateGame runs one simulation tick.
func (g *Engine) updateGame(ev core.Event) error {
	if ev.Kind == core.EventKey {
		switch {
		case ev.Key == core.KeyEscape:
			g.state = StateQuit
			return nil
		case isResetKey(ev):
			g.resets++
			g.logger.Info("level restarted", "level", g.levelIndex, "resets", g.resets)
			return g.loadLevel(g.levelIndex)
		case !g.falling():
			g.steer(ev.Key)
		}
	}

	g.updatePlayer()
	g.roster.Each(g.updateEntity)
	g.tick++
	g.levelTicks++

	var err error
	if g.advance {
		g.advance = false
		err = g.advanceLevel()
	}

	g.cam.Follow(g.player.X, g.player.Y, g.cfg.View)
	return err
}

// isResetKey reports whether ev asks to restart the current level.
func isResetKey(ev core.Event) bool {
	return ev.Key == core.KeyChar && (ev.Char == 'r' || ev.Char == 'R')
}

// newGame resets progress and starts at level 0.
func (g *Engine) newGame() error {
	if g.progress != nil {
		if err := g.progress.Save(0); err != nil {
			g.logger.Warn("could not reset progress", "error", err)
		}
	}
	return g.startGame(0)
}

// continueGame starts at the persisted level, clamped into the table.
func (g *Engine) continueGame() error {
	index := 0
	if g.progress != nil {
		saved, err := g.progress.Load()
		if err != nil {
			g.logger.Warn("could not read progress, starting from the first level", "error", err)
		} else {
			index = saved
		}
	}
	clamped := core.Clamp(index, 0, g.levels.Count()-1)
	if clamped != index {
		g.logger.Warn("saved level out of range", "saved", index, "using", clamped)
	}
	return g.startGame(clamped)
}

// StartGame loads level i and enters the game state.
func (g *Engine) StartGame(i int) error {
	if i < 0 || i >= g.levels.Count() {
		return fmt.Errorf("game: level %d out of range 0..%d", i, g.levels.Count()-1)
	}
	return g.startGame(i)
}

func (g *Engine) startGame(i int) error {
	g.resets = 0
	if err := g.loadLevel(i); err != nil {
		g.notice = "cannot load " + g.levels.Name(i)
		return err
	}
	g.notice = ""
	g.state = StateGame
	g.tick = 0
	return nil
}

// advanceLevel moves to the next level, or to the victory screen after
// the last one. The clear is recorded only once the next level is in
// place; a level that fails to load leaves the engine as it was.
func (g *Engine) advanceLevel() error {
	c := g.levelClear()

	next := g.levelIndex + 1
	if next >= g.levels.Count() {
		g.logger.Info("all levels cleared", "levels", g.levels.Count())
		g.record(c)
		g.saveProgress(g.levelIndex)
		g.state = StateVictory
		return nil
	}

	if err := g.loadLevel(next); err != nil {
		return err
	}
	g.resets = 0
	g.record(c)
	g.saveProgress(next)
	return nil
}

// levelClear describes the level being played as completed now.
func (g *Engine) levelClear() LevelClear {
	return LevelClear{
		Level:  g.levelIndex,
		Name:   g.LevelName(),
		Ticks:  g.levelTicks,
		Resets: g.resets,
	}
}

// record reports a finished level to the recorder, if any.
func (g *Engine) record(c LevelClear) {
	if g.recorder == nil {
		return
	}
	if err := g.recorder.RecordClear(c); err != nil {
		g.logger.Warn("could not record level clear", "level", c.Level, "error", err)
	}
}

// saveProgress persists the level index; failures are logged only.
func (g *Engine) saveProgress(level int) {
	if g.progress == nil {
		return
	}
	if err := g.progress.Save(level); err != nil {
		g.logger.Warn("could not save progress", "level", level, "error", err)
		return
	}
	g.logger.Debug("progress saved", "level", level)
}

// loadLevel replaces the current level with a fresh copy of level i and
// respawns every entity. On error nothing is changed.
func (g *Engine) loadLevel(i int) error {
	name := g.levels.Name(i)
	data, err := g.levels.Load(i)
	if err != nil {
		return fmt.Errorf("game: loading %s: %w", name, err)
	}
	lay, err := ParseLevel(data)
	if err != nil {
		return fmt.Errorf("game: parsing %s: %w", name, err)
	}
	return g.install(i, lay)
}

// install makes lay the current level.
func (g *Engine) install(i int, lay *Layout) error {
	var roster Roster
	roster.Reset()
	gems := 0
	for _, s := range lay.Spawns {
		if _, err := roster.Spawn(s.Kind, s.X, s.Y); err != nil {
			return err
		}
		if s.Kind == EntityGem {
			gems++
		}
	}

	g.gems = gems
	g.keys = 0
	g.level = lay.Level
	g.roster = roster
	g.player.InitX, g.player.InitY = lay.Player.X, lay.Player.Y
	g.player.Respawn()
	if n := g.level.RestoreTrail(); n > 0 {
		g.logger.Warn("restored stray trail tiles", "count", n)
	}
	g.levelIndex = i
	g.levelTicks = 0
	g.advance = false
	g.cam.Follow(g.player.X, g.player.Y, g.cfg.View)

	g.logger.Info("level loaded", "level", i, "name", g.levels.Name(i),
		"size", fmt.Sprintf("%dx%d", g.level.Width(), g.level.Height()),
		"entities", g.roster.Len(), "gems", g.gems)
	return nil
}

// ReloadLevel restarts the current level if its resource is named name.
// It reports whether a reload happened.
func (g *Engine) ReloadLevel(name string) (bool, error) {
	if g.state != StateGame || g.LevelName() != name {
		return false, nil
	}
	if err := g.loadLevel(g.levelIndex); err != nil {
		return false, err
	}
	return true, nil
}
