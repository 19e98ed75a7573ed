package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/inconvenience/internal/core"
	"github.com/vovakirdan/inconvenience/internal/game"
	"github.com/vovakirdan/inconvenience/internal/levels"
)

// Options configures the game screen.
type Options struct {
	Watcher *levels.Watcher // optional; reloads the current level on change
	Logger  *log.Logger
}

// Model is the Bubble Tea model driving the engine. Each engine tick is
// triggered by the message that satisfies the engine's current wait: a
// key press, a timer, or an immediate step.
type Model struct {
	engine  *game.Engine
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	watcher *levels.Watcher
	logger  *log.Logger

	seq      int // identifies the pending wait
	width    int
	quitting bool
}

// NewModel creates a model for the engine and draws its first frame.
func NewModel(engine *game.Engine, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		engine:  engine,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		watcher: opts.Watcher,
		logger:  logger,
	}
	engine.Draw(m.screen)
	return m
}

// Init schedules the first tick and starts watching level files.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitCmd(), watchCmd(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		ev, isQuit := m.keys.MapKey(msg)
		if isQuit {
			m.quitting = true
			return m, tea.Quit
		}
		// Intro delays and falls run on the clock; keys do not hurry them.
		if m.engine.Await().Kind != core.WaitKey {
			return m, nil
		}
		return m.step(ev)

	case TimeoutMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		return m.step(core.TimeoutEvent())

	case StepMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		return m.step(core.Event{})

	case LevelChangedMsg:
		return m.reload(msg.Name)

	case WatchErrorMsg:
		m.logger.Warn("level watcher error", "error", msg.Err)
		return m, watchCmd(m.watcher)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// step runs one engine tick and schedules the next one.
func (m Model) step(ev core.Event) (tea.Model, tea.Cmd) {
	if err := m.engine.Update(ev); err != nil {
		m.logger.Error("tick failed", "state", m.engine.State(), "error", err)
	}
	m.engine.Draw(m.screen)

	if m.engine.Done() {
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m, cmd = m.schedule()
	return m, cmd
}

// schedule starts a new wait. A pending timer from an earlier wait is
// invalidated by bumping seq.
func (m Model) schedule() (Model, tea.Cmd) {
	m.seq++
	return m, m.waitCmd()
}

// waitCmd turns the engine's wait request into a command for the current
// seq. Waiting for a key needs no command.
func (m Model) waitCmd() tea.Cmd {
	w := m.engine.Await()
	switch w.Kind {
	case core.WaitNone:
		return stepCmd(m.seq)
	case core.WaitTimeout:
		return timeoutCmd(w.Delay, m.seq)
	default:
		return nil
	}
}

// reload restarts the current level after its file changed on disk.
func (m Model) reload(name string) (tea.Model, tea.Cmd) {
	reloaded, err := m.engine.ReloadLevel(name)
	switch {
	case err != nil:
		m.logger.Warn("level reload failed", "name", name, "error", err)
	case reloaded:
		m.logger.Info("level reloaded", "name", name)
		m.engine.Draw(m.screen)
	}

	var cmd tea.Cmd
	if reloaded {
		m, cmd = m.schedule()
	}
	return m, tea.Batch(cmd, watchCmd(m.watcher))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Screen returns the screen buffer the engine draws into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Run starts the Bubble Tea program for the engine.
func Run(engine *game.Engine, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(engine, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
