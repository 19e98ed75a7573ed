// Package tui provides the Bubble Tea integration for the game.
// It turns the engine's wait requests into key and timer messages and
// renders the screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/inconvenience/internal/levels"
)

// TimeoutMsg ends a timed wait. Seq identifies the wait it belongs to so a
// timer that fires after a key press is ignored.
type TimeoutMsg struct {
	Seq int
}

// StepMsg asks for a tick that does not wait at all.
type StepMsg struct {
	Seq int
}

// LevelChangedMsg reports that a level file was written on disk.
type LevelChangedMsg struct {
	Name string
}

// WatchErrorMsg carries a failure reported by the level watcher.
type WatchErrorMsg struct {
	Err error
}

// timeoutCmd returns a command that sends a TimeoutMsg after d.
func timeoutCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TimeoutMsg{Seq: seq}
	})
}

// stepCmd returns a command that sends a StepMsg right away.
func stepCmd(seq int) tea.Cmd {
	return func() tea.Msg {
		return StepMsg{Seq: seq}
	}
}

// watchCmd waits for the next change or error reported by w.
func watchCmd(w *levels.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return nil
			}
			return LevelChangedMsg{Name: name}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return WatchErrorMsg{Err: err}
		}
	}
}
