package game

import (
	"context"
	"unicode"

	"github.com/zyedidia/generic/queue"

	"github.com/vovakirdan/inconvenience/internal/core"
)

// maxIdleTimeouts bounds how many timed waits in a row a script answers
// before giving up, so an endless fall cannot hang a scripted run.
const maxIdleTimeouts = 1 << 12

// ScriptInput replays a fixed sequence of key events. Timed waits return
// immediately unless RealTime is set, so scripted runs are deterministic
// and fast.
type ScriptInput struct {
	events   *queue.Queue[core.Event]
	idle     int
	RealTime bool
}

// NewScriptInput creates an input that yields the given events in order.
func NewScriptInput(events ...core.Event) *ScriptInput {
	s := &ScriptInput{events: queue.New[core.Event]()}
	for _, ev := range events {
		s.events.Enqueue(ev)
	}
	return s
}

// ParseScript builds a ScriptInput from a compact key script:
//
//	h < left    l > right    k ^ up    j v down
//	! enter     q escape     r reset   . neutral
//
// Whitespace is ignored; any other rune is sent as a printable key.
func ParseScript(script string) *ScriptInput {
	s := NewScriptInput()
	for _, c := range script {
		if unicode.IsSpace(c) {
			continue
		}
		s.Push(scriptEvent(c))
	}
	return s
}

func scriptEvent(c rune) core.Event {
	switch c {
	case 'h', '<':
		return core.KeyEvent(core.KeyLeft)
	case 'l', '>':
		return core.KeyEvent(core.KeyRight)
	case 'k', '^':
		return core.KeyEvent(core.KeyUp)
	case 'j', 'v':
		return core.KeyEvent(core.KeyDown)
	case '!':
		return core.KeyEvent(core.KeyEnter)
	case 'q':
		return core.KeyEvent(core.KeyEscape)
	default:
		return core.CharEvent(c)
	}
}

// Push appends an event to the script.
func (s *ScriptInput) Push(ev core.Event) {
	s.events.Enqueue(ev)
}

// Remaining reports whether key events are still queued.
func (s *ScriptInput) Remaining() bool {
	return !s.events.Empty()
}

// Next implements Input.
func (s *ScriptInput) Next(ctx context.Context, w core.Wait) (core.Event, error) {
	switch w.Kind {
	case core.WaitTimeout:
		s.idle++
		if s.idle > maxIdleTimeouts {
			return core.Event{}, ErrInputClosed
		}
		if s.RealTime {
			if err := sleep(ctx, w.Delay); err != nil {
				return core.Event{}, err
			}
		}
		return core.TimeoutEvent(), nil
	case core.WaitKey:
		if s.events.Empty() {
			return core.Event{}, ErrInputClosed
		}
		s.idle = 0
		return s.events.Dequeue(), nil
	default:
		return core.Event{}, ctx.Err()
	}
}
