package core

import "time"

// Key is a logical key code, abstracted from the physical terminal key.
type Key int

const (
	KeyNone   Key = iota
	KeyLeft       // Left arrow, h, a
	KeyRight      // Right arrow, l, d
	KeyUp         // Up arrow, k, w
	KeyDown       // Down arrow, j, s
	KeyEnter      // Enter, space
	KeyEscape     // Escape
	KeyChar       // Any other printable key; see Event.Char
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyChar:
		return "Char"
	default:
		return "Unknown"
	}
}

// EventKind discriminates what an Event carries.
type EventKind int

const (
	EventNone    EventKind = iota // nothing was awaited
	EventKey                      // a key was pressed
	EventTimeout                  // the awaited delay elapsed
)

// Event is the result of waiting on the input collaborator.
type Event struct {
	Kind EventKind
	Key  Key
	Char rune // printable character, 0 if none
}

// KeyEvent builds a key press event.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// CharEvent builds a key press event for a printable character.
func CharEvent(r rune) Event {
	return Event{Kind: EventKey, Key: KeyChar, Char: r}
}

// TimeoutEvent is delivered when a timed wait elapses.
func TimeoutEvent() Event {
	return Event{Kind: EventTimeout}
}

// WaitKind says what the simulation needs before its next tick.
type WaitKind int

const (
	WaitNone    WaitKind = iota // tick immediately
	WaitKey                     // block until a key is pressed
	WaitTimeout                 // sleep for Wait.Delay
)

// Wait describes the suspension point before the next tick.
type Wait struct {
	Kind  WaitKind
	Delay time.Duration
}

// WaitForKey blocks the loop until the next key event.
func WaitForKey() Wait {
	return Wait{Kind: WaitKey}
}

// WaitFor sleeps the loop for d.
func WaitFor(d time.Duration) Wait {
	return Wait{Kind: WaitTimeout, Delay: d}
}
