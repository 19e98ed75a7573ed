package game

import "github.com/vovakirdan/inconvenience/internal/core"

// EntityKind selects the hardcoded behavior of an entity.
type EntityKind uint8

const (
	EntityNone EntityKind = iota
	EntityPlayer
	EntityGem
	EntityExit
	EntityKey
	EntityLock
)

// String returns a human-readable name for the entity kind.
func (k EntityKind) String() string {
	switch k {
	case EntityNone:
		return "None"
	case EntityPlayer:
		return "Player"
	case EntityGem:
		return "Gem"
	case EntityExit:
		return "Exit"
	case EntityKey:
		return "Key"
	case EntityLock:
		return "Lock"
	default:
		return "Unknown"
	}
}

// Step is the single-tile move an entity intends to make this tick.
type Step uint8

const (
	StepNone Step = iota
	StepLeft
	StepRight
	StepUp
	StepDown
)

// String returns a human-readable name for the step.
func (s Step) String() string {
	switch s {
	case StepNone:
		return "None"
	case StepLeft:
		return "Left"
	case StepRight:
		return "Right"
	case StepUp:
		return "Up"
	case StepDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Entity is a movable actor on the grid. Kind-specific state lives in
// named fields that are only meaningful for that kind.
type Entity struct {
	ID     int
	Kind   EntityKind
	X, Y   int // current cell, always wrapped onto the level
	InitX  int // spawn cell
	InitY  int
	Step   Step // pending step, cleared after every update
	Active bool

	Unlocked bool  // Lock: already opened
	Armed    bool  // Exit: every gem has been collected
	Fall     uint8 // Player: consecutive ticks spent falling, saturating
}

// Respawn puts the entity back on its spawn cell with fresh state.
func (e *Entity) Respawn() {
	e.X, e.Y = e.InitX, e.InitY
	e.Step = StepNone
	e.Active = true
	e.Unlocked = false
	e.Armed = false
	e.Fall = 0
}

// At reports whether the entity occupies cell (x, y).
func (e *Entity) At(x, y int) bool {
	return e.X == x && e.Y == y
}

// move applies the pending step against the blocked predicate and clears
// it. A horizontal step into a blocked cell climbs one tile diagonally
// when both the cell above and the cell above the target are free.
func (e *Entity) move(l *Level, blocked func(x, y int) bool) {
	x, y := e.X, e.Y

	switch e.Step {
	case StepLeft:
		x, y = e.stepAcross(-1, blocked)
	case StepRight:
		x, y = e.stepAcross(1, blocked)
	case StepUp:
		if !blocked(e.X, e.Y-1) {
			y = e.Y - 1
		}
	case StepDown:
		if !blocked(e.X, e.Y+1) {
			y = e.Y + 1
		}
	}

	e.X, e.Y = l.Wrap(x, y)
	e.Step = StepNone
}

// stepAcross resolves a horizontal step in direction dx.
func (e *Entity) stepAcross(dx int, blocked func(x, y int) bool) (int, int) {
	if !blocked(e.X+dx, e.Y) {
		return e.X + dx, e.Y
	}
	if !blocked(e.X, e.Y-1) && !blocked(e.X+dx, e.Y-1) {
		return e.X + dx, e.Y - 1
	}
	return e.X, e.Y
}

// glyph returns how the entity looks on screen.
func (e *Entity) glyph() glyph {
	switch e.Kind {
	case EntityPlayer:
		return glyph{'@', core.ColorBrightWhite, core.ColorDefault}
	case EntityGem:
		return glyph{'*', core.ColorBrightCyan, core.ColorDefault}
	case EntityExit:
		if e.Armed {
			return glyph{'O', core.ColorBrightGreen, core.ColorDefault}
		}
		return glyph{'O', core.ColorGray, core.ColorDefault}
	case EntityKey:
		return glyph{'k', core.ColorBrightYellow, core.ColorDefault}
	case EntityLock:
		if e.Unlocked {
			return glyph{'L', core.ColorGray, core.ColorDefault}
		}
		return glyph{'L', core.ColorOrange, core.ColorDefault}
	default:
		return glyph{'?', core.ColorRed, core.ColorDefault}
	}
}
