package game

import (
	"math"

	"github.com/vovakirdan/inconvenience/internal/core"
)

// falling reports whether the player has nothing to stand on: the cell
// below is open and the player is not holding on to a ladder that
// continues downward.
func (g *Engine) falling() bool {
	p := &g.player
	if g.blocked(p.X, p.Y+1) {
		return false
	}
	below := g.level.Get(p.X, p.Y+1).Kind
	here := g.level.Get(p.X, p.Y).Kind
	return below != TileLadder || here != TileLadder
}

// standing reports whether the cell below can carry the player.
func (g *Engine) standing() bool {
	p := &g.player
	return g.blocked(p.X, p.Y+1) || g.level.Get(p.X, p.Y+1).Kind == TileLadder
}

// steer turns a key press into the player's pending step. Keys that map
// to nothing cancel whatever step was pending.
func (g *Engine) steer(k core.Key) {
	p := &g.player
	switch k {
	case core.KeyLeft:
		if g.standing() {
			p.Step = StepLeft
		}
	case core.KeyRight:
		if g.standing() {
			p.Step = StepRight
		}
	case core.KeyUp:
		if g.level.Get(p.X, p.Y).Kind == TileLadder {
			p.Step = StepUp
		}
	case core.KeyDown:
		if g.level.Get(p.X, p.Y+1).Kind == TileLadder {
			p.Step = StepDown
		}
	default:
		p.Step = StepNone
	}
}

// updatePlayer applies gravity, moves the player and leaves a PlayerWall
// on the cell it vacated.
func (g *Engine) updatePlayer() {
	p := &g.player
	if !p.Active {
		return
	}

	if g.falling() {
		p.Step = StepDown
		if p.Fall < math.MaxUint8 {
			p.Fall++
		}
	} else {
		p.Fall = 0
	}

	ox, oy := p.X, p.Y
	p.move(g.level, g.blocked)
	if p.X != ox || p.Y != oy {
		g.level.MarkTrail(ox, oy)
	}
}
