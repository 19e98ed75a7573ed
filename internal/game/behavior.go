package game

import "github.com/vovakirdan/inconvenience/internal/core"

// updateEntity runs the kind-specific rule for e and then its movement.
func (g *Engine) updateEntity(e *Entity) {
	if !e.Active {
		return
	}

	p := &g.player
	switch e.Kind {
	case EntityGem:
		if e.At(p.X, p.Y) {
			e.Active = false
			g.gems--
			g.logger.Debug("gem collected", "id", e.ID, "remaining", g.gems)
		}

	case EntityExit:
		if g.gems <= 0 {
			e.Armed = true
		}
		if e.Armed && e.At(p.X, p.Y) {
			g.advance = true
		}

	case EntityKey:
		if e.At(p.X, p.Y) {
			e.Active = false
			g.keys++
			g.logger.Debug("key collected", "id", e.ID, "keys", g.keys)
		}

	case EntityLock:
		if !e.Unlocked && g.keys > 0 && g.beside(e) {
			g.keys--
			e.Unlocked = true
			e.Y = core.Wrap(e.Y+1, g.level.Height())
			g.logger.Debug("lock opened", "id", e.ID, "keys", g.keys)
		}
	}

	e.move(g.level, g.blocked)
}

// beside reports whether the player is one cell left or right of e on the
// same row, across the wrap seam included.
func (g *Engine) beside(e *Entity) bool {
	p := &g.player
	if p.Y != e.Y {
		return false
	}
	dx := core.Wrap(p.X-e.X, g.level.Width())
	return dx == 1 || dx == g.level.Width()-1
}

// blocked reports whether movement into (x, y) is prevented, either by a
// solid tile or by a lock that has not been opened.
func (g *Engine) blocked(x, y int) bool {
	if g.level.Solid(x, y) {
		return true
	}
	x, y = g.level.Wrap(x, y)
	locked := false
	g.roster.Each(func(e *Entity) {
		if e.Kind == EntityLock && !e.Unlocked && e.At(x, y) {
			locked = true
		}
	})
	return locked
}
