package game

import (
	"fmt"

	"github.com/vovakirdan/inconvenience/internal/core"
)

// Draw renders the current state into r.
func (g *Engine) Draw(r core.Renderer) {
	r.Clear()
	switch g.state {
	case StateIntro:
		g.drawIntro(r)
	case StateMenu:
		g.drawMenu(r)
	case StateGame:
		g.drawGame(r)
	case StateVictory:
		g.drawVictory(r)
	}
	r.Flush()
}

func (g *Engine) drawIntro(r core.Renderer) {
	core.DrawTextCentered(r, g.cfg.ScreenW, g.cfg.ScreenH/2-1, "INCONVENIENCE", core.ColorBrightCyan)
	core.DrawTextCentered(r, g.cfg.ScreenW, g.cfg.ScreenH/2+1, "a wrapping platformer", core.ColorGray)
}

func (g *Engine) drawVictory(r core.Renderer) {
	core.DrawTextCentered(r, g.cfg.ScreenW, g.cfg.ScreenH/2-1, "ALL LEVELS CLEARED", core.ColorBrightGreen)
	core.DrawTextCentered(r, g.cfg.ScreenW, g.cfg.ScreenH/2+1, "press any key", core.ColorGray)
}

// drawGame renders the level through the viewport, then every active
// entity, then the frame and the status line.
func (g *Engine) drawGame(r core.Renderer) {
	view := g.cfg.View
	r.DrawBorder(view.Grow(1))
	g.level.Render(r, view, g.cam)

	g.roster.Each(func(e *Entity) { g.drawEntity(r, e) })
	g.drawEntity(r, &g.player)

	core.DrawText(r, view.X-1, view.Y-2, g.LevelName(), core.ColorGray)
	status := fmt.Sprintf("L%02d  gems %d  keys %d", g.levelIndex+1, g.gems, g.keys)
	core.DrawText(r, view.X-1, view.Bottom()+1, status, core.ColorWhite)
}

// drawEntity draws e at every device cell that shows its level cell.
func (g *Engine) drawEntity(r core.Renderer, e *Entity) {
	if !e.Active {
		return
	}
	gl := e.glyph()
	g.cam.Project(e.X, e.Y, g.cfg.View, g.level, func(dx, dy int) {
		r.PutGlyph(dx, dy, gl.r, gl.fg, gl.bg)
	})
}
