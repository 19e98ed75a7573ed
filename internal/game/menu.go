package game

import "github.com/vovakirdan/inconvenience/internal/core"

// MenuItem is one entry of the main menu.
type MenuItem int

const (
	MenuNew MenuItem = iota
	MenuContinue
	MenuQuit
)

var menuLabels = [...]string{
	MenuNew:      "New game",
	MenuContinue: "Continue",
	MenuQuit:     "Quit",
}

// String returns the label shown for the item.
func (m MenuItem) String() string {
	if m < 0 || int(m) >= len(menuLabels) {
		return "?"
	}
	return menuLabels[m]
}

// Menu holds the cursor of the main menu.
type Menu struct {
	cursor MenuItem
}

// Selected returns the item under the cursor.
func (m *Menu) Selected() MenuItem {
	return m.cursor
}

// Up moves the cursor up, stopping at the first item.
func (m *Menu) Up() {
	if m.cursor > MenuNew {
		m.cursor--
	}
}

// Down moves the cursor down, stopping at the last item.
func (m *Menu) Down() {
	if m.cursor < MenuQuit {
		m.cursor++
	}
}

// updateMenu handles one key press on the main menu.
func (g *Engine) updateMenu(ev core.Event) error {
	if ev.Kind != core.EventKey {
		return nil
	}

	switch ev.Key {
	case core.KeyUp:
		g.menu.Up()
	case core.KeyDown:
		g.menu.Down()
	case core.KeyEscape:
		g.state = StateQuit
	case core.KeyEnter:
		switch g.menu.Selected() {
		case MenuNew:
			return g.newGame()
		case MenuContinue:
			return g.continueGame()
		case MenuQuit:
			g.state = StateQuit
		}
	}
	return nil
}

// drawMenu renders the title and the menu items.
func (g *Engine) drawMenu(r core.Renderer) {
	core.DrawTextCentered(r, g.cfg.ScreenW, 6, "I N C O N V E N I E N C E", core.ColorBrightCyan)
	for i := MenuNew; i <= MenuQuit; i++ {
		label := "  " + i.String()
		fg := core.ColorWhite
		if i == g.menu.Selected() {
			label = "> " + i.String()
			fg = core.ColorBrightYellow
		}
		core.DrawText(r, g.cfg.ScreenW/2-6, 12+2*int(i), label, fg)
	}
	if g.notice != "" {
		core.DrawTextCentered(r, g.cfg.ScreenW, 20, g.notice, core.ColorBrightRed)
	}
	core.DrawTextCentered(r, g.cfg.ScreenW, g.cfg.ScreenH-2, "arrows: move  enter: pick", core.ColorGray)
}
