package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/inconvenience/internal/core"
)

// lipColor converts a palette color for lipgloss. ColorDefault is not set.
func lipColor(c core.Color) (lipgloss.Color, bool) {
	code, ok := c.ANSI()
	if !ok {
		return "", false
	}
	return lipgloss.Color(strconv.Itoa(code)), true
}

// colorPair keys the style cache.
type colorPair struct {
	fg, bg core.Color
}

var styleCache = map[colorPair]lipgloss.Style{}

// cellStyle returns the lipgloss style for a foreground/background pair.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	p := colorPair{fg, bg}
	if s, ok := styleCache[p]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c, ok := lipColor(fg); ok {
		s = s.Foreground(c)
	}
	if c, ok := lipColor(bg); ok {
		s = s.Background(c)
	}
	styleCache[p] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
