package core

import (
	"strings"
	"unicode/utf8"
)

// Renderer is the drawing surface the simulation renders into.
// Coordinates are device cells; out-of-range cells are ignored.
type Renderer interface {
	// PutGlyph draws r at device cell (x, y) with the given colors.
	PutGlyph(x, y int, r rune, fg, bg Color)
	// Clear blanks the whole frame.
	Clear()
	// DrawBorder outlines the rectangle with box-drawing characters.
	DrawBorder(r Rect)
	// Flush marks the frame as complete.
	Flush()
}

// Cell is a single character position on the screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// blank is the cell every position holds after Clear.
var blank = Cell{Rune: ' '}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing the engine to draw
// using simple glyph operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
	frames uint64
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Frames returns how many frames have been flushed.
func (s *Screen) Frames() uint64 {
	return s.frames
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Flush marks the current frame as complete.
func (s *Screen) Flush() {
	s.frames++
}

// Set places a rune at the given position with default colors.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.PutGlyph(x, y, r, ColorDefault, ColorDefault)
}

// PutGlyph places a colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) PutGlyph(x, y int, r rune, fg, bg Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawBorder draws a box outline using box-drawing characters.
func (s *Screen) DrawBorder(r Rect) {
	// Corners
	s.Set(r.X, r.Y, '┌')
	s.Set(r.Right()-1, r.Y, '┐')
	s.Set(r.X, r.Bottom()-1, '└')
	s.Set(r.Right()-1, r.Bottom()-1, '┘')

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, r.Bottom()-1, '─')
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│')
		s.Set(r.Right()-1, y, '│')
	}
}

// String converts the screen buffer to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// DrawText writes text one glyph per cell starting at (x, y) on any
// renderer. Glyphs past the renderer's edge are dropped by the renderer.
func DrawText(r Renderer, x, y int, text string, fg Color) {
	i := 0
	for _, c := range text {
		r.PutGlyph(x+i, y, c, fg, ColorDefault)
		i++
	}
}

// DrawTextCentered writes text centered in a row width cells wide.
func DrawTextCentered(r Renderer, width, y int, text string, fg Color) {
	DrawText(r, (width-utf8.RuneCountInString(text))/2, y, text, fg)
}
