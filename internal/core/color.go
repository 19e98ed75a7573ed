package core

// Color is a palette entry for a screen cell's foreground or background.
// The zero value leaves the terminal's own color in place.
type Color uint8

// Palette. The trail, frame and HUD use the grays.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray

	numColors
)

// ansiCodes holds the 256-color index of every palette entry but the default.
var ansiCodes = [numColors]int{
	ColorBlack:         0,
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
	ColorDarkGray:      238,
}

// ANSI returns the 256-color index of c. ok is false for ColorDefault and
// for values outside the palette.
func (c Color) ANSI() (code int, ok bool) {
	if c == ColorDefault || c >= numColors {
		return 0, false
	}
	return ansiCodes[c], true
}
