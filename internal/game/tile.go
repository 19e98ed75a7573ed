// Package game implements the tile-grid platformer simulation: the wrapped
// level grid, entity movement rules, the camera and the top-level engine
// state machine. It renders through core.Renderer and never touches the
// terminal directly.
package game

import "github.com/vovakirdan/inconvenience/internal/core"

// TileKind classifies a grid cell.
type TileKind uint8

const (
	TileNone       TileKind = iota // empty space
	TileWall                       // solid wall
	TilePlayerWall                 // solid trail left behind the player
	TileLadder                     // climbable, not solid
	TilePillow                     // solid
	TileSpike                      // solid
)

// String returns a human-readable name for the tile kind.
func (k TileKind) String() string {
	switch k {
	case TileNone:
		return "None"
	case TileWall:
		return "Wall"
	case TilePlayerWall:
		return "PlayerWall"
	case TileLadder:
		return "Ladder"
	case TilePillow:
		return "Pillow"
	case TileSpike:
		return "Spike"
	default:
		return "Unknown"
	}
}

// IsSolid reports whether entities are kept out of tiles of this kind.
func (k TileKind) IsSolid() bool {
	switch k {
	case TileWall, TilePlayerWall, TilePillow, TileSpike:
		return true
	default:
		return false
	}
}

// Tile is a single grid cell.
// Restore holds the kind to put back when a PlayerWall is removed; it is
// only meaningful while Kind == TilePlayerWall.
type Tile struct {
	Kind    TileKind
	Restore TileKind
}

// IsSolid reports whether the tile blocks movement.
func (t Tile) IsSolid() bool {
	return t.Kind.IsSolid()
}

// glyph is what a tile or entity looks like on screen.
type glyph struct {
	r  rune
	fg core.Color
	bg core.Color
}

// tileGlyph returns the glyph for a tile at level coordinate (x, y).
// Empty space shows a faint dot lattice every fourth row and column.
func tileGlyph(t Tile, x, y int) glyph {
	switch t.Kind {
	case TileWall:
		return glyph{'#', core.ColorWhite, core.ColorDefault}
	case TilePlayerWall:
		return glyph{'#', core.ColorCyan, core.ColorBlue}
	case TileLadder:
		return glyph{'H', core.ColorYellow, core.ColorDefault}
	case TilePillow:
		return glyph{'o', core.ColorMagenta, core.ColorDefault}
	case TileSpike:
		return glyph{'x', core.ColorBrightRed, core.ColorDefault}
	default:
		if x%4 == 0 || y%4 == 0 {
			return glyph{'.', core.ColorDarkGray, core.ColorDefault}
		}
		return glyph{' ', core.ColorDefault, core.ColorDefault}
	}
}
