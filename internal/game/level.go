package game

import "github.com/vovakirdan/inconvenience/internal/core"

// Level owns a width×height grid of tiles with toroidal topology.
// Every coordinate is wrapped before indexing, so access never fails.
type Level struct {
	width  int
	height int
	tiles  []Tile
}

// NewLevel creates an empty level. Both dimensions must be positive.
func NewLevel(width, height int) *Level {
	return &Level{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

// Synthetic creates a level with a fixed pattern: a wall floor along the
// bottom row, a wall roof along the top row and a ladder in the middle
// column between them.
func Synthetic(width, height int) *Level {
	l := NewLevel(width, height)
	for x := 0; x < width; x++ {
		l.Set(x, 0, TileWall)
		l.Set(x, height-1, TileWall)
	}
	for y := 1; y < height-1; y++ {
		l.Set(width/2, y, TileLadder)
	}
	return l
}

// Width returns the level width in tiles.
func (l *Level) Width() int {
	return l.width
}

// Height returns the level height in tiles.
func (l *Level) Height() int {
	return l.height
}

// Wrap maps any coordinate onto the grid.
func (l *Level) Wrap(x, y int) (int, int) {
	return core.Wrap(x, l.width), core.Wrap(y, l.height)
}

func (l *Level) index(x, y int) int {
	x, y = l.Wrap(x, y)
	return x + y*l.width
}

// Get returns the tile at (x, y) after wrapping.
func (l *Level) Get(x, y int) *Tile {
	return &l.tiles[l.index(x, y)]
}

// Set overwrites the kind of the tile at (x, y) after wrapping.
// The restore field is left untouched.
func (l *Level) Set(x, y int, kind TileKind) {
	l.tiles[l.index(x, y)].Kind = kind
}

// Solid reports whether the tile at (x, y) is solid.
func (l *Level) Solid(x, y int) bool {
	return l.Get(x, y).IsSolid()
}

// MarkTrail turns the tile at (x, y) into a PlayerWall, remembering the
// kind it had so RestoreTrail can put it back.
func (l *Level) MarkTrail(x, y int) {
	t := l.Get(x, y)
	if t.Kind == TilePlayerWall {
		return
	}
	t.Restore = t.Kind
	t.Kind = TilePlayerWall
}

// RestoreTrail returns every PlayerWall to its original kind and clears
// its restore field. It returns how many tiles were restored.
func (l *Level) RestoreTrail() int {
	n := 0
	for i := range l.tiles {
		t := &l.tiles[i]
		if t.Kind != TilePlayerWall {
			continue
		}
		t.Kind = t.Restore
		t.Restore = TileNone
		n++
	}
	return n
}

// Count returns how many tiles are of the given kind.
func (l *Level) Count(kind TileKind) int {
	n := 0
	for _, t := range l.tiles {
		if t.Kind == kind {
			n++
		}
	}
	return n
}

// Render draws the part of the level visible through view.
// Device cell (i, j) shows level tile (i + cam.X - view.X, j + cam.Y - view.Y),
// wrapped onto the grid.
func (l *Level) Render(r core.Renderer, view core.Rect, cam Camera) {
	for j := view.Y; j < view.Bottom(); j++ {
		yy := core.Wrap(j+cam.Y-view.Y, l.height)
		for i := view.X; i < view.Right(); i++ {
			xx := core.Wrap(i+cam.X-view.X, l.width)
			g := tileGlyph(l.tiles[xx+yy*l.width], xx, yy)
			r.PutGlyph(i, j, g.r, g.fg, g.bg)
		}
	}
}
