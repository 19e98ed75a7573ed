package game

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Level exponents accepted in the header; grids are 2^W × 2^H.
const (
	minSizeExp = 1
	maxSizeExp = 10
)

var (
	// ErrBadHeader is returned when the first line is not two integers.
	ErrBadHeader = errors.New("game: malformed level header")
	// ErrLevelSize is returned when a size exponent is out of range.
	ErrLevelSize = errors.New("game: level size out of range")
	// ErrNoPlayer is returned when a level has no '@' spawn.
	ErrNoPlayer = errors.New("game: level has no player spawn")
)

// Spawn is the starting cell of an entity found in a level description.
type Spawn struct {
	Kind EntityKind
	X, Y int
}

// Layout is a parsed level description: the tile grid plus spawn points.
type Layout struct {
	Level   *Level
	Player  Spawn
	Spawns  []Spawn
	Unknown []rune // glyphs that were not recognized, in order of appearance
}

// Gems returns how many gem spawns the layout holds.
func (lay *Layout) Gems() int {
	n := 0
	for _, s := range lay.Spawns {
		if s.Kind == EntityGem {
			n++
		}
	}
	return n
}

// ParseLevel reads a textual level description.
//
// The first line holds two size exponents "W H"; the grid is 2^W wide and
// 2^H tall. The following 2^H lines hold the row glyphs. Short or missing
// rows are padded with empty space and unrecognized glyphs become empty
// space. Layouts with more entity spawns than RosterCapacity are rejected
// with ErrRosterFull.
func ParseLevel(data []byte) (*Layout, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	if !sc.Scan() {
		return nil, fmt.Errorf("%w: empty description", ErrBadHeader)
	}

	wExp, hExp, err := parseHeader(sc.Text())
	if err != nil {
		return nil, err
	}

	width, height := 1<<wExp, 1<<hExp
	lay := &Layout{Level: NewLevel(width, height)}
	havePlayer := false

	for y := 0; y < height && sc.Scan(); y++ {
		row := sc.Text()
		x := 0
		for _, r := range row {
			if x >= width {
				break
			}
			kind, spawn, known := glyphMeaning(r)
			lay.Level.Set(x, y, kind)
			switch {
			case !known:
				lay.Unknown = append(lay.Unknown, r)
			case spawn == EntityPlayer:
				lay.Player = Spawn{Kind: EntityPlayer, X: x, Y: y}
				havePlayer = true
			case spawn != EntityNone:
				if len(lay.Spawns) == RosterCapacity {
					return nil, fmt.Errorf("%w: more than %d entities at (%d,%d)", ErrRosterFull, RosterCapacity, x, y)
				}
				lay.Spawns = append(lay.Spawns, Spawn{Kind: spawn, X: x, Y: y})
			}
			x++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("game: reading level rows: %w", err)
	}

	if !havePlayer {
		return nil, ErrNoPlayer
	}
	return lay, nil
}

// parseHeader reads the "W H" exponent pair.
func parseHeader(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	w, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	if w < minSizeExp || w > maxSizeExp || h < minSizeExp || h > maxSizeExp {
		return 0, 0, fmt.Errorf("%w: %d %d (exponents must be %d..%d)", ErrLevelSize, w, h, minSizeExp, maxSizeExp)
	}
	return w, h, nil
}

// glyphMeaning maps a level glyph to its tile kind and, for spawn glyphs,
// the entity created at that cell. known is false for unrecognized glyphs.
func glyphMeaning(r rune) (kind TileKind, spawn EntityKind, known bool) {
	switch r {
	case ' ':
		return TileNone, EntityNone, true
	case '#':
		return TileWall, EntityNone, true
	case 'H':
		return TileLadder, EntityNone, true
	case 'o':
		return TilePillow, EntityNone, true
	case 'x':
		return TileSpike, EntityNone, true
	case '@':
		return TileNone, EntityPlayer, true
	case '*':
		return TileNone, EntityGem, true
	case 'O':
		return TileNone, EntityExit, true
	case 'k':
		return TileNone, EntityKey, true
	case 'L':
		return TileNone, EntityLock, true
	default:
		return TileNone, EntityNone, false
	}
}
