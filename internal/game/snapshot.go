package game

import "github.com/vovakirdan/inconvenience/internal/core"

// Snapshot captures the observable engine state for determinism tests and
// replay output.
type Snapshot struct {
	State    State
	Tick     uint64
	Level    int
	PlayerX  int
	PlayerY  int
	Fall     uint8
	Gems     int
	Keys     int
	CamX     int
	CamY     int
	Entities int        // active roster entities
	Trail    int        // PlayerWall tiles on the level
	Event    core.Event // consumed by the last Update
}

// Snapshot returns the current engine snapshot.
func (g *Engine) Snapshot() Snapshot {
	active := 0
	g.roster.Each(func(*Entity) { active++ })

	return Snapshot{
		State:    g.state,
		Tick:     g.tick,
		Level:    g.levelIndex,
		PlayerX:  g.player.X,
		PlayerY:  g.player.Y,
		Fall:     g.player.Fall,
		Gems:     g.gems,
		Keys:     g.keys,
		CamX:     g.cam.X,
		CamY:     g.cam.Y,
		Entities: active,
		Trail:    g.level.Count(TilePlayerWall),
		Event:    g.lastEvent,
	}
}
