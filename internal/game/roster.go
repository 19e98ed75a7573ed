package game

import (
	"errors"
	"fmt"
)

// RosterCapacity is the number of entity slots a level may use.
const RosterCapacity = 64

// ErrRosterFull is returned when a level needs more entity slots than the
// roster holds.
var ErrRosterFull = errors.New("game: entity roster full")

// Roster is a fixed arena of entity slots addressed by stable ids.
// Slots are handed out in order by Spawn and only freed all at once by
// Reset; deactivated entities keep their slot.
type Roster struct {
	slots [RosterCapacity]Entity
	used  int
}

// Reset frees every slot.
func (r *Roster) Reset() {
	for i := range r.slots {
		r.slots[i] = Entity{ID: i}
	}
	r.used = 0
}

// Spawn claims the next free slot for an active entity of the given kind
// with spawn cell (x, y).
func (r *Roster) Spawn(kind EntityKind, x, y int) (*Entity, error) {
	if r.used == RosterCapacity {
		return nil, fmt.Errorf("%w: cannot place %s at (%d,%d)", ErrRosterFull, kind, x, y)
	}
	e := &r.slots[r.used]
	*e = Entity{ID: r.used, Kind: kind, InitX: x, InitY: y}
	e.Respawn()
	r.used++
	return e, nil
}

// Len returns the number of claimed slots.
func (r *Roster) Len() int {
	return r.used
}

// Get returns the entity with the given id, or nil if the slot is free.
func (r *Roster) Get(id int) *Entity {
	if id < 0 || id >= r.used {
		return nil
	}
	return &r.slots[id]
}

// Each calls fn for every active entity in id order.
func (r *Roster) Each(fn func(e *Entity)) {
	for i := 0; i < r.used; i++ {
		if r.slots[i].Active {
			fn(&r.slots[i])
		}
	}
}
