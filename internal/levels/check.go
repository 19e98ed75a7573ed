package levels

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/inconvenience/internal/game"
)

// Report summarizes one level of a table.
type Report struct {
	Index    int
	Name     string
	Width    int
	Height   int
	Entities int
	Gems     int
	Keys     int
	Locks    int
	Unknown  []rune // distinct unrecognized glyphs
	Err      error
}

// OK reports whether the level loaded and parsed cleanly.
func (r Report) OK() bool {
	return r.Err == nil && len(r.Unknown) == 0
}

// Check loads and parses every level of t.
func Check(t *Table) []Report {
	reports := make([]Report, t.Count())
	for i := range reports {
		reports[i] = checkOne(t, i)
	}
	return reports
}

func checkOne(t *Table, i int) Report {
	r := Report{Index: i, Name: t.Name(i)}

	data, err := t.Load(i)
	if err != nil {
		r.Err = err
		return r
	}
	lay, err := game.ParseLevel(data)
	if err != nil {
		r.Err = err
		return r
	}

	r.Width = lay.Level.Width()
	r.Height = lay.Level.Height()
	r.Entities = len(lay.Spawns)
	r.Gems = lay.Gems()
	for _, s := range lay.Spawns {
		switch s.Kind {
		case game.EntityKey:
			r.Keys++
		case game.EntityLock:
			r.Locks++
		}
	}

	seen := mapset.New[rune]()
	for _, c := range lay.Unknown {
		if !seen.Has(c) {
			seen.Put(c)
			r.Unknown = append(r.Unknown, c)
		}
	}
	return r
}
