// Package levels provides the table of level descriptions the engine plays
// through, either embedded in the binary or read from a directory.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//go:embed data/*.txt
var embedded embed.FS

// DefaultPattern names level files by their zero-padded index.
const DefaultPattern = "level%02d.txt"

// DefaultCount is the number of embedded levels.
const DefaultCount = 4

// ErrNoSuchLevel is returned when a level index is outside the table.
var ErrNoSuchLevel = errors.New("levels: no such level")

// Table maps level indices to files in a file system.
type Table struct {
	fsys  fs.FS
	names []string
}

// NewTable creates a table of count levels named by pattern inside fsys.
// An empty pattern uses DefaultPattern.
func NewTable(fsys fs.FS, count int, pattern string) (*Table, error) {
	if count <= 0 {
		return nil, fmt.Errorf("levels: level count must be positive, got %d", count)
	}
	if pattern == "" {
		pattern = DefaultPattern
	}

	names := make([]string, count)
	for i := range names {
		names[i] = fmt.Sprintf(pattern, i)
		if !fs.ValidPath(names[i]) {
			return nil, fmt.Errorf("levels: pattern %q gives invalid name %q", pattern, names[i])
		}
	}
	return &Table{fsys: fsys, names: names}, nil
}

// Embedded returns the table of levels built into the binary.
func Embedded() *Table {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	t, err := NewTable(sub, DefaultCount, DefaultPattern)
	if err != nil {
		panic(err)
	}
	return t
}

// Dir returns a table reading levels from a directory on disk.
func Dir(dir string, count int, pattern string) (*Table, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("levels: %s is not a directory", dir)
	}
	return NewTable(os.DirFS(dir), count, pattern)
}

// Count returns the number of levels.
func (t *Table) Count() int {
	return len(t.names)
}

// Name returns the file name of level i, or "" if i is out of range.
func (t *Table) Name(i int) string {
	if i < 0 || i >= len(t.names) {
		return ""
	}
	return t.names[i]
}

// Load reads the description of level i.
func (t *Table) Load(i int) ([]byte, error) {
	if i < 0 || i >= len(t.names) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchLevel, i)
	}
	return fs.ReadFile(t.fsys, t.names[i])
}

// Index returns the index of the level with the given file name.
func (t *Table) Index(name string) (int, bool) {
	for i, n := range t.names {
		if n == name {
			return i, true
		}
	}
	return -1, false
}
