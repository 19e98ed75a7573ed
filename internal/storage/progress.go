package storage

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrCorruptProgress is returned when the progress file does not hold a
// single unsigned integer.
var ErrCorruptProgress = errors.New("storage: corrupt progress file")

// ProgressFile persists the index of the level the player reached as a
// single decimal number in a text file.
type ProgressFile struct {
	path string
}

// NewProgressFile returns a progress file at path. A leading "~" is
// expanded; the file itself is only touched by Load and Save.
func NewProgressFile(path string) (*ProgressFile, error) {
	if path == "" {
		return nil, errors.New("storage: empty progress path")
	}
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	return &ProgressFile{path: expanded}, nil
}

// Path returns the location of the file.
func (p *ProgressFile) Path() string {
	return p.path
}

// Load reads the saved level index. A missing file yields an error
// wrapping fs.ErrNotExist.
func (p *ProgressFile) Load() (int, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read progress: %w", err)
	}

	text := strings.TrimSpace(string(data))
	level, err := strconv.ParseUint(text, 10, 32)
	if err != nil || level > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %q", ErrCorruptProgress, text)
	}
	return int(level), nil
}

// Save writes the level index, creating parent directories as needed.
func (p *ProgressFile) Save(level int) error {
	if level < 0 {
		return fmt.Errorf("storage: negative level %d", level)
	}
	if err := ensureDir(p.path); err != nil {
		return err
	}
	if err := os.WriteFile(p.path, []byte(strconv.Itoa(level)+"\n"), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write progress: %w", err)
	}
	return nil
}

// Reset removes the file so the next run starts fresh.
func (p *ProgressFile) Reset() error {
	if err := os.Remove(p.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: cannot remove progress: %w", err)
	}
	return nil
}
