// Package config provides YAML-based configuration for the game: window
// and viewport layout, tick timing, where levels come from and where
// progress, records and logs are written.
package config

// GameConfig contains the whole game configuration.
type GameConfig struct {
	Window   WindowConfig   `yaml:"window"`
	View     ViewConfig     `yaml:"view"`
	Timing   TimingConfig   `yaml:"timing"`
	Levels   LevelsConfig   `yaml:"levels"`
	Progress ProgressConfig `yaml:"progress"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
}

// WindowConfig is the size of the character window the game draws into.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ViewConfig is the viewport rectangle inside the window.
type ViewConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig holds tick delays in milliseconds.
type TimingConfig struct {
	IntroDelayMS int `yaml:"intro_delay_ms"`
	FallDelayMS  int `yaml:"fall_delay_ms"`
}

// LevelsConfig selects the level table.
type LevelsConfig struct {
	Dir     string `yaml:"dir"`     // Empty for the embedded levels
	Count   int    `yaml:"count"`   // Number of levels in Dir
	Pattern string `yaml:"pattern"` // fmt pattern taking the level index
}

// ProgressConfig locates the progress file.
type ProgressConfig struct {
	Path string `yaml:"path"`
}

// StorageConfig locates the records database.
type StorageConfig struct {
	DB string `yaml:"db"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"` // "debug", "info", "warn" or "error"
}
