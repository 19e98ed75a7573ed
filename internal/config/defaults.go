package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Window: WindowConfig{
			Width:  32,
			Height: 32,
		},
		View: ViewConfig{
			X:      4,
			Y:      4,
			Width:  24,
			Height: 24,
		},
		Timing: TimingConfig{
			IntroDelayMS: 1500,
			FallDelayMS:  60,
		},
		Levels: LevelsConfig{
			Count:   4,
			Pattern: "level%02d.txt",
		},
		Progress: ProgressConfig{
			Path: "~/.inconvenience/progress",
		},
		Storage: StorageConfig{
			DB: "~/.inconvenience/records.db",
		},
		Log: LogConfig{
			Path:  "~/.inconvenience/inconvenience.log",
			Level: "info",
		},
	}
}
