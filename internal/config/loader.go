package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/inconvenience/internal/core"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.inconvenience/config.yaml -> ./configs/game.yaml -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "game.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// parse decodes YAML on top of the defaults.
func parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".inconvenience", "config.yaml")
}

// Validate checks that the layout fits and the timings make sense.
func (c GameConfig) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.View.Width <= 0 || c.View.Height <= 0 {
		errs = append(errs, fmt.Errorf("view size %dx%d must be positive", c.View.Width, c.View.Height))
	}
	// The frame is drawn one cell outside the view.
	if c.View.X < 1 || c.View.Y < 1 ||
		c.View.X+c.View.Width+1 > c.Window.Width ||
		c.View.Y+c.View.Height+1 > c.Window.Height {
		errs = append(errs, fmt.Errorf("view %d,%d %dx%d with its frame does not fit the %dx%d window",
			c.View.X, c.View.Y, c.View.Width, c.View.Height, c.Window.Width, c.Window.Height))
	}
	if c.Timing.IntroDelayMS < 0 || c.Timing.FallDelayMS < 0 {
		errs = append(errs, errors.New("timing delays must not be negative"))
	}
	if c.Levels.Count <= 0 {
		errs = append(errs, fmt.Errorf("level count %d must be positive", c.Levels.Count))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Runtime returns the layout and timing the engine runs with.
func (c GameConfig) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    c.Window.Width,
		ScreenH:    c.Window.Height,
		View:       core.NewRect(c.View.X, c.View.Y, c.View.Width, c.View.Height),
		IntroDelay: time.Duration(c.Timing.IntroDelayMS) * time.Millisecond,
		FallDelay:  time.Duration(c.Timing.FallDelayMS) * time.Millisecond,
	}
}

// LogLevel returns the configured log level, defaulting to info.
func (c GameConfig) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
