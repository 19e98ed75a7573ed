package core

import "time"

// RuntimeConfig contains the layout and timing the engine runs with.
type RuntimeConfig struct {
	ScreenW    int           // Window width in characters
	ScreenH    int           // Window height in characters
	View       Rect          // Viewport rectangle inside the window
	IntroDelay time.Duration // How long the intro screen stays up
	FallDelay  time.Duration // Delay between ticks while the player falls
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    32,
		ScreenH:    32,
		View:       NewRect(4, 4, 24, 24),
		IntroDelay: 1500 * time.Millisecond,
		FallDelay:  60 * time.Millisecond,
	}
}
