package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FrameRateMin/Max bound configured frame rates
	FrameRateMin = 1
	FrameRateMax = 240

	// DefaultFrameRate matches FrameUpdateInterval
	DefaultFrameRate = 60
)

// Host Defaults
const (
	// DefaultMessage is the host content drawn beneath the overlay
	DefaultMessage = "Action succeeded"

	// MessageRowPercent places the host message vertically (percent of height)
	MessageRowPercent = 50
)
