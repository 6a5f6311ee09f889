package parameter

import (
	"time"
)

// Confetti Batch
const (
	// ConfettiCount is the number of particles generated per activation
	ConfettiCount = 100

	// ConfettiDuration is how long the overlay stays mounted after activation
	ConfettiDuration = 3000 * time.Millisecond
)

// Confetti Descriptor Ranges (percent coordinates are relative to the viewport)
const (
	ConfettiOriginXMin = 0.0
	ConfettiOriginXMax = 100.0

	// ConfettiOriginYMin/Max place the spawn row above the visible area
	ConfettiOriginYMin = -15.0
	ConfettiOriginYMax = -5.0

	ConfettiSizeMin = 5.0
	ConfettiSizeMax = 15.0

	// ConfettiAspectMin/Max scale one axis of the particle footprint
	ConfettiAspectMin = 0.5
	ConfettiAspectMax = 1.0

	// ConfettiRotationMax is exclusive
	ConfettiRotationMax = 360.0

	ConfettiDelayMin = 0 * time.Millisecond
	ConfettiDelayMax = 500 * time.Millisecond
)

// Confetti Motion
const (
	// ConfettiFallEndY is the final vertical position, below the visible area
	ConfettiFallEndY = 120.0

	// ConfettiDriftMax bounds the horizontal drift in either direction
	ConfettiDriftMax = 10.0

	// ConfettiTransitionMin/Max bound each particle's own animation length
	ConfettiTransitionMin = 2 * time.Second
	ConfettiTransitionMax = 4 * time.Second

	// ConfettiSpinTurn is the rotation applied over a full transition
	ConfettiSpinTurn = 360.0
)

// Glyph selection thresholds
const (
	// ConfettiLargeSize is the size above which a heavier glyph is drawn
	ConfettiLargeSize = 10.0

	// ConfettiSlimAspect is the aspect below which rectangles render as strips
	ConfettiSlimAspect = 0.7
)
