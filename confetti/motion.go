package confetti

import (
	"time"

	"github.com/lixenwraith/confetti/parameter"
	"github.com/lixenwraith/confetti/vmath"
)

// Motion holds the per-particle parameters drawn when its animation starts
type Motion struct {
	Spin       float64 // +1 clockwise, -1 counter-clockwise
	Drift      float64 // Horizontal offset reached at the end of the transition (percent)
	Transition time.Duration
}

// NewMotion samples spin direction, drift and transition length
func NewMotion(s Sampler) Motion {
	m := Motion{
		Spin:  1,
		Drift: uniform(s, -parameter.ConfettiDriftMax, parameter.ConfettiDriftMax),
		Transition: time.Duration(uniform(s,
			float64(parameter.ConfettiTransitionMin), float64(parameter.ConfettiTransitionMax))),
	}
	if coin(s) {
		m.Spin = -1
	}
	return m
}

// NewMotions samples one independent Motion per particle of the batch
func NewMotions(batch []Particle, s Sampler) []Motion {
	motions := make([]Motion, len(batch))
	for i := range motions {
		motions[i] = NewMotion(s)
	}
	return motions
}

// Frame is the presentation of one particle at an instant
type Frame struct {
	ID       int
	X        float64 // Percent of viewport width
	Y        float64 // Percent of viewport height
	Rotation float64 // Degrees, unnormalized
	Opacity  float64 // 1 opaque, 0 invisible
	Progress float64 // Transition progress in [0, 1]
}

// Done reports whether the particle finished its own transition
func (f Frame) Done() bool {
	return f.Progress >= 1
}

// Present maps a particle to its presentation after elapsed time since activation
// Before Delay the particle rests at its origin; afterwards it falls past the viewport, drifts, spins one turn and fades out
func Present(p Particle, m Motion, elapsed time.Duration) Frame {
	progress := 0.0
	if elapsed > p.Delay {
		if m.Transition <= 0 {
			progress = 1
		} else {
			progress = vmath.Clamp(float64(elapsed-p.Delay)/float64(m.Transition), 0, 1)
		}
	}

	return Frame{
		ID:       p.ID,
		X:        p.OriginX + m.Drift*vmath.EaseInOutSine(progress),
		Y:        vmath.Lerp(p.OriginY, parameter.ConfettiFallEndY, vmath.EaseInQuad(progress)),
		Rotation: p.Rotation + m.Spin*parameter.ConfettiSpinTurn*progress,
		Opacity:  1 - progress,
		Progress: progress,
	}
}
