package confetti

import (
	"time"

	"github.com/lixenwraith/confetti/terminal"
	"github.com/lixenwraith/confetti/vmath"
)

// Shape is the particle outline
type Shape uint8

const (
	ShapeRound Shape = iota
	ShapeRect
)

func (s Shape) String() string {
	switch s {
	case ShapeRound:
		return "round"
	case ShapeRect:
		return "rect"
	default:
		return "unknown"
	}
}

// Particle is an immutable confetti descriptor
// Positions are percent of viewport; OriginY is negative so particles fall in
type Particle struct {
	ID           int
	OriginX      float64
	OriginY      float64
	Size         float64
	AspectFactor float64
	Color        terminal.RGB
	Rotation     float64 // Degrees in [0, 360)
	Shape        Shape
	Delay        time.Duration
}

// Sampler yields independent uniform values in [0, 1)
type Sampler interface {
	Float64() float64
}

// SamplerFunc adapts a function to Sampler
type SamplerFunc func() float64

func (f SamplerFunc) Float64() float64 { return f() }

// NewSampler returns an unseeded sampler: every call yields a different stream
func NewSampler() Sampler {
	return vmath.NewFastRand(vmath.EntropySeed())
}

// uniform maps a sample onto [lo, hi)
func uniform(s Sampler, lo, hi float64) float64 {
	return lo + (hi-lo)*s.Float64()
}

// coin returns true with even odds
func coin(s Sampler) bool {
	return s.Float64() < 0.5
}

// pick returns an index in [0, n)
func pick(s Sampler, n int) int {
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
