package vmath

import (
	crand "crypto/rand"
	"encoding/binary"
	"sync/atomic"
	"time"
)

// --- Interpolation ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates from a to b by t (unclamped)
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseInQuad accelerates from rest, t in [0,1]
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseInOutSine is a gentle symmetric curve, t in [0,1]
func EaseInOutSine(t float64) float64 {
	return 0.5 - 0.5*cosTurn(t*0.5)
}

// --- Randomness ---

type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a uniform value in [0,1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// RangeF returns a uniform value in [lo, hi)
func (r *FastRand) RangeF(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// seedCounter decorrelates seeds drawn within the same clock tick when entropy is unavailable
var seedCounter atomic.Uint64

// EntropySeed returns a fresh non-zero seed from crypto entropy, falling back to the clock
func EntropySeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err == nil {
		if s := binary.LittleEndian.Uint64(b[:]); s != 0 {
			return s
		}
	}
	s := uint64(time.Now().UnixNano()) ^ (seedCounter.Add(1) * 0x9E3779B97F4A7C15)
	if s == 0 {
		s = 1
	}
	return s
}
