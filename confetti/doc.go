// Package confetti implements a time-bounded, randomly generated particle effect.
//
// A Session generates one immutable Batch of particles on activation and holds a
// single deadline timer. When the deadline fires, or the host tears the session
// down first, the session terminates and releases the timer. Terminated is final.
//
// Presentation is a pure function of a particle, its Motion and the elapsed time
// since activation; see Present.
package confetti
