package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines latency of the speaker
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the master volume in [0,1]
	AudioDefaultVolume = 0.5
)

// Chime Sound (celebration)
const (
	ChimeNoteDuration = 160 * time.Millisecond
	ChimeNoteGap      = 40 * time.Millisecond
	ChimeAttack       = 5 * time.Millisecond
	ChimeRelease      = 120 * time.Millisecond
)

// ChimeNotes are the ascending frequencies (Hz) of the celebration arpeggio: C6 E6 G6 C7
var ChimeNotes = [4]float64{1046.50, 1318.51, 1567.98, 2093.00}
