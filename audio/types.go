package audio

import (
	"errors"

	"github.com/lixenwraith/confetti/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSquare
)

// AudioConfig holds runtime audio settings
type AudioConfig struct {
	Enabled    bool
	SampleRate int
	Volume     float64 // Master volume in [0,1]
}

// DefaultAudioConfig returns the audio settings used when none are configured
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:    false,
		SampleRate: parameter.AudioSampleRate,
		Volume:     parameter.AudioDefaultVolume,
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
)
