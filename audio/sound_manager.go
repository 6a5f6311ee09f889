package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/confetti/parameter"
)

// Output is the playback device the manager feeds
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Clear()
}

// speakerOutput plays through the system speaker
type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }

func (speakerOutput) Clear() { speaker.Clear() }

// SoundManager plays the celebration chime
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	out         Output
	logger      *zap.Logger
	initialized bool
}

// NewSoundManager creates a sound manager on the system speaker
func NewSoundManager(cfg *AudioConfig, logger *zap.Logger) *SoundManager {
	return NewSoundManagerWithOutput(cfg, speakerOutput{}, logger)
}

// NewSoundManagerWithOutput creates a sound manager on the given output
func NewSoundManagerWithOutput(cfg *AudioConfig, out Output, logger *zap.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SoundManager{
		config: cfg,
		out:    out,
		logger: logger,
	}
}

// Initialize sets up the audio device, safe to call more than once
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.config.Enabled {
		return ErrAudioDisabled
	}
	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := sm.out.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	sm.initialized = true
	sm.logger.Debug("audio initialized", zap.Int("sample_rate", sm.config.SampleRate))
	return nil
}

// Initialized reports whether the device is ready
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayChime starts the chime, no-op when not initialized
func (sm *SoundManager) PlayChime() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.out.Play(CreateChimeSound(sm.config))
}

// Cleanup stops all sounds
// beep has no way to close the speaker for re-init, so only playback is cleared
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.out.Clear()
	sm.initialized = false
}
