package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/confetti/parameter"
)

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []WaveType{WaveSine, WaveTriangle, WaveSquare} {
		n, peak := drain(NewOscillator(440, 50*time.Millisecond, wave, rate))
		assert.Equal(t, rate.N(50*time.Millisecond), n, "wave %d", wave)
		assert.InDelta(t, 1.0, peak, 0.01, "wave %d", wave)
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := 100 * time.Millisecond
	s := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(d))
	n, _ := s.Stream(buf)
	assert.Equal(t, len(buf), n)

	assert.Zero(t, buf[0][0], "attack starts silent")
	assert.Equal(t, 1.0, buf[n/2][0], "sustain is full volume")
	assert.Less(t, buf[n-1][0], 0.05, "release ends near silence")
}

func TestCreateChimeSound(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	n, peak := drain(CreateChimeSound(cfg))

	want := len(parameter.ChimeNotes) * (rate.N(parameter.ChimeNoteDuration) + rate.N(parameter.ChimeNoteGap))
	assert.Equal(t, want, n)
	assert.Positive(t, peak)
	assert.LessOrEqual(t, peak, cfg.Volume+1e-9)
	assert.Equal(t, 800*time.Millisecond, ChimeLength())
}

func TestCreateChimeSoundMuted(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Volume = 0

	n, peak := drain(CreateChimeSound(cfg))
	assert.Positive(t, n)
	assert.Zero(t, peak)
}
