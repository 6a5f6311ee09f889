package confetti

import (
	"time"

	"github.com/lixenwraith/confetti/parameter"
	"github.com/lixenwraith/confetti/parameter/visual"
	"github.com/lixenwraith/confetti/terminal"
)

// Generate builds a batch of count independently sampled particles
// count <= 0 yields an empty batch; a palette not of exactly len(visual.ConfettiPalette) colors falls back to the default palette
func Generate(count int, palette []terminal.RGB, s Sampler) []Particle {
	if count <= 0 {
		return []Particle{}
	}
	if len(palette) != len(visual.ConfettiPalette) {
		palette = visual.ConfettiPaletteSlice()
	}
	if s == nil {
		s = NewSampler()
	}

	batch := make([]Particle, count)
	for i := range batch {
		batch[i] = newParticle(i, palette, s)
	}
	return batch
}

// newParticle samples every attribute independently, in a fixed order so a seeded sampler reproduces a batch
func newParticle(id int, palette []terminal.RGB, s Sampler) Particle {
	p := Particle{
		ID:           id,
		OriginX:      uniform(s, parameter.ConfettiOriginXMin, parameter.ConfettiOriginXMax),
		OriginY:      uniform(s, parameter.ConfettiOriginYMin, parameter.ConfettiOriginYMax),
		Size:         uniform(s, parameter.ConfettiSizeMin, parameter.ConfettiSizeMax),
		AspectFactor: uniform(s, parameter.ConfettiAspectMin, parameter.ConfettiAspectMax),
		Color:        palette[pick(s, len(palette))],
		Rotation:     uniform(s, 0, parameter.ConfettiRotationMax),
		Shape:        ShapeRound,
		Delay: time.Duration(uniform(s,
			float64(parameter.ConfettiDelayMin), float64(parameter.ConfettiDelayMax))),
	}
	if coin(s) {
		p.Shape = ShapeRect
	}
	return p
}
