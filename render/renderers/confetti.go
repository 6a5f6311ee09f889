package renderers

import (
	"sync"
	"time"

	"github.com/lixenwraith/confetti/confetti"
	"github.com/lixenwraith/confetti/parameter"
	"github.com/lixenwraith/confetti/parameter/visual"
	"github.com/lixenwraith/confetti/render"
	"github.com/lixenwraith/confetti/terminal"
	"github.com/lixenwraith/confetti/vmath"
)

// ConfettiRenderer draws a session's particles while the session is active
// Only foreground is written so the host content's background shows through,
// and fading particles mix toward that background until they disappear
type ConfettiRenderer struct {
	session *confetti.Session
	sampler confetti.Sampler

	// Captured on first presentation (animation start)
	once    sync.Once
	batch   []confetti.Particle
	motions []confetti.Motion
	start   time.Time

	frames []confetti.Frame // Reused by Render, loop goroutine only
}

// NewConfettiRenderer creates a renderer for session; sampler draws per-particle motion
func NewConfettiRenderer(session *confetti.Session, sampler confetti.Sampler) *ConfettiRenderer {
	if sampler == nil {
		sampler = confetti.NewSampler()
	}
	return &ConfettiRenderer{
		session: session,
		sampler: sampler,
	}
}

// IsVisible removes the whole overlay once the session leaves Active
func (r *ConfettiRenderer) IsVisible() bool {
	return r.session.Active()
}

func (r *ConfettiRenderer) begin() {
	r.once.Do(func() {
		r.batch = r.session.Batch()
		r.motions = confetti.NewMotions(r.batch, r.sampler)
		r.start = r.session.StartedAt()
	})
}

// Frames returns the presentation of every particle at now, nil unless the session is active
func (r *ConfettiRenderer) Frames(now time.Time) []confetti.Frame {
	if !r.session.Active() {
		return nil
	}
	r.begin()
	return r.present(now, make([]confetti.Frame, 0, len(r.batch)))
}

func (r *ConfettiRenderer) present(now time.Time, dst []confetti.Frame) []confetti.Frame {
	elapsed := now.Sub(r.start)
	for i, p := range r.batch {
		dst = append(dst, confetti.Present(p, r.motions[i], elapsed))
	}
	return dst
}

func (r *ConfettiRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !r.session.Active() {
		return
	}
	r.begin()
	r.frames = r.present(ctx.Now, r.frames[:0])

	for i, f := range r.frames {
		if f.Opacity <= 0 {
			continue
		}
		sx, sy, visible := ctx.PercentToScreen(f.X, f.Y)
		if !visible {
			continue
		}

		p := r.batch[i]
		glyph, attrs := Glyph(p, f)
		buf.Set(sx, sy, glyph, p.Color, render.BlendAlpha, f.Opacity, attrs)
	}
}

// Glyph selects the character and attributes for a particle in its current frame
// Round particles are dots, near-square rectangles are blocks, slim rectangles are strips oriented by rotation
func Glyph(p confetti.Particle, f confetti.Frame) (rune, terminal.Attr) {
	weight := 0
	attrs := terminal.AttrNone
	if p.Size >= parameter.ConfettiLargeSize {
		weight = 1
		attrs = terminal.AttrBold
	}

	if p.Shape == confetti.ShapeRound {
		return visual.RoundChars[weight], attrs
	}
	if p.AspectFactor >= parameter.ConfettiSlimAspect {
		return visual.BlockChars[weight], attrs
	}

	bucket := int((vmath.NormalizeDegrees(f.Rotation)+22.5)/45) % len(visual.RectChars)
	return visual.RectChars[bucket], attrs
}
