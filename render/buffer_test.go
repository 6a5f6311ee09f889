package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/confetti/terminal"
)

func TestRenderBufferClearAndBounds(t *testing.T) {
	buf := NewRenderBuffer(5, 3)
	w, h := buf.Bounds()
	assert.Equal(t, 5, w)
	assert.Equal(t, 3, h)

	buf.Set(1, 1, 'x', RGB{R: 1, G: 1, B: 1}, BlendReplace, 1, terminal.AttrNone)
	assert.Equal(t, 'x', buf.Get(1, 1).Rune)

	buf.Clear()
	assert.Equal(t, rune(0), buf.Get(1, 1).Rune)
	assert.Equal(t, DefaultBgRGB, buf.Get(1, 1).Bg)
	assert.Equal(t, Cell{}, buf.Get(-1, 0), "out of bounds returns zero cell")
}

func TestRenderBufferSetKeepsBackground(t *testing.T) {
	buf := NewRenderBuffer(3, 1)
	buf.Set(0, 0, '●', RGB{R: 200, G: 0, B: 0}, BlendReplace, 1, terminal.AttrBold)

	c := buf.Get(0, 0)
	assert.Equal(t, '●', c.Rune)
	assert.Equal(t, RGB{R: 200, G: 0, B: 0}, c.Fg)
	assert.Equal(t, DefaultBgRGB, c.Bg)
	assert.Equal(t, terminal.AttrBold, c.Attrs)

	buf.Set(1, 0, 0, RGB{R: 200, G: 0, B: 0}, BlendReplace, 1, terminal.AttrNone)
	assert.Equal(t, rune(0), buf.Get(1, 0).Rune, "empty rune draws nothing")
	buf.Set(9, 0, 'x', RGB{}, BlendReplace, 1, terminal.AttrNone)
}

func TestRenderBufferAlphaMixesOverBackground(t *testing.T) {
	buf := NewRenderBuffer(1, 1)
	ink := RGB{R: 255, G: 200, B: 0}

	// Previous glyph color does not leak into the new one
	buf.Set(0, 0, 'a', RGB{R: 0, G: 255, B: 255}, BlendReplace, 1, terminal.AttrNone)
	buf.Set(0, 0, 'b', ink, BlendAlpha, 1, terminal.AttrNone)
	assert.Equal(t, ink, buf.Get(0, 0).Fg)

	buf.Set(0, 0, 'c', ink, BlendAlpha, 0, terminal.AttrNone)
	assert.Equal(t, DefaultBgRGB, buf.Get(0, 0).Fg, "fully faded glyph matches the background")

	buf.Set(0, 0, 'd', ink, BlendAlpha, 0.5, terminal.AttrNone)
	assert.Equal(t, Blend(DefaultBgRGB, ink, 0.5), buf.Get(0, 0).Fg)
	assert.Equal(t, DefaultBgRGB, buf.Get(0, 0).Bg)
}

func TestRenderBufferResize(t *testing.T) {
	buf := NewRenderBuffer(4, 4)
	buf.Resize(2, 2)
	w, h := buf.Bounds()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)

	buf.Resize(8, 8)
	buf.Set(7, 7, 'z', RGB{}, BlendReplace, 1, terminal.AttrNone)
	assert.Equal(t, 'z', buf.Get(7, 7).Rune)

	buf.Resize(-1, 3)
	w, _ = buf.Bounds()
	assert.Zero(t, w)
}

func TestRenderBufferFlush(t *testing.T) {
	term := terminal.NewMemory(2, 1)
	buf := NewRenderBuffer(2, 1)
	buf.Set(1, 0, 'k', RGB{R: 9, G: 9, B: 9}, BlendReplace, 1, terminal.AttrNone)
	buf.FlushToTerminal(term)

	assert.Equal(t, DefaultBgRGB, term.Cell(0, 0).Bg)
	assert.Equal(t, 'k', term.Cell(1, 0).Rune)
	assert.Equal(t, RGB{R: 9, G: 9, B: 9}, term.Cell(1, 0).Fg)
	assert.Equal(t, 1, term.Flushes())
}

func TestBlend(t *testing.T) {
	a, b := RGB{R: 10, G: 10, B: 10}, RGB{R: 200, G: 200, B: 200}
	assert.Equal(t, a, Blend(a, b, 0))
	assert.Equal(t, a, Blend(a, b, -1))
	assert.Equal(t, b, Blend(a, b, 1))
	assert.Equal(t, RGB{R: 105, G: 105, B: 105}, Blend(a, b, 0.5))
	assert.Equal(t, RGB{R: 255, G: 0, B: 128}, Blend(RGB{R: 255, G: 0, B: 0}, RGB{R: 255, G: 0, B: 255}, 0.5))
}

func TestPercentToScreen(t *testing.T) {
	ctx := RenderContext{ScreenWidth: 80, ScreenHeight: 20}

	x, y, ok := ctx.PercentToScreen(50, 50)
	assert.True(t, ok)
	assert.Equal(t, 40, x)
	assert.Equal(t, 10, y)

	_, _, ok = ctx.PercentToScreen(50, -0.5)
	assert.False(t, ok, "just above the viewport is hidden")

	_, _, ok = ctx.PercentToScreen(50, 100)
	assert.False(t, ok)

	_, _, ok = ctx.PercentToScreen(100, 10)
	assert.False(t, ok)

	empty := RenderContext{}
	_, _, ok = empty.PercentToScreen(1, 1)
	assert.False(t, ok)
}
