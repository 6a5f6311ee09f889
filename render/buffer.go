package render

import (
	"github.com/lixenwraith/confetti/terminal"
)

// RenderBuffer is a compositor backed by a terminal.Cell array
// Uses []terminal.Cell directly to allow zero-copy export, worth the coupling
type RenderBuffer struct {
	cells  []terminal.Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets every cell to a blank on the default background using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = terminal.Cell{
		Fg:    DefaultBgRGB,
		Bg:    DefaultBgRGB,
		Attrs: terminal.AttrNone,
	}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), zero Cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set draws glyph r with foreground fg, keeping the cell background
// Under BlendAlpha the new glyph replaces the old one, so fg mixes over the background rather than the previous foreground
func (b *RenderBuffer) Set(x, y int, r rune, fg RGB, mode BlendMode, alpha float64, attrs terminal.Attr) {
	if !b.inBounds(x, y) || r == 0 {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Attrs = attrs

	switch mode {
	case BlendAlpha:
		dst.Fg = Blend(dst.Bg, fg, alpha)
	default:
		dst.Fg = fg
	}
}

// FlushToTerminal writes render buffer to terminal
func (b *RenderBuffer) FlushToTerminal(term terminal.Terminal) {
	term.Flush(b.cells, b.width, b.height)
}
