package render

// BlendMode selects how a glyph's foreground lands on a cell
// The cell background is never written by glyphs, host content owns it
type BlendMode uint8

const (
	// BlendReplace writes the foreground opaquely
	BlendReplace BlendMode = iota
	// BlendAlpha mixes the foreground over the cell background, so alpha 0 is invisible
	BlendAlpha
)
