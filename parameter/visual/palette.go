package visual

import (
	"github.com/lixenwraith/confetti/terminal"
)

// ConfettiPalette is the fixed set of particle colors, sampled with replacement
var ConfettiPalette = [5]terminal.RGB{
	{R: 255, G: 89, B: 94},  // Coral red
	{R: 255, G: 202, B: 58}, // Sunflower
	{R: 138, G: 201, B: 38}, // Lime
	{R: 25, G: 130, B: 196}, // Cerulean
	{R: 106, G: 76, B: 147}, // Violet
}

// ConfettiPaletteSlice returns a copy of ConfettiPalette as a slice
func ConfettiPaletteSlice() []terminal.RGB {
	p := make([]terminal.RGB, len(ConfettiPalette))
	copy(p, ConfettiPalette[:])
	return p
}
