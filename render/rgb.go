package render

import (
	"github.com/lixenwraith/confetti/terminal"
)

// RGB is an alias to terminal.RGB so renderers need not import terminal for colors
type RGB = terminal.RGB

// Blend mixes src over c at alpha; alpha outside (0,1) returns an endpoint unchanged
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	return RGB{
		R: mix(c.R, src.R, alpha),
		G: mix(c.G, src.G, alpha),
		B: mix(c.B, src.B, alpha),
	}
}

func mix(c, src uint8, alpha float64) uint8 {
	v := float64(src)*alpha + float64(c)*(1-alpha) + 0.5
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
