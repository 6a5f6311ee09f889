package visual

import (
	"github.com/lixenwraith/confetti/terminal"
)

// terminal.RGB color definitions for the host and overlay
var (
	RgbBackground  = terminal.RGB{R: 26, G: 27, B: 38}    // Tokyo Night background
	RgbMessageText = terminal.RGB{R: 192, G: 202, B: 245} // Tokyo Night foreground
	RgbHintText    = terminal.RGB{R: 86, G: 95, B: 137}   // Tokyo Night comment
)
