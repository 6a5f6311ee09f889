package render

import (
	"github.com/lixenwraith/confetti/parameter/visual"
	"github.com/lixenwraith/confetti/terminal"
)

// Cell is an alias to terminal.Cell to avoid copying
// Attributes are preserved directly
type Cell = terminal.Cell
type Attr = terminal.Attr

// DefaultBgRGB is the default background color (Tokyo Night)
var DefaultBgRGB = visual.RgbBackground
