package render

import (
	"time"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Frame timestamp from the host clock
	Now time.Time

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}

// PercentToScreen maps viewport percent coordinates to a cell
// Returns (sx, sy, visible) where visible=false if outside the screen
func (rc *RenderContext) PercentToScreen(px, py float64) (int, int, bool) {
	if rc.ScreenWidth <= 0 || rc.ScreenHeight <= 0 {
		return 0, 0, false
	}
	fx := px / 100 * float64(rc.ScreenWidth)
	fy := py / 100 * float64(rc.ScreenHeight)
	if fx < 0 || fy < 0 {
		return 0, 0, false
	}
	sx, sy := int(fx), int(fy)
	visible := sx < rc.ScreenWidth && sy < rc.ScreenHeight
	return sx, sy, visible
}
