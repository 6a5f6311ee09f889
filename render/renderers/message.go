package renderers

import (
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/confetti/parameter"
	"github.com/lixenwraith/confetti/parameter/visual"
	"github.com/lixenwraith/confetti/render"
	"github.com/lixenwraith/confetti/terminal"
)

// MessageRenderer draws the host content: a centered message with a dismissal hint
type MessageRenderer struct {
	mu      sync.RWMutex
	message string
	hint    string
}

func NewMessageRenderer(message, hint string) *MessageRenderer {
	return &MessageRenderer{
		message: message,
		hint:    hint,
	}
}

// SetMessage replaces the message text
func (r *MessageRenderer) SetMessage(message string) {
	r.mu.Lock()
	r.message = message
	r.mu.Unlock()
}

func (r *MessageRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	r.mu.RLock()
	message, hint := r.message, r.hint
	r.mu.RUnlock()

	row := ctx.ScreenHeight * parameter.MessageRowPercent / 100
	drawCentered(buf, ctx.ScreenWidth, row, message, visual.RgbMessageText, terminal.AttrBold)
	if hint != "" {
		drawCentered(buf, ctx.ScreenWidth, row+2, hint, visual.RgbHintText, terminal.AttrDim)
	}
}

// drawCentered writes text centered on row, truncating to the screen width
func drawCentered(buf *render.RenderBuffer, width, row int, text string, fg render.RGB, attrs terminal.Attr) {
	text = runewidth.Truncate(text, width, "…")
	x := (width - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	for _, r := range text {
		buf.Set(x, row, r, fg, render.BlendReplace, 1, attrs)
		x += max(runewidth.RuneWidth(r), 1)
	}
}
