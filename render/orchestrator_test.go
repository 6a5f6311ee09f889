package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/confetti/terminal"
)

// markRenderer writes its rune at (0,0) and records calls
type markRenderer struct {
	r       rune
	calls   int
	visible bool
	lastCtx RenderContext
}

func (m *markRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	m.calls++
	m.lastCtx = ctx
	buf.Set(0, 0, m.r, RGB{R: 255, G: 255, B: 255}, BlendReplace, 1, terminal.AttrNone)
}

func (m *markRenderer) IsVisible() bool { return m.visible }

func TestOrchestratorPriorityOrder(t *testing.T) {
	term := terminal.NewMemory(2, 2)
	o := NewRenderOrchestrator(term, 2, 2)

	overlay := &markRenderer{r: 'o', visible: true}
	content := &markRenderer{r: 'c', visible: true}

	// Registered out of order, overlay must still draw last
	o.Register(overlay, PriorityOverlay)
	o.Register(content, PriorityContent)

	now := time.Unix(100, 0)
	o.RenderFrame(RenderContext{Now: now})

	assert.Equal(t, 'o', term.Cell(0, 0).Rune)
	assert.Equal(t, 1, content.calls)
	assert.Equal(t, 2, overlay.lastCtx.ScreenWidth)
	assert.True(t, overlay.lastCtx.Now.Equal(now))
}

func TestOrchestratorVisibilityToggle(t *testing.T) {
	term := terminal.NewMemory(2, 2)
	o := NewRenderOrchestrator(term, 2, 2)

	content := &markRenderer{r: 'c', visible: true}
	overlay := &markRenderer{r: 'o', visible: false}
	o.Register(content, PriorityContent)
	o.Register(overlay, PriorityOverlay)

	o.RenderFrame(RenderContext{})
	assert.Equal(t, 'c', term.Cell(0, 0).Rune)
	assert.Zero(t, overlay.calls)
}

func TestOrchestratorUnregister(t *testing.T) {
	term := terminal.NewMemory(2, 2)
	o := NewRenderOrchestrator(term, 2, 2)

	r := &markRenderer{r: 'x', visible: true}
	o.Register(r, PriorityOverlay)
	assert.Equal(t, 1, o.Len())

	assert.True(t, o.Unregister(r))
	assert.False(t, o.Unregister(r))
	assert.Zero(t, o.Len())

	o.RenderFrame(RenderContext{})
	assert.Equal(t, rune(0), term.Cell(0, 0).Rune)
	assert.Zero(t, r.calls)
}

func TestOrchestratorResize(t *testing.T) {
	term := terminal.NewMemory(2, 2)
	o := NewRenderOrchestrator(term, 2, 2)

	r := &markRenderer{r: 'x', visible: true}
	o.Register(r, PriorityContent)

	o.Resize(6, 3)
	o.RenderFrame(RenderContext{})
	assert.Equal(t, 6, r.lastCtx.ScreenWidth)
	assert.Equal(t, 3, r.lastCtx.ScreenHeight)
}
