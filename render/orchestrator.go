package render

import (
	"sync"

	"github.com/lixenwraith/confetti/terminal"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
// Register, Unregister and RenderFrame may be called from different goroutines
type RenderOrchestrator struct {
	mu        sync.Mutex
	term      terminal.Terminal
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator with the given terminal and dimensions
func NewRenderOrchestrator(term terminal.Terminal, width, height int) *RenderOrchestrator {
	return &RenderOrchestrator{
		term:      term,
		buffer:    NewRenderBuffer(width, height),
		renderers: make([]rendererEntry, 0, 4),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	o.mu.Lock()
	defer o.mu.Unlock()

	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Unregister removes a renderer, returns false if it was not registered
func (o *RenderOrchestrator) Unregister(r SystemRenderer) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, e := range o.renderers {
		if e.renderer == r {
			o.renderers = append(o.renderers[:i], o.renderers[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered renderers
func (o *RenderOrchestrator) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.renderers)
}

// Resize updates buffer dimensions and syncs terminal
func (o *RenderOrchestrator) Resize(width, height int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.buffer.Resize(width, height)
	o.term.Sync()
}

// RenderFrame executes the render pipeline: clear, render all, flush
// Screen dimensions in ctx are taken from the buffer
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.buffer.Clear()
	ctx.ScreenWidth, ctx.ScreenHeight = o.buffer.Bounds()

	for _, entry := range o.renderers {
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.FlushToTerminal(o.term)
}
