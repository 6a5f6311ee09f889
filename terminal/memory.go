package terminal

import (
	"sync"
)

// MemoryTerminal is an in-memory Terminal used for headless rendering and tests
// Events are delivered in PostEvent order; PollEvent blocks until one is available
type MemoryTerminal struct {
	mu      sync.Mutex
	width   int
	height  int
	mode    ColorMode
	cells   []Cell
	flushes int
	syncs   int
	closed  bool

	events chan Event
	done   chan struct{}
	once   sync.Once
}

// NewMemory creates an in-memory terminal of the given size
func NewMemory(width, height int) *MemoryTerminal {
	return &MemoryTerminal{
		width:  width,
		height: height,
		mode:   ColorModeTrueColor,
		cells:  make([]Cell, width*height),
		events: make(chan Event, 64),
		done:   make(chan struct{}),
	}
}

func (m *MemoryTerminal) Init() error { return nil }

// Fini unblocks pending PollEvent calls with EventClosed
func (m *MemoryTerminal) Fini() {
	m.once.Do(func() {
		m.mu.Lock()
		m.closed = true
		m.mu.Unlock()
		close(m.done)
	})
}

func (m *MemoryTerminal) Size() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

func (m *MemoryTerminal) ColorMode() ColorMode { return m.mode }

func (m *MemoryTerminal) Flush(cells []Cell, width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cap(m.cells) < width*height {
		m.cells = make([]Cell, width*height)
	}
	m.cells = m.cells[:width*height]
	copy(m.cells, cells)
	m.flushes++
}

func (m *MemoryTerminal) Sync() {
	m.mu.Lock()
	m.syncs++
	m.mu.Unlock()
}

func (m *MemoryTerminal) PollEvent() Event {
	select {
	case ev := <-m.events:
		return ev
	case <-m.done:
		return Event{Type: EventClosed}
	}
}

func (m *MemoryTerminal) PostEvent(ev Event) {
	select {
	case m.events <- ev:
	case <-m.done:
	}
}

// Resize changes the reported size and posts an EventResize
func (m *MemoryTerminal) Resize(width, height int) {
	m.mu.Lock()
	m.width, m.height = width, height
	m.mu.Unlock()
	m.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

// Cell returns the last flushed cell at (x, y)
func (m *MemoryTerminal) Cell(x, y int) Cell {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := y*m.width + x
	if x < 0 || y < 0 || x >= m.width || idx >= len(m.cells) {
		return Cell{}
	}
	return m.cells[idx]
}

// CountRunes returns how many flushed cells hold a rune accepted by match
func (m *MemoryTerminal) CountRunes(match func(rune) bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, c := range m.cells {
		if c.Rune != 0 && match(c.Rune) {
			n++
		}
	}
	return n
}

// Flushes returns the number of Flush calls
func (m *MemoryTerminal) Flushes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushes
}
