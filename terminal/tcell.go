package terminal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// tcellTerminal implements Terminal on top of a tcell.Screen
type tcellTerminal struct {
	screen    tcell.Screen
	colorMode ColorMode

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal backed by the platform tcell screen
func New(colorMode ...ColorMode) (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	var c ColorMode
	if len(colorMode) == 0 {
		c = DetectColorMode()
	} else {
		c = colorMode[0]
	}
	return NewTcell(screen, c), nil
}

// NewTcell wraps an existing tcell.Screen
func NewTcell(screen tcell.Screen, colorMode ColorMode) Terminal {
	return &tcellTerminal{
		screen:    screen,
		colorMode: colorMode,
	}
}

func (t *tcellTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.initialized = true
	return nil
}

func (t *tcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true
	t.screen.Fini()
}

func (t *tcellTerminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerminal) ColorMode() ColorMode {
	return t.colorMode
}

func (t *tcellTerminal) Flush(cells []Cell, width, height int) {
	if len(cells) < width*height {
		return
	}
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			c := cells[row+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, StyleFor(c, t.colorMode))
		}
	}
	t.screen.Show()
}

func (t *tcellTerminal) Sync() {
	t.screen.Sync()
}

func (t *tcellTerminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			return keyEvent(ev)
		case *tcell.EventResize:
			w, h := ev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventInterrupt:
			if posted, ok := ev.Data().(Event); ok {
				return posted
			}
			return Event{Type: EventInterrupt}
		}
		// Mouse, paste and focus events are not surfaced
	}
}

const (
	postEventRetry   = time.Millisecond
	postEventTimeout = time.Second
)

// PostEvent retries while the event queue is full so a wake-up survives an input flood
// Gives up once the screen is finalized or nothing drained the queue within postEventTimeout
func (t *tcellTerminal) PostEvent(ev Event) {
	wrapped := tcell.NewEventInterrupt(ev)
	deadline := time.Now().Add(postEventTimeout)
	for {
		err := t.screen.PostEvent(wrapped)
		if !errors.Is(err, tcell.ErrEventQFull) {
			return
		}
		if t.closed() || time.Now().After(deadline) {
			return
		}
		time.Sleep(postEventRetry)
	}
}

func (t *tcellTerminal) closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.finalized
}

// StyleFor converts a cell's colors and attributes to a tcell style for the given color mode
func StyleFor(c Cell, mode ColorMode) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(colorFor(c.Fg, mode)).
		Background(colorFor(c.Bg, mode))

	if c.Attrs&AttrBold != 0 {
		style = style.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		style = style.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		style = style.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if c.Attrs&AttrBlink != 0 {
		style = style.Blink(true)
	}
	if c.Attrs&AttrReverse != 0 {
		style = style.Reverse(true)
	}
	return style
}

func colorFor(c RGB, mode ColorMode) tcell.Color {
	if mode == ColorMode256 {
		return tcell.PaletteColor(int(RGBTo256(c)))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func keyEvent(ev *tcell.EventKey) Event {
	out := Event{Type: EventKey}

	mods := ev.Modifiers()
	if mods&tcell.ModShift != 0 {
		out.Modifiers |= ModShift
	}
	if mods&tcell.ModAlt != 0 {
		out.Modifiers |= ModAlt
	}
	if mods&tcell.ModCtrl != 0 {
		out.Modifiers |= ModCtrl
	}

	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			out.Key = KeySpace
		} else {
			out.Key = KeyRune
		}
		out.Rune = ev.Rune()
	case tcell.KeyEscape:
		out.Key = KeyEscape
	case tcell.KeyEnter:
		out.Key = KeyEnter
	case tcell.KeyTab:
		out.Key = KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = KeyBackspace
	case tcell.KeyUp:
		out.Key = KeyUp
	case tcell.KeyDown:
		out.Key = KeyDown
	case tcell.KeyLeft:
		out.Key = KeyLeft
	case tcell.KeyRight:
		out.Key = KeyRight
	case tcell.KeyCtrlC:
		out.Key = KeyCtrlC
	case tcell.KeyCtrlD:
		out.Key = KeyCtrlD
	default:
		out.Key = KeyNone
	}
	return out
}
