package terminal

import (
	"bytes"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"black", RGB{0, 0, 0}, 16},
		{"white", RGB{255, 255, 255}, 231},
		{"pure red", RGB{255, 0, 0}, 196},
		{"pure green", RGB{0, 255, 0}, 46},
		{"pure blue", RGB{0, 0, 255}, 21},
		{"mid gray", RGB{128, 128, 128}, 244},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBTo256(tt.in))
		})
	}
}

func TestDetectColorMode(t *testing.T) {
	for _, key := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		t.Setenv(key, "")
	}

	t.Setenv("COLORTERM", "truecolor")
	assert.Equal(t, ColorModeTrueColor, DetectColorMode())

	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	assert.Equal(t, ColorMode256, DetectColorMode())

	t.Setenv("TERM", "xterm-direct")
	assert.Equal(t, ColorModeTrueColor, DetectColorMode())
}

func TestStyleFor(t *testing.T) {
	cell := Cell{Rune: 'x', Fg: RGB{255, 0, 0}, Bg: RGB{0, 0, 255}, Attrs: AttrBold | AttrReverse}

	fg, bg, attrs := StyleFor(cell, ColorModeTrueColor).Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)
	assert.NotZero(t, attrs&tcell.AttrBold)
	assert.NotZero(t, attrs&tcell.AttrReverse)
	assert.Zero(t, attrs&tcell.AttrItalic)

	fg, _, _ = StyleFor(cell, ColorMode256).Decompose()
	assert.Equal(t, tcell.PaletteColor(196), fg)
}

func TestKeyEvent(t *testing.T) {
	ev := keyEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	assert.Equal(t, EventKey, ev.Type)
	assert.Equal(t, KeyRune, ev.Key)
	assert.Equal(t, 'q', ev.Rune)

	ev = keyEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.Equal(t, KeyEscape, ev.Key)

	ev = keyEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModAlt))
	assert.Equal(t, KeySpace, ev.Key)
	assert.Equal(t, ModAlt, ev.Modifiers)
}

func TestMemoryTerminal(t *testing.T) {
	term := NewMemory(4, 2)
	require.NoError(t, term.Init())

	cells := make([]Cell, 8)
	cells[5] = Cell{Rune: '●', Fg: RGB{1, 2, 3}}
	term.Flush(cells, 4, 2)

	assert.Equal(t, '●', term.Cell(1, 1).Rune)
	assert.Equal(t, 1, term.CountRunes(func(r rune) bool { return r == '●' }))
	assert.Equal(t, 1, term.Flushes())

	term.PostEvent(Event{Type: EventKey, Key: KeyEscape})
	assert.Equal(t, KeyEscape, term.PollEvent().Key)

	term.Fini()
	term.Fini()
	assert.Equal(t, EventClosed, term.PollEvent().Type)
}

func TestEmergencyReset(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	assert.Contains(t, out, "\x1b[?25h")
	assert.Contains(t, out, "\x1b[?1049l")
	assert.Contains(t, out, "\x1b[0m")
}

func newSimTerminal(t *testing.T) Terminal {
	t.Helper()
	term := NewTcell(tcell.NewSimulationScreen(""), ColorModeTrueColor)
	require.NoError(t, term.Init())
	t.Cleanup(term.Fini)
	return term
}

// fillQueue posts key events until the screen's queue rejects one, returning how many fit
func fillQueue(t *testing.T, term Terminal) int {
	t.Helper()
	screen := term.(*tcellTerminal).screen
	n := 0
	for screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone)) == nil {
		n++
		require.Less(t, n, 1000)
	}
	return n
}

func TestTcellPostEventWaitsForQueueSpace(t *testing.T) {
	term := newSimTerminal(t)
	queued := fillQueue(t, term)

	posted := make(chan struct{})
	go func() {
		term.PostEvent(Event{Type: EventInterrupt})
		close(posted)
	}()

	for i := 0; i < queued; i++ {
		ev := term.PollEvent()
		require.Equal(t, EventKey, ev.Type)
		assert.Equal(t, 'k', ev.Rune)
	}

	assert.Equal(t, EventInterrupt, term.PollEvent().Type, "wake-up delivered after the flood")
	<-posted
}

func TestTcellPostEventGivesUpAfterFini(t *testing.T) {
	term := newSimTerminal(t)
	fillQueue(t, term)
	term.Fini()

	done := make(chan struct{})
	go func() {
		term.PostEvent(Event{Type: EventInterrupt})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(postEventTimeout / 2):
		t.Fatal("PostEvent kept retrying on a finalized screen")
	}
}
