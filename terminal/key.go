package terminal

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyCtrlC
	KeyCtrlD
)

// Modifier represents key modifiers (bitmask)
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)
