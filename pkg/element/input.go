package element

import (
	"strings"

	"github.com/go-drift/elements/pkg/graphics"
)

// Modifiers is a set of keyboard modifier flags held during an event.
type Modifiers int

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
	// ModAction is the platform's command key: Super on macOS, Control
	// elsewhere. Hosts set it alongside the physical modifier.
	ModAction
)

// Has reports whether all of m's flags are set.
func (m Modifiers) Has(flags Modifiers) bool {
	return m&flags == flags
}

func (m Modifiers) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, f := range []struct {
		flag Modifiers
		name string
	}{
		{ModShift, "shift"},
		{ModControl, "control"},
		{ModAlt, "alt"},
		{ModSuper, "super"},
		{ModAction, "action"},
	} {
		if m&f.flag != 0 {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "+")
}

// ButtonKind identifies which mouse button changed.
type ButtonKind int

const (
	ButtonLeft ButtonKind = iota
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2
)

// MouseButton describes a button press, release, or a drag while pressed.
type MouseButton struct {
	Down      bool
	NumClicks int
	Which     ButtonKind
	Modifiers Modifiers
	Pos       graphics.Point
}

// CursorTracking is the hover phase reported to Cursor.
type CursorTracking int

const (
	CursorEntering CursorTracking = iota
	CursorHovering
	CursorLeaving
)

func (c CursorTracking) String() string {
	switch c {
	case CursorEntering:
		return "entering"
	case CursorLeaving:
		return "leaving"
	default:
		return "hovering"
	}
}

// KeyAction says whether a key went down, up, or auto-repeated.
type KeyAction int

const (
	KeyActionUnknown KeyAction = iota - 1
	KeyRelease
	KeyPress
	KeyRepeat
)

// KeyCode identifies a physical key. Printable keys use their ASCII value.
type KeyCode int

const (
	KeyUnknown   KeyCode = -1
	KeySpace     KeyCode = 32
	KeyA         KeyCode = 65
	KeyC         KeyCode = 67
	KeyV         KeyCode = 86
	KeyX         KeyCode = 88
	KeyZ         KeyCode = 90
	KeyEscape    KeyCode = 256
	KeyEnter     KeyCode = 257
	KeyTab       KeyCode = 258
	KeyBackspace KeyCode = 259
	KeyInsert    KeyCode = 260
	KeyDelete    KeyCode = 261
	KeyRight     KeyCode = 262
	KeyLeft      KeyCode = 263
	KeyDown      KeyCode = 264
	KeyUp        KeyCode = 265
	KeyPageUp    KeyCode = 266
	KeyPageDown  KeyCode = 267
	KeyHome      KeyCode = 268
	KeyEnd       KeyCode = 269
)

// KeyInfo is a key event routed to the focused element.
type KeyInfo struct {
	Key       KeyCode
	Action    KeyAction
	Modifiers Modifiers
}

// TextInfo is a character produced by the keyboard.
type TextInfo struct {
	Codepoint rune
	Modifiers Modifiers
}
