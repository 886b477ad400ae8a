package glshell

// KeyCode is an ASCII key code as reported for printable keys.
type KeyCode byte

// Keys the shell reacts to.
const (
	KeyEscape     KeyCode = 27
	KeyFullscreen KeyCode = 'f' // lowercase only
)

// SpecialKey is a code for a non-printable key (function and navigation keys).
// Values follow the classic GLUT numbering so existing key maps carry over.
type SpecialKey int

const (
	SpecialF1       SpecialKey = 1
	SpecialF2       SpecialKey = 2
	SpecialF3       SpecialKey = 3
	SpecialF4       SpecialKey = 4
	SpecialF5       SpecialKey = 5
	SpecialF6       SpecialKey = 6
	SpecialF7       SpecialKey = 7
	SpecialF8       SpecialKey = 8
	SpecialF9       SpecialKey = 9
	SpecialF10      SpecialKey = 10
	SpecialF11      SpecialKey = 11
	SpecialF12      SpecialKey = 12
	SpecialLeft     SpecialKey = 100
	SpecialUp       SpecialKey = 101
	SpecialRight    SpecialKey = 102
	SpecialDown     SpecialKey = 103
	SpecialPageUp   SpecialKey = 104
	SpecialPageDown SpecialKey = 105
	SpecialHome     SpecialKey = 106
	SpecialEnd      SpecialKey = 107
	SpecialInsert   SpecialKey = 108

	// Extended codes reported for modifier keys.
	SpecialNumLock SpecialKey = 109
	SpecialShiftL  SpecialKey = 112
	SpecialShiftR  SpecialKey = 113
	SpecialCtrlL   SpecialKey = 114
	SpecialCtrlR   SpecialKey = 115
	SpecialAltL    SpecialKey = 116
	SpecialAltR    SpecialKey = 117
)

// KeyTableSize is the capacity of a KeyTable.
const KeyTableSize = 256

// MouseButton represents a pointer button. The wheel is reported as two
// buttons, one per direction.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
	ButtonScrollUp
	ButtonScrollDown
	ButtonCount
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonScrollUp:
		return "scroll-up"
	case ButtonScrollDown:
		return "scroll-down"
	default:
		return "unknown"
	}
}

// KeyTable tracks pressed state for up to KeyTableSize key codes.
// The zero value has every key released.
type KeyTable struct {
	down [KeyTableSize]bool
}

// Set records the state of a key. Codes outside the table are ignored.
func (t *KeyTable) Set(code int, down bool) {
	if code < 0 || code >= KeyTableSize {
		return
	}
	t.down[code] = down
}

// Down returns true if the key is currently held.
func (t *KeyTable) Down(code int) bool {
	if code < 0 || code >= KeyTableSize {
		return false
	}
	return t.down[code]
}

// PointerState is the most recently observed pointer position in window
// pixels, origin top-left.
type PointerState struct {
	X, Y int
}

// InputState holds keyboard and pointer state across events.
type InputState struct {
	Keys    KeyTable
	Special KeyTable
	Pointer PointerState

	buttons [ButtonCount]bool
}

// SetButton sets pointer button state. Unknown buttons are ignored.
func (s *InputState) SetButton(button MouseButton, down bool) {
	if button < 0 || button >= ButtonCount {
		return
	}
	s.buttons[button] = down
}

// ButtonDown returns true if a pointer button is currently held.
func (s *InputState) ButtonDown(button MouseButton) bool {
	if button < 0 || button >= ButtonCount {
		return false
	}
	return s.buttons[button]
}

// AnyButtonDown reports whether any of the left, middle or right buttons is
// held. Wheel buttons are excluded since they never stay down.
func (s *InputState) AnyButtonDown() bool {
	return s.buttons[ButtonLeft] || s.buttons[ButtonMiddle] || s.buttons[ButtonRight]
}

// SetPointer sets the pointer position.
func (s *InputState) SetPointer(x, y int) {
	s.Pointer = PointerState{X: x, Y: y}
}
