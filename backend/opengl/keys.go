package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glshell"
)

// shiftedSymbols maps unshifted US-layout symbols to their shifted form.
var shiftedSymbols = map[byte]byte{
	'1': '!', '2': '@', '3': '#', '4': '$', '5': '%',
	'6': '^', '7': '&', '8': '*', '9': '(', '0': ')',
	'-': '_', '=': '+', '[': '{', ']': '}', '\\': '|',
	';': ':', '\'': '"', ',': '<', '.': '>', '/': '?',
	'`': '~',
}

// asciiKey translates a GLFW key to the ASCII code a keyboard would type,
// honouring shift, caps lock and control. ok is false for keys without an
// ASCII code.
func asciiKey(key glfw.Key, mods glfw.ModifierKey) (glshell.KeyCode, bool) {
	switch key {
	case glfw.KeyEscape:
		return glshell.KeyEscape, true
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return '\r', true
	case glfw.KeyTab:
		return '\t', true
	case glfw.KeyBackspace:
		return '\b', true
	case glfw.KeyDelete:
		return 127, true
	}

	if code, ok := keypadKey(key); ok {
		return code, true
	}

	if key < glfw.KeySpace || key > glfw.KeyGraveAccent {
		return 0, false
	}
	c := byte(key)
	shift := mods&glfw.ModShift != 0

	if c >= 'A' && c <= 'Z' {
		if mods&glfw.ModControl != 0 {
			return glshell.KeyCode(c - 'A' + 1), true
		}
		caps := mods&glfw.ModCapsLock != 0
		if shift == caps {
			c += 'a' - 'A'
		}
		return glshell.KeyCode(c), true
	}

	if shift {
		if s, ok := shiftedSymbols[c]; ok {
			c = s
		}
	}
	return glshell.KeyCode(c), true
}

func keypadKey(key glfw.Key) (glshell.KeyCode, bool) {
	if key >= glfw.KeyKP0 && key <= glfw.KeyKP9 {
		return glshell.KeyCode('0' + byte(key-glfw.KeyKP0)), true
	}
	switch key {
	case glfw.KeyKPDecimal:
		return '.', true
	case glfw.KeyKPDivide:
		return '/', true
	case glfw.KeyKPMultiply:
		return '*', true
	case glfw.KeyKPSubtract:
		return '-', true
	case glfw.KeyKPAdd:
		return '+', true
	case glfw.KeyKPEqual:
		return '=', true
	}
	return 0, false
}

// specialKey maps function, navigation and modifier keys to special codes.
func specialKey(key glfw.Key) (glshell.SpecialKey, bool) {
	if key >= glfw.KeyF1 && key <= glfw.KeyF12 {
		return glshell.SpecialF1 + glshell.SpecialKey(key-glfw.KeyF1), true
	}
	switch key {
	case glfw.KeyLeft:
		return glshell.SpecialLeft, true
	case glfw.KeyUp:
		return glshell.SpecialUp, true
	case glfw.KeyRight:
		return glshell.SpecialRight, true
	case glfw.KeyDown:
		return glshell.SpecialDown, true
	case glfw.KeyPageUp:
		return glshell.SpecialPageUp, true
	case glfw.KeyPageDown:
		return glshell.SpecialPageDown, true
	case glfw.KeyHome:
		return glshell.SpecialHome, true
	case glfw.KeyEnd:
		return glshell.SpecialEnd, true
	case glfw.KeyInsert:
		return glshell.SpecialInsert, true
	case glfw.KeyNumLock:
		return glshell.SpecialNumLock, true
	case glfw.KeyLeftShift:
		return glshell.SpecialShiftL, true
	case glfw.KeyRightShift:
		return glshell.SpecialShiftR, true
	case glfw.KeyLeftControl:
		return glshell.SpecialCtrlL, true
	case glfw.KeyRightControl:
		return glshell.SpecialCtrlR, true
	case glfw.KeyLeftAlt:
		return glshell.SpecialAltL, true
	case glfw.KeyRightAlt:
		return glshell.SpecialAltR, true
	default:
		return 0, false
	}
}

// mouseButton maps GLFW mouse buttons to shell buttons.
func mouseButton(button glfw.MouseButton) (glshell.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return glshell.ButtonLeft, true
	case glfw.MouseButtonMiddle:
		return glshell.ButtonMiddle, true
	case glfw.MouseButtonRight:
		return glshell.ButtonRight, true
	default:
		return 0, false
	}
}

// scrollButton returns the wheel button for a vertical scroll offset and the
// number of notches it represents.
func scrollButton(yoff float64) (glshell.MouseButton, int, bool) {
	switch {
	case yoff > 0:
		return glshell.ButtonScrollUp, notches(yoff), true
	case yoff < 0:
		return glshell.ButtonScrollDown, notches(-yoff), true
	default:
		return 0, 0, false
	}
}

func notches(v float64) int {
	return max(int(v), 1)
}
