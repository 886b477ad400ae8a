package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glshell"
)

// eventSink receives translated events. *glshell.App implements it.
type eventSink interface {
	OnKeyPress(code glshell.KeyCode, x, y int)
	OnKeyRelease(code glshell.KeyCode, x, y int)
	OnSpecialKeyPress(key glshell.SpecialKey, x, y int)
	OnSpecialKeyRelease(key glshell.SpecialKey, x, y int)
	OnButton(button glshell.MouseButton, pressed bool, x, y int)
	OnMotion(x, y int)
	OnPassiveMotion(x, y int)
	OnMenuSelect(action glshell.MenuAction)
	AnyButtonDown() bool
}

// surface is the window geometry the router reads, in window coordinates.
type surface interface {
	CursorPos() (x, y int)
	Size() (width, height int)
}

// glfwSurface reads geometry from a GLFW window.
type glfwSurface struct {
	win *glfw.Window
}

func (s glfwSurface) CursorPos() (int, int) {
	x, y := s.win.GetCursorPos()
	return int(x), int(y)
}

func (s glfwSurface) Size() (int, int) {
	return s.win.GetSize()
}

// eventRouter turns GLFW input into shell events. While the context menu
// popup is open, pointer input drives the popup instead of the sink.
type eventRouter struct {
	sink    eventSink
	surface surface
	popup   *glshell.MenuPopup

	menu       *glshell.Menu
	menuButton glshell.MouseButton

	// Buttons whose release belongs to a popup click.
	swallowed [glshell.ButtonCount]bool

	// Printable key code delivered on press, reused on release so that a
	// modifier change in between cannot leave a key stuck.
	pressedCodes map[glfw.Key]glshell.KeyCode

	// The popup changed and the frame needs redrawing.
	dirty bool
}

func newEventRouter(sink eventSink, s surface, popup *glshell.MenuPopup) *eventRouter {
	return &eventRouter{
		sink:         sink,
		surface:      s,
		popup:        popup,
		pressedCodes: make(map[glfw.Key]glshell.KeyCode),
	}
}

// attachMenu opens menu when button is pressed.
func (r *eventRouter) attachMenu(menu *glshell.Menu, button glshell.MouseButton) {
	r.menu = menu
	r.menuButton = button
}

// takeDirty reports and clears a pending popup redraw.
func (r *eventRouter) takeDirty() bool {
	dirty := r.dirty
	r.dirty = false
	return dirty
}

func (r *eventRouter) key(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	// Held keys stay down in the tables; repeats carry no new state.
	if action == glfw.Repeat {
		return
	}
	x, y := r.surface.CursorPos()

	if special, ok := specialKey(key); ok {
		if action == glfw.Press {
			r.sink.OnSpecialKeyPress(special, x, y)
		} else {
			r.sink.OnSpecialKeyRelease(special, x, y)
		}
		return
	}

	if action == glfw.Press {
		code, ok := asciiKey(key, mods)
		if !ok {
			return
		}
		r.pressedCodes[key] = code
		r.sink.OnKeyPress(code, x, y)
		return
	}

	code, ok := r.pressedCodes[key]
	if !ok {
		return
	}
	delete(r.pressedCodes, key)
	r.sink.OnKeyRelease(code, x, y)
}

func (r *eventRouter) button(b glfw.MouseButton, action glfw.Action) {
	button, ok := mouseButton(b)
	if !ok {
		return
	}
	x, y := r.surface.CursorPos()
	pressed := action == glfw.Press

	if !pressed && r.swallowed[button] {
		r.swallowed[button] = false
		return
	}

	if pressed && r.popup.IsOpen() {
		r.swallowed[button] = true
		choice, selected := r.popup.Click(float32(x), float32(y))
		r.dirty = true
		if selected {
			r.sink.OnMenuSelect(choice)
		}
		return
	}

	if pressed && r.menu != nil && button == r.menuButton {
		r.swallowed[button] = true
		w, h := r.surface.Size()
		r.popup.Open(r.menu, float32(x), float32(y), glshell.Vec2{X: float32(w), Y: float32(h)})
		r.dirty = true
		return
	}

	r.sink.OnButton(button, pressed, x, y)
}

func (r *eventRouter) scroll(yoff float64) {
	if r.popup.IsOpen() {
		return
	}
	button, n, ok := scrollButton(yoff)
	if !ok {
		return
	}
	x, y := r.surface.CursorPos()
	for range n {
		r.sink.OnButton(button, true, x, y)
		r.sink.OnButton(button, false, x, y)
	}
}

func (r *eventRouter) cursor(xpos, ypos float64) {
	if r.popup.IsOpen() {
		r.popup.Hover(float32(xpos), float32(ypos))
		r.dirty = true
		return
	}
	x, y := int(xpos), int(ypos)
	if r.sink.AnyButtonDown() {
		r.sink.OnMotion(x, y)
	} else {
		r.sink.OnPassiveMotion(x, y)
	}
}

// resized closes the popup; its layout belongs to the old size.
func (r *eventRouter) resized() {
	if r.popup.IsOpen() {
		r.popup.Close()
		r.dirty = true
	}
}
