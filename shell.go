package glshell

// Host is the windowing library the shell runs on. It creates the window,
// dispatches events to the App one at a time and presents frames.
type Host interface {
	SetClearColor(r, g, b, a float32)
	SetProjection(m [16]float32)
	SetViewport(x, y, width, height int)
	Clear()
	SwapBuffers()

	// PostRedisplay schedules OnDisplay once the current event completes.
	PostRedisplay()

	// SetFullscreen enters fullscreen, or restores the windowed geometry
	// given by x, y, width and height. It returns false if the window could
	// not change mode.
	SetFullscreen(on bool, x, y, width, height int) bool

	// AttachMenu shows menu when button is pressed. Selections come back
	// through App.OnMenuSelect.
	AttachMenu(menu *Menu, button MouseButton)

	// Exit terminates the process with code. It does not return on a real
	// host.
	Exit(code int)
}

// App bridges window events to input and window state. Every On* method is
// called by the host's event loop, never concurrently.
type App struct {
	host   Host
	cfg    Config
	window WindowState
	input  InputState
	menu   *Menu
	exited bool
}

// New creates the shell. Call Initialize once the host has a current GL
// context.
func New(host Host, opts ...Option) *App {
	return NewWithConfig(host, NewConfig(opts...))
}

// NewWithConfig creates the shell from a prepared Config.
func NewWithConfig(host Host, cfg Config) *App {
	return &App{
		host: host,
		cfg:  cfg,
		window: WindowState{
			X:      cfg.X,
			Y:      cfg.Y,
			Width:  cfg.Width,
			Height: cfg.Height,
		},
	}
}

// Initialize sets a white background, a unit-square projection with the
// origin at the top-left corner and, if enabled, attaches the context menu to
// the right button.
func (a *App) Initialize() {
	a.host.SetClearColor(1, 1, 1, 1)
	a.host.SetProjection(Ortho(0, 1, 1, 0, -1, 1))

	if a.cfg.Menu {
		a.menu = NewContextMenu()
		a.host.AttachMenu(a.menu, ButtonRight)
	}
}

// OnDisplay draws the next frame.
func (a *App) OnDisplay() {
	if a.exited {
		return
	}
	a.host.Clear()
	if a.cfg.Draw != nil {
		a.cfg.Draw()
	}
	a.host.SwapBuffers()
}

// OnIdle is called when no events are pending.
func (a *App) OnIdle() {
	if a.exited || !a.cfg.IdleRedraw {
		return
	}
	a.host.PostRedisplay()
}

// OnReshape adjusts the viewport to the new drawable size.
func (a *App) OnReshape(width, height int) {
	if a.exited {
		return
	}
	a.window.Resize(width, height)
	a.host.SetViewport(0, 0, a.window.Width, a.window.Height)
}

// OnKeyPress handles a printable key press. ESC exits; 'f' toggles
// fullscreen.
func (a *App) OnKeyPress(code KeyCode, x, y int) {
	if a.exited {
		return
	}
	switch code {
	case KeyEscape:
		a.exit()
		return
	case KeyFullscreen:
		a.setFullscreen(!a.window.Fullscreen)
	}
	a.input.Keys.Set(int(code), true)
}

// OnKeyRelease handles a printable key release.
func (a *App) OnKeyRelease(code KeyCode, x, y int) {
	if a.exited {
		return
	}
	a.input.Keys.Set(int(code), false)
}

// OnSpecialKeyPress handles a function or navigation key press.
func (a *App) OnSpecialKeyPress(key SpecialKey, x, y int) {
	if a.exited {
		return
	}
	a.input.Special.Set(int(key), true)
}

// OnSpecialKeyRelease handles a function or navigation key release.
func (a *App) OnSpecialKeyRelease(key SpecialKey, x, y int) {
	if a.exited {
		return
	}
	a.input.Special.Set(int(key), false)
}

// OnButton handles a pointer button press or release.
func (a *App) OnButton(button MouseButton, pressed bool, x, y int) {
	if a.exited {
		return
	}
	a.input.SetButton(button, pressed)
	a.input.SetPointer(x, y)
}

// OnMotion handles pointer movement with a button held.
func (a *App) OnMotion(x, y int) {
	if a.exited {
		return
	}
	a.input.SetPointer(x, y)
}

// OnPassiveMotion handles pointer movement with no button held.
func (a *App) OnPassiveMotion(x, y int) {
	if a.exited {
		return
	}
	a.input.SetPointer(x, y)
}

// OnMenuSelect runs a context menu action. Fullscreen transitions are no-ops
// when the window is already in the requested state.
func (a *App) OnMenuSelect(action MenuAction) {
	if a.exited {
		return
	}
	switch action {
	case MenuQuit:
		a.exit()
	case MenuEnterFullscreen:
		if !a.window.Fullscreen {
			a.setFullscreen(true)
		}
	case MenuLeaveFullscreen:
		if a.window.Fullscreen {
			a.setFullscreen(false)
		}
	}
}

func (a *App) setFullscreen(on bool) {
	w := a.window
	if !a.host.SetFullscreen(on, w.X, w.Y, w.Width, w.Height) {
		return
	}
	a.window.Fullscreen = on
	a.host.PostRedisplay()
}

func (a *App) exit() {
	a.exited = true
	a.host.Exit(0)
}

// Window returns the current window state.
func (a *App) Window() WindowState { return a.window }

// Pointer returns the last observed pointer position.
func (a *App) Pointer() PointerState { return a.input.Pointer }

// KeyDown returns true if a printable key is held.
func (a *App) KeyDown(code KeyCode) bool { return a.input.Keys.Down(int(code)) }

// SpecialKeyDown returns true if a special key is held.
func (a *App) SpecialKeyDown(key SpecialKey) bool { return a.input.Special.Down(int(key)) }

// ButtonDown returns true if a pointer button is held.
func (a *App) ButtonDown(button MouseButton) bool { return a.input.ButtonDown(button) }

// AnyButtonDown reports whether a left, middle or right button is held.
func (a *App) AnyButtonDown() bool { return a.input.AnyButtonDown() }

// Menu returns the attached context menu, or nil.
func (a *App) Menu() *Menu { return a.menu }

// Config returns the configuration the shell was built with.
func (a *App) Config() Config { return a.cfg }

// Exited reports whether ESC or Quit has asked the host to terminate.
func (a *App) Exited() bool { return a.exited }

// Ortho creates a column-major orthographic projection matrix.
func Ortho(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
