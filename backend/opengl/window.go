package opengl

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glshell"
)

// Window is a GLFW window driving a glshell.App. It implements glshell.Host.
type Window struct {
	window   *glfw.Window
	renderer *Renderer
	app      *glshell.App
	cfg      glshell.Config

	events *eventRouter

	redraw bool

	// Context menu.
	popup     *glshell.MenuPopup
	labels    *LabelAtlas
	menuStyle glshell.MenuStyle

	// Windowed size saved on entering fullscreen.
	windowedW, windowedH int
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts GLFW down. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}

// NewWindow creates a double-buffered window with a depth buffer and an
// OpenGL 4.1 core context, and a shell configured by opts.
func NewWindow(opts ...glshell.Option) (*Window, error) {
	cfg := glshell.NewConfig(opts...)

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.SetPos(cfg.X, cfg.Y)
	win.MakeContextCurrent()
	win.SetInputMode(glfw.LockKeyMods, glfw.True)

	if err := gl.Init(); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	renderer, err := NewRenderer(cfg.Width, cfg.Height)
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	w := &Window{
		window:    win,
		renderer:  renderer,
		cfg:       cfg,
		popup:     glshell.NewMenuPopup(glshell.DefaultMenuMetrics()),
		menuStyle: glshell.DefaultMenuStyle(),
	}
	w.app = glshell.NewWithConfig(w, cfg)
	w.events = newEventRouter(w.app, glfwSurface{win: win}, w.popup)

	win.SetKeyCallback(w.keyCallback)
	win.SetMouseButtonCallback(w.mouseButtonCallback)
	win.SetScrollCallback(w.scrollCallback)
	win.SetCursorPosCallback(w.cursorPosCallback)
	win.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	win.SetSizeCallback(w.sizeCallback)
	win.SetRefreshCallback(w.refreshCallback)

	log.Printf("window %q created (%dx%d at %d,%d)", cfg.Title, cfg.Width, cfg.Height, cfg.X, cfg.Y)
	return w, nil
}

// Renderer returns the window's renderer, for draw hooks.
func (w *Window) Renderer() *Renderer {
	return w.renderer
}

// Run initializes the shell and runs the event loop until the window is asked
// to close. ESC and Quit end the process from inside the loop.
func (w *Window) Run() {
	w.app.Initialize()

	w.renderer.Resize(w.window.GetSize())
	fbw, fbh := w.window.GetFramebufferSize()
	w.app.OnReshape(fbw, fbh)
	w.redraw = true

	for !w.window.ShouldClose() {
		if w.events.takeDirty() {
			w.redraw = true
		}
		if w.redraw {
			w.redraw = false
			w.app.OnDisplay()
		}

		if w.cfg.IdleRedraw {
			glfw.PollEvents()
		} else {
			glfw.WaitEvents()
		}
		w.app.OnIdle()
	}
}

// Destroy releases GL resources and the window.
func (w *Window) Destroy() {
	if w.labels != nil {
		w.renderer.DeleteTexture(w.labels.Texture())
	}
	w.renderer.Delete()
	w.window.Destroy()
}

// SetClearColor implements glshell.Host.
func (w *Window) SetClearColor(r, g, b, a float32) {
	w.renderer.SetClearColor(r, g, b, a)
}

// SetProjection implements glshell.Host.
func (w *Window) SetProjection(m [16]float32) {
	w.renderer.SetProjection(m)
}

// SetViewport implements glshell.Host.
func (w *Window) SetViewport(x, y, width, height int) {
	w.renderer.SetViewport(x, y, width, height)
}

// Clear implements glshell.Host.
func (w *Window) Clear() {
	w.renderer.Clear()
}

// SwapBuffers implements glshell.Host. An open context menu is drawn over the
// frame before it is presented.
func (w *Window) SwapBuffers() {
	if w.popup.IsOpen() && w.labels != nil {
		dl := glshell.AcquireDrawList()
		w.popup.Draw(dl, w.labels, w.menuStyle)
		if err := w.renderer.Render(dl); err != nil {
			log.Printf("menu overlay: %v", err)
		}
		glshell.ReleaseDrawList(dl)
	}
	w.window.SwapBuffers()
}

// PostRedisplay implements glshell.Host.
func (w *Window) PostRedisplay() {
	w.redraw = true
}

// SetFullscreen implements glshell.Host. It fails when there is no monitor
// to go fullscreen on.
func (w *Window) SetFullscreen(on bool, x, y, width, height int) bool {
	if on {
		monitor := glfw.GetPrimaryMonitor()
		if monitor == nil {
			log.Printf("fullscreen: no primary monitor")
			return false
		}
		mode := monitor.GetVideoMode()
		if mode == nil {
			log.Printf("fullscreen: no video mode for %s", monitor.GetName())
			return false
		}
		w.windowedW, w.windowedH = w.window.GetSize()
		w.window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
		log.Printf("entered fullscreen (%dx%d)", mode.Width, mode.Height)
		return true
	}

	if w.windowedW > 0 && w.windowedH > 0 {
		width, height = w.windowedW, w.windowedH
	}
	w.window.SetMonitor(nil, x, y, width, height, 0)
	log.Printf("left fullscreen (%dx%d at %d,%d)", width, height, x, y)
	return true
}

// AttachMenu implements glshell.Host.
func (w *Window) AttachMenu(menu *glshell.Menu, button glshell.MouseButton) {
	w.events.attachMenu(menu, button)

	labels := append(menu.Labels(), glshell.SubmenuMarker)
	if w.labels != nil {
		w.renderer.DeleteTexture(w.labels.Texture())
	}
	w.labels = NewLabelAtlas(w.renderer, LoadLabelFace(), labels)
}

// Exit implements glshell.Host. The process ends immediately.
func (w *Window) Exit(code int) {
	os.Exit(code)
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	w.events.key(key, action, mods)
}

func (w *Window) mouseButtonCallback(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	w.events.button(b, action)
}

func (w *Window) scrollCallback(_ *glfw.Window, _, yoff float64) {
	w.events.scroll(yoff)
}

func (w *Window) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	w.events.cursor(xpos, ypos)
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.app.OnReshape(width, height)
	w.redraw = true
}

func (w *Window) sizeCallback(_ *glfw.Window, width, height int) {
	w.renderer.Resize(width, height)
	w.events.resized()
}

func (w *Window) refreshCallback(_ *glfw.Window) {
	w.redraw = true
}
