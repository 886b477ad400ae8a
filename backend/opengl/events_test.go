package opengl

import (
	"fmt"
	"slices"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glshell"
)

// fakeSurface is an 800x600 window with a movable cursor.
type fakeSurface struct {
	x, y int
}

func (s *fakeSurface) CursorPos() (int, int) { return s.x, s.y }
func (s *fakeSurface) Size() (int, int)      { return 800, 600 }

// recordingSink logs every routed event.
type recordingSink struct {
	calls []string
	held  bool
}

func (s *recordingSink) record(format string, args ...any) {
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
}

func (s *recordingSink) OnKeyPress(code glshell.KeyCode, x, y int) {
	s.record("key %d down", code)
}

func (s *recordingSink) OnKeyRelease(code glshell.KeyCode, x, y int) {
	s.record("key %d up", code)
}

func (s *recordingSink) OnSpecialKeyPress(key glshell.SpecialKey, x, y int) {
	s.record("special %d down", key)
}

func (s *recordingSink) OnSpecialKeyRelease(key glshell.SpecialKey, x, y int) {
	s.record("special %d up", key)
}

func (s *recordingSink) OnButton(button glshell.MouseButton, pressed bool, x, y int) {
	state := "up"
	if pressed {
		state = "down"
	}
	s.record("button %v %s %d,%d", button, state, x, y)
}

func (s *recordingSink) OnMotion(x, y int)        { s.record("motion %d,%d", x, y) }
func (s *recordingSink) OnPassiveMotion(x, y int) { s.record("passive %d,%d", x, y) }

func (s *recordingSink) OnMenuSelect(action glshell.MenuAction) {
	s.record("menu %v", action)
}

func (s *recordingSink) AnyButtonDown() bool { return s.held }

// take returns and clears the recorded calls.
func (s *recordingSink) take() []string {
	calls := s.calls
	s.calls = nil
	return calls
}

// recordingHost is a glshell.Host that only records transitions and exits.
type recordingHost struct {
	fullscreen []bool
	exitCodes  []int
}

func (h *recordingHost) SetClearColor(r, g, b, a float32) {}
func (h *recordingHost) SetProjection(m [16]float32)      {}
func (h *recordingHost) SetViewport(x, y, w, hh int)      {}
func (h *recordingHost) Clear()                           {}
func (h *recordingHost) SwapBuffers()                     {}
func (h *recordingHost) PostRedisplay()                   {}
func (h *recordingHost) Exit(code int)                    { h.exitCodes = append(h.exitCodes, code) }

func (h *recordingHost) SetFullscreen(on bool, x, y, w, hh int) bool {
	h.fullscreen = append(h.fullscreen, on)
	return true
}

func (h *recordingHost) AttachMenu(menu *glshell.Menu, button glshell.MouseButton) {}

func newTestRouter() (*eventRouter, *recordingSink, *fakeSurface) {
	sink := &recordingSink{}
	s := &fakeSurface{}
	r := newEventRouter(sink, s, glshell.NewMenuPopup(glshell.DefaultMenuMetrics()))
	r.attachMenu(glshell.NewContextMenu(), glshell.ButtonRight)
	return r, sink, s
}

// openMenu right-clicks at (100,100). Root rows then span x 100-260 with
// FullScreen at y 104-126 and Quit at y 126-148; the submenu sits at x 260-420.
func openMenu(t *testing.T, r *eventRouter, s *fakeSurface) {
	t.Helper()
	s.x, s.y = 100, 100
	r.button(glfw.MouseButtonRight, glfw.Press)
	r.button(glfw.MouseButtonRight, glfw.Release)
	if !r.popup.IsOpen() {
		t.Fatal("menu button should open the popup")
	}
}

func expectCalls(t *testing.T, got []string, want ...string) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("calls = %q, want %q", got, want)
	}
}

func TestMenuButtonOpensPopup(t *testing.T) {
	r, sink, s := newTestRouter()

	openMenu(t, r, s)
	expectCalls(t, sink.take())
	if !r.takeDirty() {
		t.Error("opening the popup should request a redraw")
	}
	if r.takeDirty() {
		t.Error("takeDirty should clear the flag")
	}
}

func TestMenuButtonWithoutMenu(t *testing.T) {
	sink := &recordingSink{}
	s := &fakeSurface{x: 3, y: 4}
	r := newEventRouter(sink, s, glshell.NewMenuPopup(glshell.DefaultMenuMetrics()))

	r.button(glfw.MouseButtonRight, glfw.Press)
	r.button(glfw.MouseButtonRight, glfw.Release)

	expectCalls(t, sink.take(), "button right down 3,4", "button right up 3,4")
	if r.popup.IsOpen() {
		t.Error("no menu is attached")
	}
}

func TestPopupClickRouting(t *testing.T) {
	tests := []struct {
		name   string
		hover  [2]float64
		click  [2]int
		button glfw.MouseButton
		want   []string
	}{
		{"quit", [2]float64{150, 130}, [2]int{150, 130}, glfw.MouseButtonLeft, []string{"menu quit"}},
		{"enter fullscreen", [2]float64{150, 110}, [2]int{300, 110}, glfw.MouseButtonLeft, []string{"menu enter-fullscreen"}},
		{"leave with right button", [2]float64{150, 110}, [2]int{300, 130}, glfw.MouseButtonRight, []string{"menu leave-fullscreen"}},
		{"outside", [2]float64{10, 10}, [2]int{10, 10}, glfw.MouseButtonLeft, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, sink, s := newTestRouter()
			openMenu(t, r, s)

			r.cursor(tt.hover[0], tt.hover[1])
			s.x, s.y = tt.click[0], tt.click[1]
			r.button(tt.button, glfw.Press)
			expectCalls(t, sink.take(), tt.want...)
			if r.popup.IsOpen() {
				t.Error("popup should close")
			}

			// The release belongs to the popup click.
			r.button(tt.button, glfw.Release)
			expectCalls(t, sink.take())

			// The next click is an ordinary button again.
			r.button(glfw.MouseButtonLeft, glfw.Press)
			expectCalls(t, sink.take(), fmt.Sprintf("button left down %d,%d", s.x, s.y))
		})
	}
}

func TestPopupSelectionReachesApp(t *testing.T) {
	host := &recordingHost{}
	app := glshell.New(host, glshell.WithMenu(true))
	app.Initialize()

	s := &fakeSurface{}
	r := newEventRouter(app, s, glshell.NewMenuPopup(glshell.DefaultMenuMetrics()))
	r.attachMenu(app.Menu(), glshell.ButtonRight)
	openMenu(t, r, s)

	r.cursor(150, 110)
	s.x, s.y = 300, 110
	r.button(glfw.MouseButtonLeft, glfw.Press)
	r.button(glfw.MouseButtonLeft, glfw.Release)

	if !app.Window().Fullscreen || len(host.fullscreen) != 1 {
		t.Errorf("Enter FullScreen should reach the app, transitions %v", host.fullscreen)
	}
	if app.ButtonDown(glshell.ButtonRight) || app.ButtonDown(glshell.ButtonLeft) {
		t.Error("popup clicks must not be recorded as held buttons")
	}
}

func TestEscapeWhilePopupOpenExits(t *testing.T) {
	host := &recordingHost{}
	app := glshell.New(host, glshell.WithMenu(true))
	app.Initialize()

	s := &fakeSurface{}
	r := newEventRouter(app, s, glshell.NewMenuPopup(glshell.DefaultMenuMetrics()))
	r.attachMenu(app.Menu(), glshell.ButtonRight)
	openMenu(t, r, s)

	r.key(glfw.KeyEscape, glfw.Press, 0)

	if len(host.exitCodes) != 1 || host.exitCodes[0] != 0 {
		t.Errorf("expected Exit(0), got %v", host.exitCodes)
	}
}

func TestKeyRouting(t *testing.T) {
	r, sink, s := newTestRouter()
	s.x, s.y = 7, 8

	// Shift released before the key: the release still matches the press.
	r.key(glfw.KeyA, glfw.Press, glfw.ModShift)
	r.key(glfw.KeyA, glfw.Repeat, glfw.ModShift)
	r.key(glfw.KeyA, glfw.Release, 0)
	expectCalls(t, sink.take(), "key 65 down", "key 65 up")

	// A release with no recorded press is dropped.
	r.key(glfw.KeyB, glfw.Release, 0)
	expectCalls(t, sink.take())

	r.key(glfw.KeyF1, glfw.Press, 0)
	r.key(glfw.KeyF1, glfw.Release, 0)
	r.key(glfw.KeyLeftShift, glfw.Press, glfw.ModShift)
	expectCalls(t, sink.take(), "special 1 down", "special 1 up", "special 112 down")

	r.key(glfw.KeyPrintScreen, glfw.Press, 0)
	expectCalls(t, sink.take())
}

func TestShiftedReleaseDoesNotStickKey(t *testing.T) {
	host := &recordingHost{}
	app := glshell.New(host)
	app.Initialize()
	r := newEventRouter(app, &fakeSurface{}, glshell.NewMenuPopup(glshell.DefaultMenuMetrics()))

	r.key(glfw.KeyA, glfw.Press, 0)
	r.key(glfw.KeyA, glfw.Release, glfw.ModShift)

	if app.KeyDown('a') || app.KeyDown('A') {
		t.Error("key should be released whatever the modifiers at release")
	}
}

func TestCursorRouting(t *testing.T) {
	tests := []struct {
		name string
		held bool
		want string
	}{
		{"passive", false, "passive 5,6"},
		{"dragging", true, "motion 5,6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, sink, _ := newTestRouter()
			sink.held = tt.held

			r.cursor(5.7, 6.2)
			expectCalls(t, sink.take(), tt.want)
		})
	}
}

func TestCursorHoversOpenPopup(t *testing.T) {
	r, sink, s := newTestRouter()
	openMenu(t, r, s)
	r.takeDirty()

	r.cursor(150, 110)
	expectCalls(t, sink.take())
	if r.popup.Expanded() != 0 {
		t.Error("hovering FullScreen should expand its submenu")
	}
	if !r.takeDirty() {
		t.Error("hover should request a redraw")
	}
}

func TestScrollSendsPressReleasePairs(t *testing.T) {
	r, sink, s := newTestRouter()
	s.x, s.y = 3, 4

	r.scroll(1)
	expectCalls(t, sink.take(), "button scroll-up down 3,4", "button scroll-up up 3,4")

	r.scroll(-2)
	expectCalls(t, sink.take(),
		"button scroll-down down 3,4", "button scroll-down up 3,4",
		"button scroll-down down 3,4", "button scroll-down up 3,4",
	)

	r.scroll(0)
	expectCalls(t, sink.take())

	openMenu(t, r, s)
	r.scroll(1)
	expectCalls(t, sink.take())
}

func TestResizeClosesPopup(t *testing.T) {
	r, _, s := newTestRouter()
	openMenu(t, r, s)

	r.resized()
	if r.popup.IsOpen() {
		t.Error("resize should close the popup")
	}
}
