package glshell

// WindowState keeps track of the window geometry and presentation state.
type WindowState struct {
	// Windowed position, restored when leaving fullscreen.
	X, Y int

	Width      int
	Height     int
	Fullscreen bool
}

// Resize records new drawable dimensions, clamping negatives to zero.
func (w *WindowState) Resize(width, height int) {
	w.Width = max(width, 0)
	w.Height = max(height, 0)
}
